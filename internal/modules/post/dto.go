package post

type CreatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url" validate:"required"`
}
