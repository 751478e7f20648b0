package upload

import (
	"io"
	"net/http"
	"strconv"

	"pluggedin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if protected != nil {
		protected.POST("/businesses/:id/image", h.UploadBusinessImage)
		protected.POST("/posts/:id/image", h.UploadPostImage)
	}
}

func (h *Handler) UploadBusinessImage(c *gin.Context) {
	h.upload(c, func(userID, recordID int64, data []byte) (any, error) {
		return h.svc.UploadBusinessImage(c.Request.Context(), userID, recordID, data)
	}, "Business not found")
}

func (h *Handler) UploadPostImage(c *gin.Context) {
	h.upload(c, func(userID, recordID int64, data []byte) (any, error) {
		return h.svc.UploadPostImage(c.Request.Context(), userID, recordID, data)
	}, "Post not found")
}

func (h *Handler) upload(c *gin.Context, fn func(userID, recordID int64, data []byte) (any, error), notFoundMsg string) {
	recordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || recordID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Missing image file")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image exceeds the size limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unreadable image file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unreadable image file")
		return
	}

	up, err := fn(userID, recordID, data)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		case ErrNotAnImage:
			response.Error(c, http.StatusBadRequest, "NOT_AN_IMAGE", "Only JPEG, PNG, GIF and WebP images are accepted")
		case ErrTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image exceeds the size limit")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this record")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", notFoundMsg)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, up)
}
