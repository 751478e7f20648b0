package dashboard

import "pluggedin/internal/domain"

// Overview is the owner's view: listings and portfolio posts, both
// newest first.
type Overview struct {
	Businesses []domain.Business `json:"businesses"`
	Posts      []domain.Post     `json:"posts"`
}
