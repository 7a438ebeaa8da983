package model

import (
	"time"

	profilemodel "bookly-backend/internal/domains/profile/model"
	usermodel "bookly-backend/internal/domains/user/model"
)

// UserFull merges the users row with the profile document. Either side may be nil:
// absent and unreachable render the same way.
type UserFull struct {
	User    *usermodel.User `json:"user"`
	Profile *ProfileView    `json:"profile"`
}

type ProfileView struct {
	Preferences profilemodel.Preferences `json:"preferences"`
	History     []HistoryView            `json:"history"`
}

// HistoryView.Book is the resolved title, or the raw bookId when it could not be resolved.
type HistoryView struct {
	BookID   string    `json:"bookId"`
	Book     string    `json:"book"`
	Rating   *float64  `json:"rating,omitempty"`
	Comment  *string   `json:"comment,omitempty"`
	ReadDate time.Time `json:"readDate"`
}
