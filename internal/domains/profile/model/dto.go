package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookly-backend/internal/shared"
)

type CreateProfileRequest struct {
	UserID      shared.UserID     `json:"userId"`
	Preferences *PreferencesInput `json:"preferences"`
}

type PreferencesInput struct {
	FavoriteGenres  []string `json:"favoriteGenres"`
	FavoriteAuthors []string `json:"favoriteAuthors"`
}

// NewProfile builds the document for req. Missing favorites become empty sequences.
func NewProfile(req CreateProfileRequest, now time.Time) *Profile {
	p := &Profile{
		ID:      shared.UserID(strings.TrimSpace(req.UserID.String())),
		History: []HistoryEntry{},
		Created: now,
		Updated: now,
	}
	if req.Preferences != nil {
		p.Preferences.FavoriteGenres = trimAll(req.Preferences.FavoriteGenres)
		p.Preferences.FavoriteAuthors = trimAll(req.Preferences.FavoriteAuthors)
	}
	p.EnsureDefaults()
	return p
}

type UpdateProfileRequest struct {
	Preferences *PreferencesPatch `json:"preferences"`
}

// PreferencesPatch distinguishes an omitted list (nil) from an explicitly emptied one.
type PreferencesPatch struct {
	FavoriteGenres  *[]string `json:"favoriteGenres"`
	FavoriteAuthors *[]string `json:"favoriteAuthors"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Preferences == nil {
		return
	}
	if r.Preferences.FavoriteGenres != nil {
		g := trimAll(*r.Preferences.FavoriteGenres)
		r.Preferences.FavoriteGenres = &g
	}
	if r.Preferences.FavoriteAuthors != nil {
		a := trimAll(*r.Preferences.FavoriteAuthors)
		r.Preferences.FavoriteAuthors = &a
	}
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Preferences == nil ||
		(r.Preferences.FavoriteGenres == nil && r.Preferences.FavoriteAuthors == nil)
}

// Validate checks the supplied lists with the same rules as a stored Preferences.
func (r UpdateProfileRequest) Validate() error {
	if r.Preferences == nil {
		return nil
	}
	var candidate Preferences
	if r.Preferences.FavoriteGenres != nil {
		candidate.FavoriteGenres = *r.Preferences.FavoriteGenres
	}
	if r.Preferences.FavoriteAuthors != nil {
		candidate.FavoriteAuthors = *r.Preferences.FavoriteAuthors
	}
	return validation.Errors{"preferences": candidate.Validate()}.Filter()
}

// BookRef accepts a bookId sent either as "3" or 3.
type BookRef string

func (b *BookRef) UnmarshalJSON(data []byte) error {
	s, err := shared.UnmarshalFlexibleID(data)
	if err != nil {
		return err
	}
	*b = BookRef(s)
	return nil
}

type HistoryEntryRequest struct {
	BookID   BookRef    `json:"bookId"`
	Rating   *float64   `json:"rating"`
	Comment  *string    `json:"comment"`
	ReadDate *time.Time `json:"readDate"`
}

// Entry converts the request, defaulting readDate to now.
func (r HistoryEntryRequest) Entry(now time.Time) HistoryEntry {
	e := HistoryEntry{
		BookID:   strings.TrimSpace(string(r.BookID)),
		ReadDate: now,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
	if r.ReadDate != nil && !r.ReadDate.IsZero() {
		e.ReadDate = r.ReadDate.UTC()
	}
	return e
}

type HistoryPatch struct {
	Rating  *float64 `json:"rating"`
	Comment *string  `json:"comment"`
}

func (p HistoryPatch) IsEmpty() bool {
	return p.Rating == nil && p.Comment == nil
}

func (p HistoryPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&p.Comment, validation.RuneLength(0, MaxCommentLength)),
	)
}
