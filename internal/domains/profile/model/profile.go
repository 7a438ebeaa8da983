package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookly-backend/internal/shared"
)

const (
	MaxCommentLength = 1000
	MinRating        = 0.0
	MaxRating        = 5.0
)

// Profile is the per-user document in MongoDB. ID doubles as the key of the owning users row,
// but nothing checks that the row exists.
type Profile struct {
	ID          shared.UserID  `bson:"_id" json:"id"`
	Preferences Preferences    `bson:"preferences" json:"preferences"`
	History     []HistoryEntry `bson:"history" json:"history"`
	Created     time.Time      `bson:"created" json:"created"`
	Updated     time.Time      `bson:"updated" json:"updated"`
}

type Preferences struct {
	FavoriteGenres  []string `bson:"favoriteGenres" json:"favoriteGenres"`
	FavoriteAuthors []string `bson:"favoriteAuthors" json:"favoriteAuthors"`
}

// HistoryEntry.BookID references books.id but is never checked against PostgreSQL.
type HistoryEntry struct {
	BookID   string    `bson:"bookId" json:"bookId"`
	ReadDate time.Time `bson:"readDate" json:"readDate"`
	Rating   *float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment  *string   `bson:"comment,omitempty" json:"comment,omitempty"`
}

func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Preferences),
		validation.Field(&p.History),
	)
}

func (p Preferences) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FavoriteGenres, validation.Each(validation.RuneLength(0, 100))),
		validation.Field(&p.FavoriteAuthors, validation.Each(validation.RuneLength(0, 100))),
	)
}

func (e HistoryEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.BookID, validation.Required),
		validation.Field(&e.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&e.Comment, validation.RuneLength(0, MaxCommentLength)),
	)
}

// EnsureDefaults replaces missing sequences with empty ones so documents written by other tools
// still render as [] rather than null.
func (p *Profile) EnsureDefaults() {
	if p.Preferences.FavoriteGenres == nil {
		p.Preferences.FavoriteGenres = []string{}
	}
	if p.Preferences.FavoriteAuthors == nil {
		p.Preferences.FavoriteAuthors = []string{}
	}
	if p.History == nil {
		p.History = []HistoryEntry{}
	}
}

func (p *Profile) AddBookToHistory(entry HistoryEntry, now time.Time) {
	if entry.ReadDate.IsZero() {
		entry.ReadDate = now
	}
	p.History = append(p.History, entry)
	p.Updated = now
}

// UpdateBookInHistory patches the first entry for bookID. It reports false, and leaves the profile
// untouched, when no such entry exists.
func (p *Profile) UpdateBookInHistory(bookID string, patch HistoryPatch, now time.Time) bool {
	for i := range p.History {
		if p.History[i].BookID != bookID {
			continue
		}
		if patch.Rating != nil {
			p.History[i].Rating = patch.Rating
		}
		if patch.Comment != nil {
			p.History[i].Comment = patch.Comment
		}
		p.Updated = now
		return true
	}
	return false
}

// RemoveBookFromHistory drops every entry for bookID and returns how many were removed.
func (p *Profile) RemoveBookFromHistory(bookID string, now time.Time) int {
	kept := make([]HistoryEntry, 0, len(p.History))
	for _, e := range p.History {
		if e.BookID != bookID {
			kept = append(kept, e)
		}
	}
	removed := len(p.History) - len(kept)
	p.History = kept
	p.Updated = now
	return removed
}

// BookIDs returns the non-blank bookIds in history order.
func (p *Profile) BookIDs() []string {
	ids := make([]string, 0, len(p.History))
	for _, e := range p.History {
		if id := strings.TrimSpace(e.BookID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
