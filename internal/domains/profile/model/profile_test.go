package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/internal/shared"
)

var (
	t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func ptr[T any](v T) *T { return &v }

func TestNewProfile_DefaultsAndTrims(t *testing.T) {
	p := NewProfile(CreateProfileRequest{UserID: " 7 "}, t0)

	assert.Equal(t, shared.UserID("7"), p.ID)
	assert.Equal(t, []string{}, p.Preferences.FavoriteGenres)
	assert.Equal(t, []string{}, p.Preferences.FavoriteAuthors)
	assert.Equal(t, []HistoryEntry{}, p.History)
	assert.Equal(t, t0, p.Created)
	assert.Equal(t, t0, p.Updated)

	withPrefs := NewProfile(CreateProfileRequest{
		UserID:      "7",
		Preferences: &PreferencesInput{FavoriteGenres: []string{" sci-fi ", "poetry"}},
	}, t0)
	assert.Equal(t, []string{"sci-fi", "poetry"}, withPrefs.Preferences.FavoriteGenres)
	assert.Equal(t, []string{}, withPrefs.Preferences.FavoriteAuthors)
}

func TestProfile_Validate(t *testing.T) {
	valid := NewProfile(CreateProfileRequest{UserID: "7"}, t0)
	assert.NoError(t, valid.Validate())

	missingID := NewProfile(CreateProfileRequest{}, t0)
	assert.Error(t, missingID.Validate())

	badRating := NewProfile(CreateProfileRequest{UserID: "7"}, t0)
	badRating.AddBookToHistory(HistoryEntry{BookID: "3", Rating: ptr(5.5)}, t1)
	assert.Error(t, badRating.Validate())
}

func TestHistoryEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   HistoryEntry
		wantErr bool
	}{
		{"minimal", HistoryEntry{BookID: "3"}, false},
		{"rating lower bound", HistoryEntry{BookID: "3", Rating: ptr(0.0)}, false},
		{"rating upper bound", HistoryEntry{BookID: "3", Rating: ptr(5.0)}, false},
		{"rating below range", HistoryEntry{BookID: "3", Rating: ptr(-0.5)}, true},
		{"rating above range", HistoryEntry{BookID: "3", Rating: ptr(5.01)}, true},
		{"comment at limit", HistoryEntry{BookID: "3", Comment: ptr(strings.Repeat("é", MaxCommentLength))}, false},
		{"comment over limit", HistoryEntry{BookID: "3", Comment: ptr(strings.Repeat("a", MaxCommentLength+1))}, true},
		{"missing bookId", HistoryEntry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddBookToHistory(t *testing.T) {
	p := NewProfile(CreateProfileRequest{UserID: "7"}, t0)

	p.AddBookToHistory(HistoryEntry{BookID: "3", Rating: ptr(4.0)}, t1)

	require.Len(t, p.History, 1)
	assert.Equal(t, t1, p.History[0].ReadDate)
	assert.Equal(t, t1, p.Updated)
	assert.Equal(t, t0, p.Created)

	explicit := t0.Add(-24 * time.Hour)
	p.AddBookToHistory(HistoryEntry{BookID: "5", ReadDate: explicit}, t1)
	assert.Equal(t, explicit, p.History[1].ReadDate)
}

func TestUpdateBookInHistory(t *testing.T) {
	p := NewProfile(CreateProfileRequest{UserID: "7"}, t0)
	p.AddBookToHistory(HistoryEntry{BookID: "3", Rating: ptr(2.0), Comment: ptr("meh")}, t0)

	ok := p.UpdateBookInHistory("3", HistoryPatch{Rating: ptr(5.0)}, t1)

	require.True(t, ok)
	assert.Equal(t, 5.0, *p.History[0].Rating)
	assert.Equal(t, "meh", *p.History[0].Comment)
	assert.Equal(t, t1, p.Updated)

	later := t1.Add(time.Hour)
	assert.False(t, p.UpdateBookInHistory("99", HistoryPatch{Rating: ptr(1.0)}, later))
	assert.Equal(t, t1, p.Updated)
}

func TestRemoveBookFromHistory(t *testing.T) {
	p := NewProfile(CreateProfileRequest{UserID: "7"}, t0)
	p.AddBookToHistory(HistoryEntry{BookID: "3"}, t0)
	p.AddBookToHistory(HistoryEntry{BookID: "5"}, t0)
	p.AddBookToHistory(HistoryEntry{BookID: "3"}, t0)

	removed := p.RemoveBookFromHistory("3", t1)

	assert.Equal(t, 2, removed)
	require.Len(t, p.History, 1)
	assert.Equal(t, "5", p.History[0].BookID)
	assert.Equal(t, t1, p.Updated)

	assert.Equal(t, 0, p.RemoveBookFromHistory("42", t1))
}

func TestBookIDs_SkipsBlank(t *testing.T) {
	p := Profile{History: []HistoryEntry{{BookID: "3"}, {BookID: " "}, {BookID: "abc"}, {BookID: ""}}}

	assert.Equal(t, []string{"3", "abc"}, p.BookIDs())
}

func TestEnsureDefaults(t *testing.T) {
	var p Profile
	p.EnsureDefaults()

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"favoriteGenres":[]`)
	assert.Contains(t, string(out), `"history":[]`)
}

func TestUpdateProfileRequest(t *testing.T) {
	assert.True(t, UpdateProfileRequest{}.IsEmpty())
	assert.True(t, UpdateProfileRequest{Preferences: &PreferencesPatch{}}.IsEmpty())

	var req UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"preferences":{"favoriteAuthors":[" Le Guin "]}}`), &req))
	req.Normalize()

	assert.False(t, req.IsEmpty())
	assert.Nil(t, req.Preferences.FavoriteGenres)
	assert.Equal(t, []string{"Le Guin"}, *req.Preferences.FavoriteAuthors)
	assert.NoError(t, req.Validate())

	tooLong := []string{strings.Repeat("x", 101)}
	bad := UpdateProfileRequest{Preferences: &PreferencesPatch{FavoriteGenres: &tooLong}}
	assert.Error(t, bad.Validate())
}

func TestHistoryEntryRequest_FlexibleBookID(t *testing.T) {
	var fromNumber, fromString HistoryEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bookId":3,"rating":4}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"bookId":" 3 "}`), &fromString))

	assert.Equal(t, "3", fromNumber.Entry(t0).BookID)
	assert.Equal(t, "3", fromString.Entry(t0).BookID)
	assert.Equal(t, t0, fromNumber.Entry(t0).ReadDate)

	var bad HistoryEntryRequest
	assert.Error(t, json.Unmarshal([]byte(`{"bookId":{"id":3}}`), &bad))
}

func TestHistoryPatch(t *testing.T) {
	assert.True(t, HistoryPatch{}.IsEmpty())
	assert.NoError(t, HistoryPatch{Rating: ptr(3.5)}.Validate())
	assert.Error(t, HistoryPatch{Rating: ptr(6.0)}.Validate())
}
