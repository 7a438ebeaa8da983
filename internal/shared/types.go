package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// UserID is the cross-store join key: users.id in PostgreSQL and profiles._id in MongoDB.
// Nothing enforces that both sides exist; a profile without a user (or the reverse) is valid.
type UserID string

func (id UserID) String() string {
	return string(id)
}

// IsZero reports whether the id is blank.
func (id UserID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Int64 returns the relational key for this id.
// ok is false when no users row could ever carry it (non-numeric, zero or negative).
func (id UserID) Int64() (int64, bool) {
	return ParseID(string(id))
}

// UnmarshalJSON accepts both "7" and 7, since clients send either.
func (id *UserID) UnmarshalJSON(b []byte) error {
	s, err := UnmarshalFlexibleID(b)
	if err != nil {
		return err
	}
	*id = UserID(s)
	return nil
}

// ErrInvalidIDFormat is returned when a JSON identifier is neither a string nor an integer.
var ErrInvalidIDFormat = errors.New("identifier must be a string or an integer")

// UnmarshalFlexibleID decodes a JSON string or integer into its trimmed string form.
// JSON null decodes to "".
func UnmarshalFlexibleID(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return "", nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", ErrInvalidIDFormat
		}
		return strings.TrimSpace(s), nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", ErrInvalidIDFormat
	}
	if _, err := n.Int64(); err != nil {
		return "", ErrInvalidIDFormat
	}
	return n.String(), nil
}

// ParseID parses a relational primary key. Only positive base-10 integers are accepted.
func ParseID(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
