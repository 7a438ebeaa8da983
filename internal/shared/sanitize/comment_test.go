package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentSanitizer(t *testing.T) {
	s := NewCommentSanitizer()

	tests := []struct {
		name, in, want string
	}{
		{"plain text", "Loved it", "Loved it"},
		{"markup stripped", "<b>Great</b> read", "Great read"},
		{"script removed", `<script>alert("x")</script>Nice`, "Nice"},
		{"entities kept readable", "Tom & Jerry's <i>favourite</i>", "Tom & Jerry's favourite"},
		{"trimmed", "  spaced  ", "spaced"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}
