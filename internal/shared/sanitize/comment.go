package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// CommentSanitizer reduces user comments to plain text. Safe for concurrent use.
type CommentSanitizer struct {
	policy *bluemonday.Policy
}

func NewCommentSanitizer() *CommentSanitizer {
	return &CommentSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips every tag and returns the unescaped, trimmed text.
func (s *CommentSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
}
