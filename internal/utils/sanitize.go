package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

func init() {
	policy.AllowImages()
	// Links open in a new tab without a referrer
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
}

// SanitizeHTML strips unsafe markup from rich-text editor content before it
// is stored. Plain text, including @mention tokens, passes through unchanged.
func SanitizeHTML(source string) string {
	return policy.Sanitize(source)
}
