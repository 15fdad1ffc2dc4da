package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.StrictPolicy()

// Clean strips all markup from user-supplied text. Plain text passes through
// unchanged.
func Clean(s string) string {
	return policy.Sanitize(s)
}
