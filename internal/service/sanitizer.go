package service

import "regexp"

// Sanitization strips the handful of markup constructs that could turn
// stored note text into executable content when rendered. Benign markup
// passes through unchanged. The three transforms are applied in order:
// script blocks first, then inline event handlers, then javascript:
// URL prefixes.
var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	eventHandlerRe = regexp.MustCompile(`(?i)\s*\bon\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
)

// Sanitize rewrites user-supplied text so it is safe to store and later
// render. It is applied to every free-text field that passed validation.
func Sanitize(input string) string {
	out := scriptBlockRe.ReplaceAllString(input, "")
	out = eventHandlerRe.ReplaceAllString(out, "")
	out = jsProtocolRe.ReplaceAllString(out, "")
	return out
}
