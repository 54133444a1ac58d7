// Package redact scrubs contact details from user-submitted free text.
//
// Clients and executors must not be able to exchange phone numbers, chat
// handles or links before a deal is struck, so every free-text field that
// crosses the system boundary (request descriptions, offer comments) is
// passed through Mask before storage or relaying.
package redact

import "regexp"

// Placeholder is the fixed marker substituted for every contact-like
// substring. It deliberately contains no digits, handles or URLs so that
// Mask is idempotent.
const Placeholder = "[hidden until agreed]"

// contactRE matches, case-insensitively:
//   - phone-like runs: optional "+", a digit, then six or more digits,
//     dashes or spaces (so short counts like "5 meters" survive),
//   - @handles of three or more word characters,
//   - http(s) URLs,
//   - t.me links.
var contactRE = regexp.MustCompile(`(?i)(\+?\d[\d\-\s]{6,}|@[\w_]{3,}|https?://\S+|t\.me/\S+)`)

// Mask replaces every contact-like substring in s with Placeholder.
// Text without matches is returned unchanged.
func Mask(s string) string {
	return contactRE.ReplaceAllString(s, Placeholder)
}
