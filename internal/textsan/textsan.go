package textsan

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
	parenPattern = regexp.MustCompile(` *\([^)]*\)`)
)

// entityReplacer normalizes the two HTML entities that survive in archived
// packet text.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
)

// RemoveTags strips HTML-like tags and normalizes &nbsp; and &amp; entities.
func RemoveTags(text string) string {
	return entityReplacer.Replace(tagPattern.ReplaceAllString(text, ""))
}

// StripParens removes parenthesized asides along with any spaces directly
// preceding them.
func StripParens(text string) string {
	return parenPattern.ReplaceAllString(text, "")
}

// ShortenAnswerline reduces an answer line to its primary form: everything
// before the first bracketed alternate-answer annotation, with parenthesized
// asides removed, entities normalized, and surrounding whitespace trimmed.
func ShortenAnswerline(answerline string) string {
	primary, _, _ := strings.Cut(answerline, "[")
	return strings.TrimSpace(entityReplacer.Replace(StripParens(primary)))
}
