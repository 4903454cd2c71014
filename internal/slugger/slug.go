package slugger

import (
	goslug "github.com/gosimple/slug"
)

// Label length bounds applied before slugification. Tossup labels come from
// one shortened answer line; bonus labels join one shortened answer per
// part.
const (
	TossupLabelRunes    = 50
	BonusPartLabelRunes = 25
)

// Slugify converts a label into its lowercase, ASCII-safe, hyphen-separated
// form. Transliteration is delegated to gosimple/slug so ligatures, stroked
// letters, and non-Latin scripts keep their content instead of being
// dropped.
func Slugify(label string) string {
	return goslug.Make(label)
}

// Truncate bounds a label to at most limit runes. Truncation happens before
// slugification so multi-byte characters never split mid-rune.
func Truncate(label string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit])
}
