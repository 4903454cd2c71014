package qmeta

import (
	"fmt"
	"strings"
)

// FormatTag identifies which historical metadata convention a question set
// uses. Sets declare the tag in their index file.
type FormatTag int

const (
	// FormatUnknown matches nothing; Parse returns an all-absent record.
	FormatUnknown FormatTag = iota
	// FormatSubcategory: the metadata string is the subcategory itself.
	FormatSubcategory
	// FormatAuthorSubcategory: "AUTHOR, SUBCATEGORY[ - SUBSUBCATEGORY]".
	FormatAuthorSubcategory
	// FormatEditorTagged: "AUTHOR, CATEGORY - SUBCATEGORY - SUBSUBCATEGORY &gt; ... Editor: EDITOR".
	FormatEditorTagged
	// FormatAuthorSpaced: "AUTHOR , CATEGORY - SUBCATEGORY - SUBSUBCATEGORY"
	// (single space before the comma).
	FormatAuthorSpaced
	// FormatDelimited: "CATEGORY - SUBCATEGORY[ - SUBSUBCATEGORY]".
	FormatDelimited
	// FormatAuthorLoose: "AUTHOR, SUBCATEGORY" or "AUTHOR - SUBCATEGORY".
	FormatAuthorLoose
)

var tagNames = map[FormatTag]string{
	FormatSubcategory:       "subcategory",
	FormatAuthorSubcategory: "author-subcategory",
	FormatEditorTagged:      "editor-tagged",
	FormatAuthorSpaced:      "author-spaced",
	FormatDelimited:         "delimited",
	FormatAuthorLoose:       "author-loose",
}

func (t FormatTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTag resolves a format tag from a set index. Both the symbolic names
// and the numeric tags used by older index files are accepted.
func ParseTag(value string) (FormatTag, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch trimmed {
	case "subcategory", "1":
		return FormatSubcategory, nil
	case "author-subcategory", "2":
		return FormatAuthorSubcategory, nil
	case "editor-tagged", "3":
		return FormatEditorTagged, nil
	case "author-spaced", "4":
		return FormatAuthorSpaced, nil
	case "delimited", "5":
		return FormatDelimited, nil
	case "author-loose", "6":
		return FormatAuthorLoose, nil
	case "":
		return FormatUnknown, nil
	default:
		return FormatUnknown, fmt.Errorf("unrecognized metadata format %q", value)
	}
}
