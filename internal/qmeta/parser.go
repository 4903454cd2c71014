package qmeta

import (
	"regexp"
	"strings"
)

// levelSeparator divides category levels inside a metadata string.
const levelSeparator = " - "

var (
	authorSubcategoryPattern = regexp.MustCompile(`^(.*?), (.*)$`)
	editorTaggedPattern      = regexp.MustCompile(`^(.+?), (.*)&gt;.*Editor: (.*)$`)
	authorSpacedPattern      = regexp.MustCompile(`^(.+?) , (.*)$`)
	authorLoosePattern       = regexp.MustCompile(`^(.+?)\s*[,-]\s*(.+)$`)
)

// Parse extracts structured metadata from a raw metadata string using the
// convention declared by the owning question set. A nil-equivalent (empty)
// metadata string, an unknown tag, or a string that does not match its
// declared convention all yield an all-absent Record.
func Parse(metadata string, tag FormatTag) Record {
	if strings.TrimSpace(metadata) == "" {
		return Record{}
	}

	switch tag {
	case FormatSubcategory:
		return parseSubcategoryOnly(metadata)
	case FormatAuthorSubcategory:
		return parseAuthorSubcategory(metadata)
	case FormatEditorTagged:
		return parseEditorTagged(metadata)
	case FormatAuthorSpaced:
		return parseAuthorSpaced(metadata)
	case FormatDelimited:
		return parseDelimited(metadata)
	case FormatAuthorLoose:
		return parseAuthorLoose(metadata)
	default:
		return Record{}
	}
}

func parseSubcategoryOnly(metadata string) Record {
	var rec Record
	rec.Subcategory = newField(metadata)
	rec.Category = lookupCategory(rec.Subcategory)
	return rec
}

func parseAuthorSubcategory(metadata string) Record {
	match := authorSubcategoryPattern.FindStringSubmatch(metadata)
	if match == nil {
		return Record{}
	}
	var rec Record
	rec.Author = newField(match[1])
	// Historical quirk: in this convention the split parts populate
	// subcategory and subsubcategory, and category comes from the lookup
	// table keyed on the subcategory.
	splitLevels(match[2], &rec.Subcategory, &rec.Subsubcategory)
	rec.Category = lookupCategory(rec.Subcategory)
	return rec
}

func parseEditorTagged(metadata string) Record {
	match := editorTaggedPattern.FindStringSubmatch(metadata)
	if match == nil {
		return Record{}
	}
	var rec Record
	rec.Author = newField(match[1])
	rec.Editor = newField(match[3])
	splitLevels(match[2], &rec.Category, &rec.Subcategory, &rec.Subsubcategory)
	return rec
}

func parseAuthorSpaced(metadata string) Record {
	match := authorSpacedPattern.FindStringSubmatch(metadata)
	if match == nil {
		return Record{}
	}
	var rec Record
	rec.Author = newField(match[1])
	splitLevels(match[2], &rec.Category, &rec.Subcategory, &rec.Subsubcategory)
	return rec
}

func parseDelimited(metadata string) Record {
	var rec Record
	splitLevels(metadata, &rec.Category, &rec.Subcategory, &rec.Subsubcategory)
	return rec
}

func parseAuthorLoose(metadata string) Record {
	match := authorLoosePattern.FindStringSubmatch(strings.TrimSpace(metadata))
	if match == nil {
		return Record{}
	}
	var rec Record
	rec.Author = newField(match[1])
	rec.Subcategory = newField(match[2])
	rec.Category = lookupCategory(rec.Subcategory)
	return rec
}

// splitLevels assigns successive level-separated spans to the given fields.
// Spans beyond the field count are dropped; fields beyond the span count
// stay absent.
func splitLevels(raw string, fields ...*Field) {
	parts := strings.Split(raw, levelSeparator)
	for i, field := range fields {
		if i < len(parts) {
			*field = newField(parts[i])
		}
	}
}

// lookupCategory resolves the category for a parsed subcategory, falling
// back to the subcategory itself when the table has no entry.
func lookupCategory(subcategory Field) Field {
	if !subcategory.Set {
		return Field{}
	}
	if category, ok := subcategoryToCategory[subcategory.Value]; ok {
		return Field{Value: category, Set: true}
	}
	return Field{Value: subcategory.Value, Set: true}
}
