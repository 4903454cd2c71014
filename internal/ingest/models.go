package ingest

import "encoding/json"

// setIndex is the index.json at the root of a question-set directory.
type setIndex struct {
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Difficulty     json.Number `json:"difficulty"`
	MetadataFormat string      `json:"metadata_format"`
}

// editionIndex is the index.json inside an edition directory.
type editionIndex struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Date string `json:"date"`
}

// packetFile is one packet's worth of questions.
type packetFile struct {
	Tossups []Tossup `json:"tossups"`
	Bonuses []Bonus  `json:"bonuses"`
}

// Tossup is a single-answer question as it appears in a packet file.
type Tossup struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Metadata string `json:"metadata"`
}

// Bonus is a multi-part question as it appears in a packet file. The
// parallel arrays are indexed by part; sanitized variants and scoring
// columns may be shorter than the answers array in older archives.
type Bonus struct {
	Leadin              string   `json:"leadin"`
	LeadinSanitized     string   `json:"leadin_sanitized"`
	Metadata            string   `json:"metadata"`
	Parts               []string `json:"parts"`
	PartsSanitized      []string `json:"parts_sanitized"`
	Answers             []string `json:"answers"`
	AnswersSanitized    []string `json:"answers_sanitized"`
	Values              []*int   `json:"values"`
	DifficultyModifiers []string `json:"difficultyModifiers"`
}
