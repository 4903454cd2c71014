package store

import "quizdb/internal/qmeta"

// QuestionFormat discriminates single-answer from multi-part questions.
type QuestionFormat string

const (
	FormatTossup QuestionFormat = "tossup"
	FormatBonus  QuestionFormat = "bonus"
)

// QuestionSet is one archived question set.
type QuestionSet struct {
	ID         int64
	Name       string
	Slug       string
	Difficulty string
	Format     qmeta.FormatTag
}

// Edition is a dated release of a question set.
type Edition struct {
	ID            int64
	QuestionSetID int64
	Name          string
	Slug          string
	Date          string
}

// Packet is one round's worth of questions inside an edition.
type Packet struct {
	ID        int64
	EditionID int64
	Name      string
}

// Question is a canonical deduplicated question. Created once per distinct
// content hash and never mutated afterwards.
type Question struct {
	ID              int64
	Slug            string
	Format          QuestionFormat
	Metadata        string
	Author          qmeta.Field
	Editor          qmeta.Field
	Category        qmeta.Field
	Subcategory     qmeta.Field
	Subsubcategory  qmeta.Field
	CategorySlug    string
	SubcategorySlug string
}

// BonusPart is one scored part of a bonus body.
type BonusPart struct {
	PartNumber         int
	Part               string
	PartSanitized      string
	Answer             string
	AnswerSanitized    string
	Value              *int
	DifficultyModifier string
}

// HashRef resolves a content hash to the canonical question and body rows.
type HashRef struct {
	QuestionID int64
	BodyID     int64
}

// BonusPartRef identifies one stored bonus part by row id and position.
type BonusPartRef struct {
	ID         int64
	PartNumber int
}

// Tournament is one archived tournament.
type Tournament struct {
	ID            int64
	Name          string
	Slug          string
	QuestionSetID int64
	Location      string
	Level         string
	StartDate     string
	EndDate       string
}
