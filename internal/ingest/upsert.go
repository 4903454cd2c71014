package ingest

import (
	"context"
	"fmt"
	"strings"

	"quizdb/internal/contenthash"
	"quizdb/internal/qmeta"
	"quizdb/internal/slugger"
	"quizdb/internal/store"
	"quizdb/internal/textsan"
)

// Result reports what an upsert did with one question occurrence.
type Result struct {
	QuestionID int64
	BodyID     int64
	Reused     bool
}

// Upserter lands question occurrences, creating a canonical question row on
// first sight of a content hash and reusing it afterwards. A placement row
// is written on both paths. One Upserter serves one run; its slug registry
// keeps labels unique within that run.
type Upserter struct {
	repo   Repository
	slugs  *slugger.Registry
	format qmeta.FormatTag
}

// NewUpserter builds an upserter for one question set. The format tag comes
// from the set's index file and governs metadata parsing for every question
// in the set.
func NewUpserter(repo Repository, slugs *slugger.Registry, format qmeta.FormatTag) *Upserter {
	return &Upserter{repo: repo, slugs: slugs, format: format}
}

// UpsertTossup lands one tossup occurrence at the given packet position.
func (u *Upserter) UpsertTossup(ctx context.Context, packetID int64, questionNumber int, t Tossup) (Result, error) {
	hash := contenthash.Tossup(t.Question, t.Answer, t.Metadata)
	ref, err := u.repo.FindTossupByHash(ctx, hash)
	if err != nil {
		return Result{}, err
	}
	if ref != nil {
		if err := u.repo.InsertPlacement(ctx, packetID, questionNumber, ref.QuestionID); err != nil {
			return Result{}, err
		}
		return Result{QuestionID: ref.QuestionID, BodyID: ref.BodyID, Reused: true}, nil
	}

	label := slugger.Truncate(textsan.ShortenAnswerline(textsan.RemoveTags(t.Answer)), slugger.TossupLabelRunes)
	questionID, err := u.insertQuestion(ctx, store.FormatTossup, label, t.Metadata)
	if err != nil {
		return Result{}, err
	}
	tossupID, err := u.repo.InsertTossup(ctx, questionID, t.Question, t.Answer)
	if err != nil {
		return Result{}, err
	}
	if err := u.repo.InsertTossupHash(ctx, hash, questionID, tossupID); err != nil {
		return Result{}, err
	}
	if err := u.repo.InsertPlacement(ctx, packetID, questionNumber, questionID); err != nil {
		return Result{}, err
	}
	return Result{QuestionID: questionID, BodyID: tossupID}, nil
}

// UpsertBonus lands one bonus occurrence at the given packet position,
// including its parts on the create path.
func (u *Upserter) UpsertBonus(ctx context.Context, packetID int64, questionNumber int, b Bonus) (Result, error) {
	hash := contenthash.Bonus(b.Leadin, b.Parts, b.Answers, b.Metadata)
	ref, err := u.repo.FindBonusByHash(ctx, hash)
	if err != nil {
		return Result{}, err
	}
	if ref != nil {
		if err := u.repo.InsertPlacement(ctx, packetID, questionNumber, ref.QuestionID); err != nil {
			return Result{}, err
		}
		return Result{QuestionID: ref.QuestionID, BodyID: ref.BodyID, Reused: true}, nil
	}

	questionID, err := u.insertQuestion(ctx, store.FormatBonus, bonusLabel(b), b.Metadata)
	if err != nil {
		return Result{}, err
	}
	bonusID, err := u.repo.InsertBonus(ctx, questionID, b.Leadin, b.LeadinSanitized)
	if err != nil {
		return Result{}, err
	}
	for i, answer := range b.Answers {
		part := store.BonusPart{
			PartNumber:         i + 1,
			Part:               at(b.Parts, i),
			PartSanitized:      at(b.PartsSanitized, i),
			Answer:             answer,
			AnswerSanitized:    sanitizedAnswer(b, i),
			DifficultyModifier: at(b.DifficultyModifiers, i),
		}
		if i < len(b.Values) {
			part.Value = b.Values[i]
		}
		if _, err := u.repo.InsertBonusPart(ctx, bonusID, part); err != nil {
			return Result{}, fmt.Errorf("part %d: %w", i+1, err)
		}
	}
	if err := u.repo.InsertBonusHash(ctx, hash, questionID, bonusID); err != nil {
		return Result{}, err
	}
	if err := u.repo.InsertPlacement(ctx, packetID, questionNumber, questionID); err != nil {
		return Result{}, err
	}
	return Result{QuestionID: questionID, BodyID: bonusID}, nil
}

// insertQuestion creates the canonical row shared by both formats: parsed
// metadata, a run-unique slug from the label, and category slugs.
func (u *Upserter) insertQuestion(ctx context.Context, format store.QuestionFormat, label, metadata string) (int64, error) {
	rec := qmeta.Parse(metadata, u.format)
	q := &store.Question{
		Slug:           u.slugs.Allocate(label),
		Format:         format,
		Metadata:       metadata,
		Author:         rec.Author,
		Editor:         rec.Editor,
		Category:       rec.Category,
		Subcategory:    rec.Subcategory,
		Subsubcategory: rec.Subsubcategory,
	}
	if rec.Category.Set {
		q.CategorySlug = slugger.Slugify(rec.Category.Value)
	}
	if rec.Subcategory.Set {
		q.SubcategorySlug = slugger.Slugify(rec.Subcategory.Value)
	}
	return u.repo.InsertQuestion(ctx, q)
}

// bonusLabel joins one shortened sanitized answer per part.
func bonusLabel(b Bonus) string {
	labels := make([]string, 0, len(b.Answers))
	for i := range b.Answers {
		shortened := textsan.ShortenAnswerline(textsan.RemoveTags(sanitizedAnswer(b, i)))
		labels = append(labels, slugger.Truncate(shortened, slugger.BonusPartLabelRunes))
	}
	return strings.Join(labels, " ")
}

// sanitizedAnswer prefers the archive's sanitized answer and falls back to
// stripping tags from the raw one when the sanitized array is missing or
// short.
func sanitizedAnswer(b Bonus, i int) string {
	if i < len(b.AnswersSanitized) && b.AnswersSanitized[i] != "" {
		return b.AnswersSanitized[i]
	}
	if i < len(b.Answers) {
		return textsan.RemoveTags(b.Answers[i])
	}
	return ""
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
