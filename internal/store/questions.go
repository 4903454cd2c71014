package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindTossupByHash resolves a tossup content hash, or returns nil on miss.
func (s *Store) FindTossupByHash(ctx context.Context, hash string) (*HashRef, error) {
	return s.findHash(ctx, `SELECT question_id, tossup_id FROM tossup_hash WHERE hash = ?`, hash)
}

// FindBonusByHash resolves a bonus content hash, or returns nil on miss.
func (s *Store) FindBonusByHash(ctx context.Context, hash string) (*HashRef, error) {
	return s.findHash(ctx, `SELECT question_id, bonus_id FROM bonus_hash WHERE hash = ?`, hash)
}

func (s *Store) findHash(ctx context.Context, query, hash string) (*HashRef, error) {
	row := s.db.QueryRowContext(ctx, query, hash)
	var ref HashRef
	err := row.Scan(&ref.QuestionID, &ref.BodyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hash: %w", err)
	}
	return &ref, nil
}

// InsertQuestion inserts a canonical question record and returns its id.
func (s *Store) InsertQuestion(ctx context.Context, q *Question) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO question (
            slug, format, metadata, author, editor,
            category, subcategory, subsubcategory, category_slug, subcategory_slug
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.Slug,
		string(q.Format),
		nullableString(q.Metadata),
		nullableField(q.Author),
		nullableField(q.Editor),
		nullableField(q.Category),
		nullableField(q.Subcategory),
		nullableField(q.Subsubcategory),
		nullableString(q.CategorySlug),
		nullableString(q.SubcategorySlug),
	)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetQuestion fetches a canonical question by id, or nil when absent.
func (s *Store) GetQuestion(ctx context.Context, id int64) (*Question, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, slug, format, metadata, author, editor,
                category, subcategory, subsubcategory, category_slug, subcategory_slug
         FROM question WHERE id = ?`,
		id,
	)

	var (
		q                        Question
		format                   string
		metadata                 sql.NullString
		author, editor           sql.NullString
		category, subcategory    sql.NullString
		subsubcategory           sql.NullString
		categorySlug, subcatSlug sql.NullString
	)
	err := row.Scan(&q.ID, &q.Slug, &format, &metadata, &author, &editor,
		&category, &subcategory, &subsubcategory, &categorySlug, &subcatSlug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	q.Format = QuestionFormat(format)
	q.Metadata = metadata.String
	q.Author = fieldFromNull(author)
	q.Editor = fieldFromNull(editor)
	q.Category = fieldFromNull(category)
	q.Subcategory = fieldFromNull(subcategory)
	q.Subsubcategory = fieldFromNull(subsubcategory)
	q.CategorySlug = categorySlug.String
	q.SubcategorySlug = subcatSlug.String
	return &q, nil
}

// InsertTossup inserts a tossup body and returns its id.
func (s *Store) InsertTossup(ctx context.Context, questionID int64, question, answer string) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tossup (question_id, question, answer) VALUES (?, ?, ?)`,
		questionID,
		question,
		answer,
	)
	if err != nil {
		return 0, fmt.Errorf("insert tossup: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertBonus inserts a bonus body and returns its id.
func (s *Store) InsertBonus(ctx context.Context, questionID int64, leadin, leadinSanitized string) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO bonus (question_id, leadin, leadin_sanitized) VALUES (?, ?, ?)`,
		questionID,
		leadin,
		nullableString(leadinSanitized),
	)
	if err != nil {
		return 0, fmt.Errorf("insert bonus: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertBonusPart inserts one scored part of a bonus.
func (s *Store) InsertBonusPart(ctx context.Context, bonusID int64, part BonusPart) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO bonus_part (
            bonus_id, part_number, part, part_sanitized,
            answer, answer_sanitized, value, difficulty_modifier
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		bonusID,
		part.PartNumber,
		part.Part,
		nullableString(part.PartSanitized),
		part.Answer,
		nullableString(part.AnswerSanitized),
		nullableInt(part.Value),
		nullableString(part.DifficultyModifier),
	)
	if err != nil {
		return 0, fmt.Errorf("insert bonus part: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertTossupHash records the content-hash index entry for a new tossup.
func (s *Store) InsertTossupHash(ctx context.Context, hash string, questionID, tossupID int64) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tossup_hash (hash, question_id, tossup_id) VALUES (?, ?, ?)`,
		hash, questionID, tossupID,
	); err != nil {
		return fmt.Errorf("insert tossup hash: %w", err)
	}
	return nil
}

// InsertBonusHash records the content-hash index entry for a new bonus.
func (s *Store) InsertBonusHash(ctx context.Context, hash string, questionID, bonusID int64) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO bonus_hash (hash, question_id, bonus_id) VALUES (?, ?, ?)`,
		hash, questionID, bonusID,
	); err != nil {
		return fmt.Errorf("insert bonus hash: %w", err)
	}
	return nil
}

// InsertPlacement links a packet position to a canonical question. Written
// for every occurrence, whether the question was created or reused.
func (s *Store) InsertPlacement(ctx context.Context, packetID int64, questionNumber int, questionID int64) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO packet_question (packet_id, question_number, question_id) VALUES (?, ?, ?)`,
		packetID, questionNumber, questionID,
	); err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}
