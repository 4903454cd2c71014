package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizdb/internal/qmeta"
)

// InsertQuestionSet inserts a question set and returns its id.
func (s *Store) InsertQuestionSet(ctx context.Context, set *QuestionSet) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO question_set (name, slug, difficulty, metadata_format) VALUES (?, ?, ?, ?)`,
		set.Name,
		set.Slug,
		nullableString(set.Difficulty),
		set.Format.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert question set: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FindQuestionSetBySlug returns the question set with the given slug, or nil
// when absent.
func (s *Store) FindQuestionSetBySlug(ctx context.Context, slug string) (*QuestionSet, error) {
	return s.findQuestionSet(ctx, `SELECT id, name, slug, difficulty, metadata_format FROM question_set WHERE slug = ?`, slug)
}

// FindQuestionSetByName returns the question set with the given name, or nil
// when absent. Tournament indexes reference sets by display name.
func (s *Store) FindQuestionSetByName(ctx context.Context, name string) (*QuestionSet, error) {
	return s.findQuestionSet(ctx, `SELECT id, name, slug, difficulty, metadata_format FROM question_set WHERE name = ?`, name)
}

func (s *Store) findQuestionSet(ctx context.Context, query string, arg any) (*QuestionSet, error) {
	row := s.db.QueryRowContext(ctx, query, arg)

	var (
		set        QuestionSet
		difficulty sql.NullString
		format     sql.NullString
	)
	err := row.Scan(&set.ID, &set.Name, &set.Slug, &difficulty, &format)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find question set: %w", err)
	}
	set.Difficulty = difficulty.String
	if format.Valid {
		if tag, tagErr := qmeta.ParseTag(format.String); tagErr == nil {
			set.Format = tag
		}
	}
	return &set, nil
}

// InsertEdition inserts an edition of a question set and returns its id.
func (s *Store) InsertEdition(ctx context.Context, edition *Edition) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO question_set_edition (question_set_id, name, slug, date) VALUES (?, ?, ?, ?)`,
		edition.QuestionSetID,
		edition.Name,
		edition.Slug,
		nullableString(edition.Date),
	)
	if err != nil {
		return 0, fmt.Errorf("insert edition: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FindEdition returns a set's edition by slug, or nil when absent.
func (s *Store) FindEdition(ctx context.Context, questionSetID int64, slug string) (*Edition, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, question_set_id, name, slug, date FROM question_set_edition WHERE question_set_id = ? AND slug = ?`,
		questionSetID,
		slug,
	)

	var (
		edition Edition
		date    sql.NullString
	)
	err := row.Scan(&edition.ID, &edition.QuestionSetID, &edition.Name, &edition.Slug, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find edition: %w", err)
	}
	edition.Date = date.String
	return &edition, nil
}

// DeleteEdition removes an edition and, through foreign-key cascades, its
// packets and placements. Canonical questions survive; only the linkage
// rows go.
func (s *Store) DeleteEdition(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM question_set_edition WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete edition: %w", err)
	}
	return nil
}

// InsertPacket inserts a packet and returns its id.
func (s *Store) InsertPacket(ctx context.Context, packet *Packet) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO packet (edition_id, name) VALUES (?, ?)`,
		packet.EditionID,
		packet.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("insert packet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FindPacketByName resolves a packet by name across all editions of a
// question set. Tournament game files reference packets this way.
func (s *Store) FindPacketByName(ctx context.Context, questionSetID int64, name string) (*Packet, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT p.id, p.edition_id, p.name
         FROM packet p
         JOIN question_set_edition e ON e.id = p.edition_id
         WHERE e.question_set_id = ? AND p.name = ?
         ORDER BY p.id LIMIT 1`,
		questionSetID,
		name,
	)

	var packet Packet
	err := row.Scan(&packet.ID, &packet.EditionID, &packet.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find packet: %w", err)
	}
	return &packet, nil
}
