package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InsertTournament inserts a tournament and returns its id.
func (s *Store) InsertTournament(ctx context.Context, t *Tournament) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tournament (name, slug, question_set_id, location, level, start_date, end_date)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Name,
		t.Slug,
		t.QuestionSetID,
		nullableString(t.Location),
		nullableString(t.Level),
		nullableString(t.StartDate),
		nullableString(t.EndDate),
	)
	if err != nil {
		return 0, fmt.Errorf("insert tournament: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FindTournamentBySlug returns the tournament with the given slug, or nil
// when absent.
func (s *Store) FindTournamentBySlug(ctx context.Context, slug string) (*Tournament, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, slug, question_set_id, location, level, start_date, end_date
         FROM tournament WHERE slug = ?`,
		slug,
	)

	var (
		t                  Tournament
		questionSetID      sql.NullInt64
		location, level    sql.NullString
		startDate, endDate sql.NullString
	)
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &questionSetID, &location, &level, &startDate, &endDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tournament: %w", err)
	}
	t.QuestionSetID = questionSetID.Int64
	t.Location = location.String
	t.Level = level.String
	t.StartDate = startDate.String
	t.EndDate = endDate.String
	return &t, nil
}

// DeleteTournament removes a tournament and, through cascades, its rounds,
// teams, players, games, and buzzes.
func (s *Store) DeleteTournament(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tournament WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return nil
}

// InsertRound inserts a tournament round and returns its id.
func (s *Store) InsertRound(ctx context.Context, tournamentID int64, number int, packetID int64, excludeFromIndividual bool) (int64, error) {
	exclude := 0
	if excludeFromIndividual {
		exclude = 1
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO round (tournament_id, number, packet_id, exclude_from_individual) VALUES (?, ?, ?, ?)`,
		tournamentID, number, packetID, exclude,
	)
	if err != nil {
		return 0, fmt.Errorf("insert round: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertTeam inserts a team and returns its id.
func (s *Store) InsertTeam(ctx context.Context, tournamentID int64, name, slug string) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO team (tournament_id, name, slug) VALUES (?, ?, ?)`,
		tournamentID, name, nullableString(slug),
	)
	if err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertPlayer inserts a player and returns its id.
func (s *Store) InsertPlayer(ctx context.Context, teamID int64, name, slug string) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO player (team_id, name, slug) VALUES (?, ?, ?)`,
		teamID, name, nullableString(slug),
	)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertGame inserts a game and returns its id.
func (s *Store) InsertGame(ctx context.Context, roundID int64, tossupsRead int, teamOneID, teamTwoID int64) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO game (round_id, tossups_read, team_one_id, team_two_id) VALUES (?, ?, ?, ?)`,
		roundID, tossupsRead, teamOneID, teamTwoID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// InsertBuzz records one player's buzz on a tossup.
func (s *Store) InsertBuzz(ctx context.Context, playerID, gameID, tossupID int64, buzzPosition, value int) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO buzz (player_id, game_id, tossup_id, buzz_position, value) VALUES (?, ?, ?, ?, ?)`,
		playerID, gameID, tossupID, buzzPosition, value,
	); err != nil {
		return fmt.Errorf("insert buzz: %w", err)
	}
	return nil
}

// InsertBonusPartDirect records a team's conversion of one bonus part.
func (s *Store) InsertBonusPartDirect(ctx context.Context, teamID, gameID, bonusPartID int64, value int) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO bonus_part_direct (team_id, game_id, bonus_part_id, value) VALUES (?, ?, ?, ?)`,
		teamID, gameID, bonusPartID, value,
	); err != nil {
		return fmt.Errorf("insert bonus part direct: %w", err)
	}
	return nil
}

// FindTossupIDByPlacement resolves the tossup body referenced by a packet
// position, or 0 when the placement or body is absent.
func (s *Store) FindTossupIDByPlacement(ctx context.Context, packetID int64, questionNumber int) (int64, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT t.id
         FROM packet_question pq
         JOIN tossup t ON t.question_id = pq.question_id
         WHERE pq.packet_id = ? AND pq.question_number = ?`,
		packetID, questionNumber,
	)
	var id int64
	err := row.Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find tossup placement: %w", err)
	}
	return id, nil
}

// FindBonusParts resolves the stored bonus parts referenced by a packet
// position, ordered by part number. Empty when the placement is absent.
func (s *Store) FindBonusParts(ctx context.Context, packetID int64, questionNumber int) ([]BonusPartRef, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT bp.id, bp.part_number
         FROM packet_question pq
         JOIN bonus b ON b.question_id = pq.question_id
         JOIN bonus_part bp ON bp.bonus_id = b.id
         WHERE pq.packet_id = ? AND pq.question_number = ?
         ORDER BY bp.part_number`,
		packetID, questionNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("find bonus parts: %w", err)
	}
	defer rows.Close()

	var parts []BonusPartRef
	for rows.Next() {
		var ref BonusPartRef
		if err := rows.Scan(&ref.ID, &ref.PartNumber); err != nil {
			return nil, err
		}
		parts = append(parts, ref)
	}
	return parts, rows.Err()
}
