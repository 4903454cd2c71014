package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"quizdb/internal/logging"
	"quizdb/internal/slugger"
	"quizdb/internal/store"
)

const (
	gamesDirName  = "game_files"
	indexFileName = "index.json"
)

// Summary tallies what one scores run did.
type Summary struct {
	Tournaments        int
	SkippedTournaments int
	Rounds             int
	Games              int
	Buzzes             int
	BonusConversions   int
	FailedFiles        int
	MissingRefs        int
}

// roundRef caches the round and packet rows backing one round number.
type roundRef struct {
	RoundID  int64
	PacketID int64
}

// caches holds the per-tournament lookup state built up while walking game
// files. Everything here is scoped to a single tournament.
type caches struct {
	rounds     map[int]roundRef
	teams      map[string]int64
	players    map[string]int64
	tossups    map[string]int64
	bonusParts map[string][]store.BonusPartRef
}

func newCaches() *caches {
	return &caches{
		rounds:     make(map[int]roundRef),
		teams:      make(map[string]int64),
		players:    make(map[string]int64),
		tossups:    make(map[string]int64),
		bonusParts: make(map[string][]store.BonusPartRef),
	}
}

func placementKey(packetID int64, questionNumber int) string {
	return fmt.Sprintf("%d-%d", packetID, questionNumber)
}

func playerKey(teamName, playerName string) string {
	return teamName + "\x00" + playerName
}

// Migrator walks a tournaments tree and lands its contents. Unresolvable
// game records are logged and skipped; only store failures abort the run.
type Migrator struct {
	store     *store.Store
	logger    *slog.Logger
	overwrite bool
}

// NewMigrator builds a migrator. With overwrite set, tournaments whose slug
// is already present are deleted and re-ingested instead of skipped.
func NewMigrator(s *store.Store, logger *slog.Logger, overwrite bool) *Migrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Migrator{
		store:     s,
		logger:    logging.WithComponent(logger, "scores"),
		overwrite: overwrite,
	}
}

// Run ingests every tournament directory under root.
func (m *Migrator) Run(ctx context.Context, root string) (*Summary, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read tournaments dir: %w", err)
	}

	summary := &Summary{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !entry.IsDir() {
			continue
		}
		if err := m.ingestTournament(ctx, filepath.Join(root, entry.Name()), summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (m *Migrator) ingestTournament(ctx context.Context, dir string, summary *Summary) error {
	var index tournamentIndex
	if ok := m.readIndex(dir, &index); !ok {
		return nil
	}
	logger := m.logger.With(slog.String(logging.FieldTournament, index.Slug))

	existing, err := m.store.FindTournamentBySlug(ctx, index.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		if !m.overwrite {
			logger.Info("tournament already ingested, skipping")
			summary.SkippedTournaments++
			return nil
		}
		logger.Info("overwriting existing tournament")
		if err := m.store.DeleteTournament(ctx, existing.ID); err != nil {
			return err
		}
	}

	set, err := m.store.FindQuestionSetByName(ctx, index.Set)
	if err != nil {
		return err
	}
	if set == nil {
		logger.Warn("skipping tournament, question set not ingested", logging.FieldSet, index.Set)
		summary.MissingRefs++
		return nil
	}

	tournamentID, err := m.store.InsertTournament(ctx, &store.Tournament{
		Name:          index.Name,
		Slug:          index.Slug,
		QuestionSetID: set.ID,
		Location:      index.Location,
		Level:         index.Level,
		StartDate:     index.StartDate,
		EndDate:       index.EndDate,
	})
	if err != nil {
		return err
	}
	summary.Tournaments++

	gamesDir := filepath.Join(dir, gamesDirName)
	files, err := os.ReadDir(gamesDir)
	if err != nil {
		logger.Warn("tournament has no game files", "error", err)
		return nil
	}
	state := newCaches()
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		path := filepath.Join(gamesDir, file.Name())
		if err := m.ingestGame(ctx, logger, path, tournamentID, set.ID, index.ExcludedRounds, state, summary); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) ingestGame(ctx context.Context, logger *slog.Logger, path string, tournamentID, setID int64, excludedRounds []int, state *caches, summary *Summary) error {
	logger = logger.With(logging.FieldFile, path)

	number, ok := roundNumber(path)
	if !ok {
		logger.Warn("skipping game file without a round number in its name")
		summary.FailedFiles++
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping unreadable game file", "error", err)
		summary.FailedFiles++
		return nil
	}
	var game gameFile
	if err := json.Unmarshal(data, &game); err != nil {
		logger.Warn("skipping malformed game file", "error", err)
		summary.FailedFiles++
		return nil
	}
	if len(game.MatchTeams) != 2 {
		logger.Warn("skipping game without exactly two teams", "teams", len(game.MatchTeams))
		summary.FailedFiles++
		return nil
	}

	round, ok := state.rounds[number]
	if !ok {
		packet, err := m.store.FindPacketByName(ctx, setID, game.Packet)
		if err != nil {
			return err
		}
		if packet == nil {
			logger.Warn("skipping game, packet not found", logging.FieldPacket, game.Packet)
			summary.MissingRefs++
			return nil
		}
		exclude := slices.Contains(excludedRounds, number)
		roundID, err := m.store.InsertRound(ctx, tournamentID, number, packet.ID, exclude)
		if err != nil {
			return err
		}
		round = roundRef{RoundID: roundID, PacketID: packet.ID}
		state.rounds[number] = round
		summary.Rounds++
	}

	for _, mt := range game.MatchTeams {
		if err := m.ensureTeam(ctx, tournamentID, mt.Team, state); err != nil {
			return err
		}
	}
	gameID, err := m.store.InsertGame(ctx, round.RoundID, game.TossupsRead,
		state.teams[game.MatchTeams[0].Team.Name], state.teams[game.MatchTeams[1].Team.Name])
	if err != nil {
		return err
	}
	summary.Games++

	for _, question := range game.MatchQuestions {
		if err := m.ingestQuestion(ctx, logger, question, gameID, round.PacketID, state, summary); err != nil {
			return err
		}
	}
	return nil
}

// ensureTeam caches team and player rows, inserting on first sight.
func (m *Migrator) ensureTeam(ctx context.Context, tournamentID int64, team teamInfo, state *caches) error {
	teamID, ok := state.teams[team.Name]
	if !ok {
		var err error
		teamID, err = m.store.InsertTeam(ctx, tournamentID, team.Name, slugger.Slugify(team.Name))
		if err != nil {
			return err
		}
		state.teams[team.Name] = teamID
	}
	for _, player := range team.Players {
		key := playerKey(team.Name, player.Name)
		if _, ok := state.players[key]; ok {
			continue
		}
		playerID, err := m.store.InsertPlayer(ctx, teamID, player.Name, slugger.Slugify(player.Name))
		if err != nil {
			return err
		}
		state.players[key] = playerID
	}
	return nil
}

func (m *Migrator) ingestQuestion(ctx context.Context, logger *slog.Logger, question matchQuestion, gameID int64, packetID int64, state *caches, summary *Summary) error {
	tossupKey := placementKey(packetID, question.TossupQuestion.QuestionNumber)
	tossupID, ok := state.tossups[tossupKey]
	if !ok {
		var err error
		tossupID, err = m.store.FindTossupIDByPlacement(ctx, packetID, question.TossupQuestion.QuestionNumber)
		if err != nil {
			return err
		}
		state.tossups[tossupKey] = tossupID
	}
	if tossupID == 0 {
		logger.Warn("skipping buzzes, tossup placement not found",
			"question_number", question.TossupQuestion.QuestionNumber)
		summary.MissingRefs++
	} else {
		for _, buzz := range question.Buzzes {
			playerID, ok := state.players[playerKey(buzz.Team.Name, buzz.Player.Name)]
			if !ok {
				logger.Warn("skipping buzz from unrostered player",
					"team", buzz.Team.Name, "player", buzz.Player.Name)
				summary.MissingRefs++
				continue
			}
			if err := m.store.InsertBuzz(ctx, playerID, gameID, tossupID, buzz.BuzzPosition.WordIndex, buzz.Result.Value); err != nil {
				return err
			}
			summary.Buzzes++
		}
	}

	if question.Bonus == nil {
		return nil
	}
	return m.ingestBonus(ctx, logger, question, gameID, packetID, state, summary)
}

// ingestBonus records the controlling team's conversion of each bonus part.
// Control goes to the team whose buzz scored on the paired tossup.
func (m *Migrator) ingestBonus(ctx context.Context, logger *slog.Logger, question matchQuestion, gameID int64, packetID int64, state *caches, summary *Summary) error {
	bonus := question.Bonus
	bonusKey := placementKey(packetID, bonus.Question.QuestionNumber)
	parts, ok := state.bonusParts[bonusKey]
	if !ok {
		var err error
		parts, err = m.store.FindBonusParts(ctx, packetID, bonus.Question.QuestionNumber)
		if err != nil {
			return err
		}
		state.bonusParts[bonusKey] = parts
	}
	if len(parts) == 0 {
		logger.Warn("skipping bonus, placement not found",
			"question_number", bonus.Question.QuestionNumber)
		summary.MissingRefs++
		return nil
	}

	teamID, ok := controllingTeam(question.Buzzes, state)
	if !ok {
		logger.Warn("skipping bonus without a controlling team",
			"question_number", bonus.Question.QuestionNumber)
		summary.MissingRefs++
		return nil
	}

	for i, part := range bonus.Parts {
		ref, ok := partByNumber(parts, i+1)
		if !ok {
			logger.Warn("skipping bonus part, no stored part with that number", "part", i+1)
			summary.MissingRefs++
			continue
		}
		if err := m.store.InsertBonusPartDirect(ctx, teamID, gameID, ref.ID, part.ControlledPoints); err != nil {
			return err
		}
		summary.BonusConversions++
	}
	return nil
}

func controllingTeam(buzzes []buzzEvent, state *caches) (int64, bool) {
	for _, buzz := range buzzes {
		if buzz.Result.Value > 0 {
			id, ok := state.teams[buzz.Team.Name]
			return id, ok
		}
	}
	return 0, false
}

func partByNumber(parts []store.BonusPartRef, number int) (store.BonusPartRef, bool) {
	for _, part := range parts {
		if part.PartNumber == number {
			return part, true
		}
	}
	return store.BonusPartRef{}, false
}

// readIndex loads dir/index.json into out, logging and reporting false when
// the file is missing or malformed.
func (m *Migrator) readIndex(dir string, out any) bool {
	path := filepath.Join(dir, indexFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		m.logger.Info("skipping directory without index", logging.FieldFile, path)
		return false
	}
	if err != nil {
		m.logger.Warn("skipping unreadable index", logging.FieldFile, path, "error", err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		m.logger.Warn("skipping malformed index", logging.FieldFile, path, "error", err)
		return false
	}
	return true
}

// roundNumber extracts the round from a game file name: the first numeric
// underscore-separated token, extension excluded.
func roundNumber(path string) (int, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, token := range strings.Split(base, "_") {
		if n, err := strconv.Atoi(token); err == nil {
			return n, true
		}
	}
	return 0, false
}
