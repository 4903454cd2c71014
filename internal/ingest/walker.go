package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"quizdb/internal/logging"
	"quizdb/internal/qmeta"
	"quizdb/internal/slugger"
	"quizdb/internal/store"
)

const (
	editionsDirName = "editions"
	packetsDirName  = "packet_files"
	indexFileName   = "index.json"
)

// Summary tallies what one ingestion run did.
type Summary struct {
	Sets            int
	Editions        int
	SkippedEditions int
	Packets         int
	Tossups         int
	Bonuses         int
	Reused          int
	FailedFiles     int
}

// Migrator walks a question_sets tree and lands its contents. Malformed or
// incomplete subtrees are logged and skipped; only store failures abort the
// run.
type Migrator struct {
	store     *store.Store
	logger    *slog.Logger
	overwrite bool
	slugs     *slugger.Registry
}

// NewMigrator builds a migrator. With overwrite set, editions whose slug is
// already present are deleted and re-ingested instead of skipped.
func NewMigrator(s *store.Store, logger *slog.Logger, overwrite bool) *Migrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Migrator{
		store:     s,
		logger:    logging.WithComponent(logger, "ingest"),
		overwrite: overwrite,
		slugs:     slugger.NewRegistry(),
	}
}

// Run ingests every question-set directory under root.
func (m *Migrator) Run(ctx context.Context, root string) (*Summary, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read question sets dir: %w", err)
	}

	summary := &Summary{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !entry.IsDir() {
			continue
		}
		if err := m.ingestSet(ctx, filepath.Join(root, entry.Name()), summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (m *Migrator) ingestSet(ctx context.Context, dir string, summary *Summary) error {
	var index setIndex
	if ok := m.readIndex(dir, &index); !ok {
		return nil
	}
	logger := m.logger.With(slog.String(logging.FieldSet, index.Slug))

	format, err := qmeta.ParseTag(index.MetadataFormat)
	if err != nil {
		logger.Warn("unrecognized metadata format, fields will be absent", "error", err)
	}

	set, err := m.store.FindQuestionSetBySlug(ctx, index.Slug)
	if err != nil {
		return err
	}
	var setID int64
	if set != nil {
		setID = set.ID
	} else {
		setID, err = m.store.InsertQuestionSet(ctx, &store.QuestionSet{
			Name:       index.Name,
			Slug:       index.Slug,
			Difficulty: index.Difficulty.String(),
			Format:     format,
		})
		if err != nil {
			return err
		}
		summary.Sets++
	}

	editionsDir := filepath.Join(dir, editionsDirName)
	editions, err := os.ReadDir(editionsDir)
	if err != nil {
		logger.Warn("skipping set, editions directory unreadable", "error", err)
		return nil
	}
	for _, entry := range editions {
		if !entry.IsDir() {
			continue
		}
		if err := m.ingestEdition(ctx, logger, filepath.Join(editionsDir, entry.Name()), setID, format, summary); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) ingestEdition(ctx context.Context, logger *slog.Logger, dir string, setID int64, format qmeta.FormatTag, summary *Summary) error {
	var index editionIndex
	if ok := m.readIndex(dir, &index); !ok {
		return nil
	}
	logger = logger.With(slog.String(logging.FieldEdition, index.Slug))

	existing, err := m.store.FindEdition(ctx, setID, index.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		if !m.overwrite {
			logger.Info("edition already ingested, skipping")
			summary.SkippedEditions++
			return nil
		}
		logger.Info("overwriting existing edition")
		if err := m.store.DeleteEdition(ctx, existing.ID); err != nil {
			return err
		}
	}

	editionID, err := m.store.InsertEdition(ctx, &store.Edition{
		QuestionSetID: setID,
		Name:          index.Name,
		Slug:          index.Slug,
		Date:          index.Date,
	})
	if err != nil {
		return err
	}
	summary.Editions++

	packetsDir := filepath.Join(dir, packetsDirName)
	files, err := os.ReadDir(packetsDir)
	if err != nil {
		logger.Warn("edition has no packet files", "error", err)
		return nil
	}
	upserter := NewUpserter(m.store, m.slugs, format)
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		if err := m.ingestPacket(ctx, logger, filepath.Join(packetsDir, file.Name()), editionID, upserter, summary); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) ingestPacket(ctx context.Context, logger *slog.Logger, path string, editionID int64, upserter *Upserter, summary *Summary) error {
	name := packetName(path)
	logger = logger.With(slog.String(logging.FieldPacket, name))

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping unreadable packet file", logging.FieldFile, path, "error", err)
		summary.FailedFiles++
		return nil
	}
	var packet packetFile
	if err := json.Unmarshal(data, &packet); err != nil {
		logger.Warn("skipping malformed packet file", logging.FieldFile, path, "error", err)
		summary.FailedFiles++
		return nil
	}

	packetID, err := m.store.InsertPacket(ctx, &store.Packet{EditionID: editionID, Name: name})
	if err != nil {
		return err
	}
	summary.Packets++

	for i, tossup := range packet.Tossups {
		result, err := upserter.UpsertTossup(ctx, packetID, i+1, tossup)
		if err != nil {
			return fmt.Errorf("tossup %d in %s: %w", i+1, path, err)
		}
		summary.Tossups++
		if result.Reused {
			summary.Reused++
		}
	}
	for i, bonus := range packet.Bonuses {
		result, err := upserter.UpsertBonus(ctx, packetID, i+1, bonus)
		if err != nil {
			return fmt.Errorf("bonus %d in %s: %w", i+1, path, err)
		}
		summary.Bonuses++
		if result.Reused {
			summary.Reused++
		}
	}
	return nil
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

// packetName derives the packet name from the file name, everything before
// the first dot.
func packetName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
