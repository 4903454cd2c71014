package store

import (
	"context"
	"path/filepath"
	"testing"

	"quizdb/internal/qmeta"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizdb.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizdb.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen with applied migrations: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestQuestionSetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.InsertQuestionSet(ctx, &QuestionSet{
		Name:       "National Championship",
		Slug:       "national-championship",
		Difficulty: "hard",
		Format:     qmeta.FormatEditorTagged,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	set, err := s.FindQuestionSetBySlug(ctx, "national-championship")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if set == nil || set.ID != id {
		t.Fatalf("unexpected set %+v", set)
	}
	if set.Format != qmeta.FormatEditorTagged {
		t.Fatalf("format round trip = %v", set.Format)
	}

	byName, err := s.FindQuestionSetByName(ctx, "National Championship")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if byName == nil || byName.ID != id {
		t.Fatalf("unexpected set by name %+v", byName)
	}

	missing, err := s.FindQuestionSetBySlug(ctx, "nope")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing set, got %+v", missing)
	}
}

func TestHashIndexMissAndHit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ref, err := s.FindTossupByHash(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("find miss: %v", err)
	}
	if ref != nil {
		t.Fatalf("expected miss, got %+v", ref)
	}

	qid, err := s.InsertQuestion(ctx, &Question{Slug: "mitochondria", Format: FormatTossup})
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}
	tid, err := s.InsertTossup(ctx, qid, "What organelle...", "Mitochondria")
	if err != nil {
		t.Fatalf("insert tossup: %v", err)
	}
	if err := s.InsertTossupHash(ctx, "deadbeef", qid, tid); err != nil {
		t.Fatalf("insert hash: %v", err)
	}

	ref, err = s.FindTossupByHash(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("find hit: %v", err)
	}
	if ref == nil || ref.QuestionID != qid || ref.BodyID != tid {
		t.Fatalf("unexpected hash ref %+v", ref)
	}
}

func TestQuestionFieldsPersistAbsentVsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	qid, err := s.InsertQuestion(ctx, &Question{
		Slug:     "paris",
		Format:   FormatTossup,
		Metadata: "Jane Doe, ",
		Author:   qmeta.Field{Value: "Jane Doe", Set: true},
		Category: qmeta.Field{Value: "", Set: true},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	q, err := s.GetQuestion(ctx, qid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !q.Author.Set || q.Author.Value != "Jane Doe" {
		t.Fatalf("author = %+v", q.Author)
	}
	if !q.Category.Set || q.Category.Value != "" {
		t.Fatalf("explicitly-empty category lost: %+v", q.Category)
	}
	if q.Editor.Set {
		t.Fatalf("absent editor gained a value: %+v", q.Editor)
	}
}

func TestDeleteEditionCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	setID, err := s.InsertQuestionSet(ctx, &QuestionSet{Name: "Set", Slug: "set"})
	if err != nil {
		t.Fatalf("insert set: %v", err)
	}
	editionID, err := s.InsertEdition(ctx, &Edition{QuestionSetID: setID, Name: "2024", Slug: "2024"})
	if err != nil {
		t.Fatalf("insert edition: %v", err)
	}
	packetID, err := s.InsertPacket(ctx, &Packet{EditionID: editionID, Name: "round-1"})
	if err != nil {
		t.Fatalf("insert packet: %v", err)
	}
	qid, err := s.InsertQuestion(ctx, &Question{Slug: "q", Format: FormatTossup})
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}
	if err := s.InsertPlacement(ctx, packetID, 1, qid); err != nil {
		t.Fatalf("insert placement: %v", err)
	}

	if err := s.DeleteEdition(ctx, editionID); err != nil {
		t.Fatalf("delete edition: %v", err)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["packet"] != 0 || counts["packet_question"] != 0 {
		t.Fatalf("cascade left rows behind: %+v", counts)
	}
	// Canonical questions are owned by their hash, not the edition.
	if counts["question"] != 1 {
		t.Fatalf("question rows = %d", counts["question"])
	}
}

func TestBonusPartsLookupByPlacement(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	setID, _ := s.InsertQuestionSet(ctx, &QuestionSet{Name: "Set", Slug: "set"})
	editionID, _ := s.InsertEdition(ctx, &Edition{QuestionSetID: setID, Name: "2024", Slug: "2024"})
	packetID, _ := s.InsertPacket(ctx, &Packet{EditionID: editionID, Name: "round-1"})

	qid, err := s.InsertQuestion(ctx, &Question{Slug: "rivers", Format: FormatBonus})
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}
	bonusID, err := s.InsertBonus(ctx, qid, "Leadin...", "Leadin...")
	if err != nil {
		t.Fatalf("insert bonus: %v", err)
	}
	ten := 10
	for i := 1; i <= 3; i++ {
		if _, err := s.InsertBonusPart(ctx, bonusID, BonusPart{PartNumber: i, Answer: "a", Value: &ten}); err != nil {
			t.Fatalf("insert part %d: %v", i, err)
		}
	}
	if err := s.InsertPlacement(ctx, packetID, 4, qid); err != nil {
		t.Fatalf("insert placement: %v", err)
	}

	parts, err := s.FindBonusParts(ctx, packetID, 4)
	if err != nil {
		t.Fatalf("find parts: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i, part := range parts {
		if part.PartNumber != i+1 {
			t.Fatalf("parts out of order: %+v", parts)
		}
	}

	none, err := s.FindBonusParts(ctx, packetID, 99)
	if err != nil {
		t.Fatalf("find missing parts: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no parts for missing placement, got %+v", none)
	}
}

func TestFindTossupIDByPlacement(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	setID, _ := s.InsertQuestionSet(ctx, &QuestionSet{Name: "Set", Slug: "set"})
	editionID, _ := s.InsertEdition(ctx, &Edition{QuestionSetID: setID, Name: "2024", Slug: "2024"})
	packetID, _ := s.InsertPacket(ctx, &Packet{EditionID: editionID, Name: "round-1"})

	qid, _ := s.InsertQuestion(ctx, &Question{Slug: "q", Format: FormatTossup})
	tid, _ := s.InsertTossup(ctx, qid, "text", "answer")
	if err := s.InsertPlacement(ctx, packetID, 7, qid); err != nil {
		t.Fatalf("insert placement: %v", err)
	}

	got, err := s.FindTossupIDByPlacement(ctx, packetID, 7)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != tid {
		t.Fatalf("tossup id = %d, want %d", got, tid)
	}

	missing, err := s.FindTossupIDByPlacement(ctx, packetID, 8)
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != 0 {
		t.Fatalf("expected 0 for missing placement, got %d", missing)
	}
}
