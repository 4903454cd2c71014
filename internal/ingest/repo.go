package ingest

import (
	"context"

	"quizdb/internal/store"
)

// Repository is the slice of the store the deduplicating upserter needs.
// *store.Store satisfies it; tests substitute an in-memory fake.
type Repository interface {
	FindTossupByHash(ctx context.Context, hash string) (*store.HashRef, error)
	FindBonusByHash(ctx context.Context, hash string) (*store.HashRef, error)
	InsertQuestion(ctx context.Context, q *store.Question) (int64, error)
	InsertTossup(ctx context.Context, questionID int64, question, answer string) (int64, error)
	InsertBonus(ctx context.Context, questionID int64, leadin, leadinSanitized string) (int64, error)
	InsertBonusPart(ctx context.Context, bonusID int64, part store.BonusPart) (int64, error)
	InsertTossupHash(ctx context.Context, hash string, questionID, tossupID int64) error
	InsertBonusHash(ctx context.Context, hash string, questionID, bonusID int64) error
	InsertPlacement(ctx context.Context, packetID int64, questionNumber int, questionID int64) error
}

var _ Repository = (*store.Store)(nil)
