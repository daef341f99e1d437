// Package store owns persistence for form submissions. Each submission type
// lives in its own collection; records are append-only and never mutated.
package store

import (
	"context"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

// Store defines the data access contract for the three submission
// collections. Inserts stamp created_at server-side and return the new
// record's identifier as a display string. Lists return whole collections
// newest first — the admin surface has no pagination.
type Store interface {
	InsertApplication(ctx context.Context, app domain.FighterApplication) (string, error)
	InsertNomination(ctx context.Context, nom domain.FighterNomination) (string, error)

	// InsertSignup does not enforce uniqueness; callers probe with
	// SignupExists first. The read-then-write gap is a known, accepted race.
	InsertSignup(ctx context.Context, s domain.EmailSignup) (string, error)
	SignupExists(ctx context.Context, email string) (bool, error)

	ListApplications(ctx context.Context) ([]domain.FighterApplication, error)
	ListNominations(ctx context.Context) ([]domain.FighterNomination, error)
	ListSignups(ctx context.Context) ([]domain.EmailSignup, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
