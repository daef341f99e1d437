package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

// Memory is an in-process Store for tests and for local development without
// a MongoDB deployment. It mirrors Mongo's observable behavior: server-side
// created_at stamping, string display IDs, newest-first listings, and no
// uniqueness constraint on signups beyond the SignupExists probe.
type Memory struct {
	mu           sync.RWMutex
	applications []domain.FighterApplication
	nominations  []domain.FighterNomination
	signups      []domain.EmailSignup
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) InsertApplication(_ context.Context, app domain.FighterApplication) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app.ID = uuid.NewString()
	app.CreatedAt = time.Now().UTC()
	m.applications = append(m.applications, app)
	return app.ID, nil
}

func (m *Memory) InsertNomination(_ context.Context, nom domain.FighterNomination) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nom.ID = uuid.NewString()
	nom.CreatedAt = time.Now().UTC()
	m.nominations = append(m.nominations, nom)
	return nom.ID, nil
}

func (m *Memory) InsertSignup(_ context.Context, s domain.EmailSignup) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	m.signups = append(m.signups, s)
	return s.ID, nil
}

func (m *Memory) SignupExists(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.signups {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Lists return copies in reverse insertion order, which is creation-time
// descending because inserts are the only writes.

func (m *Memory) ListApplications(context.Context) ([]domain.FighterApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return reversed(m.applications), nil
}

func (m *Memory) ListNominations(context.Context) ([]domain.FighterNomination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return reversed(m.nominations), nil
}

func (m *Memory) ListSignups(context.Context) ([]domain.EmailSignup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return reversed(m.signups), nil
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
