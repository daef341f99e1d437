package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

func TestMemory_InsertAssignsIDAndTimestamp(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.InsertApplication(ctx, domain.FighterApplication{
		FirstName: "Jordan", LastName: "Reyes", Email: "jordan@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	apps, err := m.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, id, apps[0].ID)
	assert.False(t, apps[0].CreatedAt.IsZero(), "created_at must be stamped server-side")
}

func TestMemory_ListsAreNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.InsertSignup(ctx, domain.EmailSignup{Email: "first@example.com"})
	require.NoError(t, err)
	second, err := m.InsertSignup(ctx, domain.EmailSignup{Email: "second@example.com"})
	require.NoError(t, err)

	list, err := m.ListSignups(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}

func TestMemory_ListIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.InsertNomination(ctx, domain.FighterNomination{
		YourName: "Sam", YourEmail: "sam@example.com",
		NomineeName: "Alex", NomineeEmail: "alex@example.com", Reason: "tough",
	})
	require.NoError(t, err)

	a, err := m.ListNominations(ctx)
	require.NoError(t, err)
	b, err := m.ListNominations(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMemory_SignupExists(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ok, err := m.SignupExists(ctx, "fan@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.InsertSignup(ctx, domain.EmailSignup{Email: "fan@example.com"})
	require.NoError(t, err)

	ok, err = m.SignupExists(ctx, "fan@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_NoUniquenessConstraintOnInsert(t *testing.T) {
	// The store itself admits duplicates; only the pre-insert probe guards
	// uniqueness. This mirrors the production document store.
	m := NewMemory()
	ctx := context.Background()

	_, err := m.InsertSignup(ctx, domain.EmailSignup{Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = m.InsertSignup(ctx, domain.EmailSignup{Email: "dup@example.com"})
	require.NoError(t, err)

	list, err := m.ListSignups(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
