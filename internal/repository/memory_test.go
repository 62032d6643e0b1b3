package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save and GetByID", func(t *testing.T) {
		// Given: an empty in-memory repository
		sessionRepo := NewMemorySessionRepository()
		snapshot := newSnapshot(t, "abc")

		// When: a snapshot is saved
		require.NoError(t, sessionRepo.Save(ctx, snapshot))

		// Then: it can be read back
		retrieved, err := sessionRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assertSameSnapshot(t, snapshot, retrieved)
	})

	t.Run("Saved snapshot is a copy", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()
		snapshot := newSnapshot(t, "abc")
		require.NoError(t, sessionRepo.Save(ctx, snapshot))

		// When: the caller keeps playing on its own copy
		require.NoError(t, snapshot.State.Board.Mark(2, 2, snapshot.State.CurrentPlayer))

		// Then: the stored board is unchanged
		retrieved, err := sessionRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 2, retrieved.State.Board.Filled())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()

		_, err := sessionRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()
		require.NoError(t, sessionRepo.Save(ctx, newSnapshot(t, "abc")))

		require.NoError(t, sessionRepo.DeleteByID(ctx, "abc"))

		_, err := sessionRepo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		require.ErrorIs(t, sessionRepo.DeleteByID(ctx, "abc"), apperror.ErrSessionNotFound)
	})
}
