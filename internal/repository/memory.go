package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

// memorySession keeps snapshots for the lifetime of the process. It is used
// when redis is disabled.
type memorySession struct {
	mu        sync.RWMutex
	snapshots map[string]tictactoe.Snapshot
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		snapshots: make(map[string]tictactoe.Snapshot),
	}
}

func (that *memorySession) Save(_ context.Context, snapshot tictactoe.Snapshot) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.snapshots[snapshot.ID] = snapshot

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (tictactoe.Snapshot, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	snapshot, ok := that.snapshots[id]
	if !ok {
		return tictactoe.Snapshot{}, apperror.ErrSessionNotFound
	}

	return snapshot, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.snapshots[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.snapshots, id)

	return nil
}
