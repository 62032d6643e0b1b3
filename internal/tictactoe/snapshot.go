package tictactoe

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
)

// Snapshot is a saved unfinished game, enough to resume it later.
type Snapshot struct {
	ID        string       `json:"id"`
	State     State        `json:"state"`
	Level     engine.Level `json:"level"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (that *GameController) Snapshot(id string) Snapshot {
	return Snapshot{
		ID:        id,
		State:     that.State(),
		Level:     that.Level(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (that *GameController) RestoreSnapshot(snapshot Snapshot) error {
	return that.Restore(snapshot.State, snapshot.Level)
}
