package communication

import (
	"encoding/json"
	"fmt"
	"io"
	"woodland/game"
)

// SaveState writes a game state as indented JSON.
func SaveState(w io.Writer, gs *game.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gs); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadState reads a game state written by SaveState or by another
// collaborator. Missing maps and slices are filled in; derived counters are
// kept exactly as stored. Executors re-derive them on their working copy, so
// stale counters never reach a rules decision.
func LoadState(r io.Reader) (*game.GameState, error) {
	var gs game.GameState
	if err := json.NewDecoder(r).Decode(&gs); err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	gs.Normalize()
	return &gs, nil
}
