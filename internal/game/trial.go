package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paradox-sims/montyhall/pkg/logger"
	"github.com/paradox-sims/montyhall/pkg/utils"
)

// Trial plays complete single games of the three-door puzzle. One Trial can
// play any number of games; each game gets a fresh board and draws from the
// shared random source.
type Trial struct {
	rng    *utils.RandSource
	logger *slog.Logger
}

// NewTrial creates a trial executor drawing from rng
func NewTrial(rng *utils.RandSource) *Trial {
	return &Trial{
		rng:    rng,
		logger: logger.Default,
	}
}

// SetLogger sets the trial's logger
func (t *Trial) SetLogger(l *slog.Logger) {
	t.logger = l
}

// Play runs one game and reports whether the player's final door hides the
// car. When switchDoors is true the player abandons the initial pick after
// the reveal. An error means a selection step found no qualifying door,
// which breaks the game invariants and must abort the run.
func (t *Trial) Play(switchDoors bool) (bool, error) {
	var board Board

	// Board renders are only built when the debug tier is visible.
	debug := t.logger.Enabled(context.Background(), slog.LevelDebug)

	car := board.PlaceCar(t.rng)
	t.logger.Debug("Car placed", "door", car+1)

	pick := board.PickDoor(t.rng)
	t.logger.Debug("Player picked", "door", pick+1)
	if debug {
		t.logger.Debug("Initial board", "board", board.String())
	}

	opened, err := board.Reveal(t.rng)
	if err != nil {
		return false, fmt.Errorf("reveal step: %w", err)
	}
	t.logger.Debug("Door revealed", "door", opened+1)
	if debug {
		t.logger.Debug("Board after reveal", "board", board.String())
	}

	if switchDoors {
		next, err := board.SwitchSelection(t.rng)
		if err != nil {
			return false, fmt.Errorf("switch step: %w", err)
		}
		t.logger.Debug("Player switched", "door", next+1)
		if debug {
			t.logger.Debug("Board after switch", "board", board.String())
		}
	}

	return board.Win(), nil
}
