package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/paradox-sims/montyhall/internal/game"
	"github.com/paradox-sims/montyhall/pkg/logger"
	"github.com/paradox-sims/montyhall/pkg/utils"
)

// ErrInvalidTrialCount is returned when a batch is requested with a
// non-positive number of trials. The batch is rejected before any trial runs.
var ErrInvalidTrialCount = errors.New("trial count must be positive")

// Runner executes batches of trials against one shared random source. The
// source is never reseeded between batches, so every draw across a full run
// is independent.
type Runner struct {
	trial  *game.Trial
	logger *slog.Logger
}

// NewRunner creates a batch runner drawing from rng
func NewRunner(rng *utils.RandSource) *Runner {
	return &Runner{
		trial:  game.NewTrial(rng),
		logger: logger.Default,
	}
}

// SetLogger sets the logger for the runner and its trial executor
func (r *Runner) SetLogger(l *slog.Logger) {
	r.logger = l
	r.trial.SetLogger(l)
}

// RunBatch plays trialCount games under the given strategy and counts the
// wins. A trial error aborts the batch immediately.
func (r *Runner) RunBatch(trialCount int, strategy Strategy) (BatchResult, error) {
	if trialCount <= 0 {
		return BatchResult{}, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, trialCount)
	}

	r.logger.Debug("Batch starting", "strategy", strategy, "simulations", trialCount)

	wins := 0
	for i := 0; i < trialCount; i++ {
		win, err := r.trial.Play(strategy.SwitchDoors())
		if err != nil {
			return BatchResult{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		if win {
			wins++
		}
	}

	result := BatchResult{
		Strategy:    strategy,
		Simulations: trialCount,
		Wins:        wins,
	}

	r.logger.Debug("Batch finished",
		"strategy", strategy,
		"simulations", result.Simulations,
		"wins", result.Wins,
		"win_ratio", result.WinRatio())

	return result, nil
}
