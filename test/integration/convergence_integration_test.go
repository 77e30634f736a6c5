//go:build integration
// +build integration

package integration_test

import (
	"math"
	"testing"

	"github.com/paradox-sims/montyhall/internal/sim"
	"github.com/paradox-sims/montyhall/pkg/utils"
)

// TestIntegration_ConvergenceAtScale plays 100k trials per strategy and
// checks the estimates against the analytic probabilities. At this size the
// standard error is about 0.0015, so a 0.01 tolerance is comfortable.
func TestIntegration_ConvergenceAtScale(t *testing.T) {
	const trials = 100000

	runner := sim.NewRunner(utils.NewRandSource(12345))

	stay, err := runner.RunBatch(trials, sim.StrategyStay)
	if err != nil {
		t.Fatalf("stay batch failed: %v", err)
	}
	switched, err := runner.RunBatch(trials, sim.StrategySwitch)
	if err != nil {
		t.Fatalf("switch batch failed: %v", err)
	}

	if got := stay.WinRatio(); math.Abs(got-1.0/3.0) > 0.01 {
		t.Errorf("stay win ratio = %f, expected within 0.01 of %f", got, 1.0/3.0)
	}
	if got := switched.WinRatio(); math.Abs(got-2.0/3.0) > 0.01 {
		t.Errorf("switch win ratio = %f, expected within 0.01 of %f", got, 2.0/3.0)
	}

	if sum := stay.WinRatio() + switched.WinRatio(); math.Abs(sum-1.0) > 0.02 {
		t.Errorf("stay + switch ratios = %f, expected about 1.0", sum)
	}

	comparison := sim.Compare(stay, switched)
	if comparison.Advantage != sim.StrategySwitch {
		t.Errorf("Advantage = %q, expected %q at this scale", comparison.Advantage, sim.StrategySwitch)
	}
	if comparison.RatioDelta < 0.3 {
		t.Errorf("RatioDelta = %f, expected about 1/3", comparison.RatioDelta)
	}
}
