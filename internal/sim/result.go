package sim

// BatchResult aggregates the outcome of one batch of trials played under a
// single strategy.
type BatchResult struct {
	Strategy    Strategy
	Simulations int
	Wins        int
}

// WinRatio returns the Monte Carlo estimate of the win probability. A
// zero-value result reports 0 rather than dividing by zero.
func (b BatchResult) WinRatio() float64 {
	if b.Simulations == 0 {
		return 0
	}
	return float64(b.Wins) / float64(b.Simulations)
}
