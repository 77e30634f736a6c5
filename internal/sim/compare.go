package sim

// ComparisonResult holds the stay and switch batch results of a full run
// side by side.
type ComparisonResult struct {
	Stay   BatchResult
	Switch BatchResult

	// RatioDelta is the switch win ratio minus the stay win ratio.
	RatioDelta float64

	// Advantage names the strategy with the higher win ratio, or is empty
	// when the ratios are equal.
	Advantage Strategy
}

// Compare sets two batch results side by side and names the strategy with
// the higher win ratio.
func Compare(stay, switched BatchResult) ComparisonResult {
	comparison := ComparisonResult{
		Stay:       stay,
		Switch:     switched,
		RatioDelta: switched.WinRatio() - stay.WinRatio(),
	}

	switch {
	case comparison.RatioDelta > 0:
		comparison.Advantage = StrategySwitch
	case comparison.RatioDelta < 0:
		comparison.Advantage = StrategyStay
	}

	return comparison
}
