package sim

// Strategy is the player's policy once the host has revealed a door.
type Strategy string

const (
	// StrategyStay keeps the initial pick.
	StrategyStay Strategy = "stay"
	// StrategySwitch abandons the initial pick for the remaining closed door.
	StrategySwitch Strategy = "switch"
)

// Strategies returns the batches of one full run in execution order. The
// stay batch always runs first.
func Strategies() []Strategy {
	return []Strategy{StrategyStay, StrategySwitch}
}

// SwitchDoors reports whether the player changes doors under s.
func (s Strategy) SwitchDoors() bool {
	return s == StrategySwitch
}
