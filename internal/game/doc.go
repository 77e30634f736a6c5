// Package game implements a single play of the three-door Monty Hall game.
//
// A trial places the prize behind one of three doors, lets the player pick a
// door independently, has the host reveal a non-selected non-prize door, and
// optionally switches the player's pick before checking for a win. All random
// choices draw from one injected random source so a whole run shares a single
// stream of randomness.
//
// Main Types:
//   - Door: one door's state (selected, hiding the car, opened)
//   - Board: the fixed array of three doors for one trial
//   - Trial: plays complete games against a random source
//   - Predicate: qualifies doors for a uniform random selection
//
// Usage:
//
//	rng := utils.NewRandSource(0)
//	trial := game.NewTrial(rng)
//
//	// Play one game where the player switches after the reveal
//	win, err := trial.Play(true)
//	if err != nil {
//	    log.Fatal(err)
//	}
package game
