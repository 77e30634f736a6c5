package game

import (
	"errors"

	"github.com/paradox-sims/montyhall/pkg/utils"
)

// ErrNoQualifyingDoor is returned when a selection step finds no door
// matching its predicate. Given the game's door-state invariants this can
// never happen; seeing it means the board state is corrupted and the whole
// run must abort.
var ErrNoQualifyingDoor = errors.New("no suitable indices available")

// Predicate reports whether a door qualifies for a selection step.
type Predicate func(Door) bool

// ChooseRandomIndex picks uniformly among the door indices satisfying pred.
// Candidates are collected in ascending index order and one is drawn from the
// shared random source.
func ChooseRandomIndex(b Board, pred Predicate, rng *utils.RandSource) (int, error) {
	indices := make([]int, 0, DoorCount)
	for i, d := range b {
		if pred(d) {
			indices = append(indices, i)
		}
	}

	if len(indices) == 0 {
		return 0, ErrNoQualifyingDoor
	}

	return indices[rng.Intn(len(indices))], nil
}
