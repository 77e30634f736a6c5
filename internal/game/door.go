package game

import (
	"strings"

	"github.com/paradox-sims/montyhall/pkg/utils"
)

// DoorCount is the number of doors on the board. The game is fixed at three
// doors with one revealed door.
const DoorCount = 3

// Door represents one of the three doors in a single trial
type Door struct {
	Selected bool // currently chosen by the player
	HasCar   bool // hides the prize
	Open     bool // revealed as empty by the host
}

// Board is the set of doors for one trial. A fresh zero-valued board is
// created at the start of every trial and discarded at its end; it is never
// shared across trials.
type Board [DoorCount]Door

// PlaceCar hides the car behind a uniformly chosen door and returns its index.
func (b *Board) PlaceCar(rng *utils.RandSource) int {
	i := rng.Intn(DoorCount)
	b[i].HasCar = true
	return i
}

// PickDoor marks a uniformly chosen door as the player's initial pick and
// returns its index. The draw is independent of the car placement and may
// land on the car door.
func (b *Board) PickDoor(rng *utils.RandSource) int {
	i := rng.Intn(DoorCount)
	b[i].Selected = true
	return i
}

// Reveal opens a uniformly chosen door that is neither selected nor hiding
// the car and returns its index. With three doors one or two doors qualify,
// depending on whether the pick landed on the car.
func (b *Board) Reveal(rng *utils.RandSource) (int, error) {
	i, err := ChooseRandomIndex(*b, func(d Door) bool {
		return !d.Selected && !d.HasCar
	}, rng)
	if err != nil {
		return 0, err
	}
	b[i].Open = true
	return i, nil
}

// SwitchSelection moves the player's pick to a uniformly chosen door that is
// neither selected nor open and returns the new index. After a reveal exactly
// one door qualifies; it is still drawn through the uniform selection for
// symmetry with the reveal step.
func (b *Board) SwitchSelection(rng *utils.RandSource) (int, error) {
	i, err := ChooseRandomIndex(*b, func(d Door) bool {
		return !d.Selected && !d.Open
	}, rng)
	if err != nil {
		return 0, err
	}
	if old := b.SelectedIndex(); old >= 0 {
		b[old].Selected = false
	}
	b[i].Selected = true
	return i, nil
}

// SelectedIndex returns the index of the selected door, or -1 if none is.
func (b Board) SelectedIndex() int {
	for i, d := range b {
		if d.Selected {
			return i
		}
	}
	return -1
}

// CarIndex returns the index of the door hiding the car, or -1 if none does.
func (b Board) CarIndex() int {
	for i, d := range b {
		if d.HasCar {
			return i
		}
	}
	return -1
}

// Win reports whether the selected door hides the car.
func (b Board) Win() bool {
	i := b.SelectedIndex()
	return i >= 0 && b[i].HasCar
}

// String renders the board for trace output. The car door always shows C, an
// open door shows a blank, any other closed door shows X; the selected door
// is wrapped in braces, the others in brackets.
func (b Board) String() string {
	tokens := make([]string, len(b))
	for i, d := range b {
		symbol := "X"
		if d.HasCar {
			symbol = "C"
		} else if d.Open {
			symbol = " "
		}
		if d.Selected {
			tokens[i] = "{" + symbol + "}"
		} else {
			tokens[i] = "[" + symbol + "]"
		}
	}
	return strings.Join(tokens, " ")
}
