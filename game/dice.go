package game

import "golang.org/x/exp/rand"

// BattleDieSides is the number of faces on a battle die (values 0-3).
const BattleDieSides = 4

// Dice rolls a die with faces 0..sides-1.
type Dice interface {
	Roll(sides int) int
}

// RandomDice is a seeded pseudo-random roller.
type RandomDice struct {
	src *rand.Rand
}

func NewRandomDice(seed uint64) *RandomDice {
	return &RandomDice{src: rand.New(rand.NewSource(seed))}
}

func (d *RandomDice) Roll(sides int) int {
	return d.src.Intn(sides)
}

// FixedDice replays the given faces in order, wrapping around. Faces are
// clamped into range.
type FixedDice struct {
	faces []int
	pos   int
}

func NewFixedDice(faces ...int) *FixedDice {
	if len(faces) == 0 {
		faces = []int{0}
	}
	return &FixedDice{faces: faces}
}

func (d *FixedDice) Roll(sides int) int {
	face := d.faces[d.pos%len(d.faces)]
	d.pos++
	if face < 0 {
		return 0
	}
	if face >= sides {
		return sides - 1
	}
	return face
}
