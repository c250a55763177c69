package game

import (
	_ "embed"
	"fmt"
	"woodland/utils"

	"gopkg.in/yaml.v3"
)

// Suit of a clearing or a card.
type Suit string

const (
	Fox    Suit = "fox"
	Rabbit Suit = "rabbit"
	Mouse  Suit = "mouse"
	Bird   Suit = "bird"
	NoSuit Suit = "none"
)

func (s Suit) valid() bool {
	switch s {
	case Fox, Rabbit, Mouse, Bird, NoSuit:
		return true
	}
	return false
}

// Clearing is the static definition of a board space.
type Clearing struct {
	ID            string   `yaml:"id" json:"id"`
	Suit          Suit     `yaml:"suit" json:"suit"`
	BuildingSlots int      `yaml:"buildingSlots" json:"buildingSlots"`
	Adjacent      []string `yaml:"adjacent" json:"adjacentClearings"`
}

// Board is the immutable board definition. It is shared between states and
// passed to the executors through Rules.
type Board struct {
	clearings []Clearing
	index     map[string]int
}

//go:embed board.yaml
var woodlandBoardYAML []byte

type boardDocument struct {
	Clearings []Clearing `yaml:"clearings"`
}

// NewBoard validates the clearings and builds a board. Adjacency must be
// symmetric and refer to known clearings.
func NewBoard(clearings []Clearing) (*Board, error) {
	if len(clearings) == 0 {
		return nil, fmt.Errorf("board has no clearings")
	}
	b := &Board{
		clearings: make([]Clearing, len(clearings)),
		index:     make(map[string]int, len(clearings)),
	}
	for i, c := range clearings {
		if c.ID == "" {
			return nil, fmt.Errorf("clearing %d has no id", i)
		}
		if _, dup := b.index[c.ID]; dup {
			return nil, fmt.Errorf("duplicate clearing %s", c.ID)
		}
		if !c.Suit.valid() {
			return nil, fmt.Errorf("clearing %s has unknown suit %q", c.ID, c.Suit)
		}
		if c.BuildingSlots < 0 {
			return nil, fmt.Errorf("clearing %s has negative building slots", c.ID)
		}
		adjacent := make([]string, len(c.Adjacent))
		copy(adjacent, c.Adjacent)
		c.Adjacent = adjacent
		b.clearings[i] = c
		b.index[c.ID] = i
	}
	for _, c := range b.clearings {
		for _, adjID := range c.Adjacent {
			other, ok := b.Clearing(adjID)
			if !ok {
				return nil, fmt.Errorf("clearing %s is adjacent to unknown clearing %s", c.ID, adjID)
			}
			if !contains(other.Adjacent, c.ID) {
				return nil, fmt.Errorf("adjacency %s -> %s is not symmetric", c.ID, adjID)
			}
		}
	}
	return b, nil
}

// LoadBoard parses a YAML board document.
func LoadBoard(data []byte) (*Board, error) {
	var doc boardDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	return NewBoard(doc.Clearings)
}

// WoodlandBoard returns the default 12-clearing board.
func WoodlandBoard() *Board {
	b, err := LoadBoard(woodlandBoardYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded board is invalid: %v", err))
	}
	return b
}

// Clearings returns the clearing definitions in board order.
func (b *Board) Clearings() []Clearing {
	out := make([]Clearing, len(b.clearings))
	copy(out, b.clearings)
	return out
}

// IDs returns the clearing ids in board order.
func (b *Board) IDs() []string {
	ids := make([]string, len(b.clearings))
	for i, c := range b.clearings {
		ids[i] = c.ID
	}
	return ids
}

// Clearing looks up a clearing definition by id.
func (b *Board) Clearing(id string) (Clearing, bool) {
	i, ok := b.index[id]
	if !ok {
		return Clearing{}, false
	}
	return b.clearings[i], true
}

// AreAdjacent checks if two clearings are adjacent on the board.
func (b *Board) AreAdjacent(from, to string) bool {
	c, ok := b.Clearing(from)
	if !ok {
		return false
	}
	return contains(c.Adjacent, to)
}

func contains(slice []string, item string) bool {
	return utils.FindIndex(slice, item) >= 0
}
