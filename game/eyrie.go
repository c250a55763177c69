package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PhaseResponse is returned by the Birdsong and Evening resolvers.
type PhaseResponse struct {
	State *GameState `json:"state"`
	Log   []string   `json:"log"`
}

type TurmoilResponse struct {
	State      *GameState `json:"state"`
	LostPoints int        `json:"lostPoints"`
	Log        []string   `json:"log"`
}

// MaxDecreeCardsPerBirdsong caps the cards added to the Decree each Birdsong.
const MaxDecreeCardsPerBirdsong = 2

// NewRoostWarriors is the warrior count placed with an emergency roost.
const NewRoostWarriors = 3

var nonBirdSuits = []Suit{Fox, Rabbit, Mouse}

// EyrieBirdsong runs the Eyrie Birdsong: Emergency Orders when the hand is
// empty, up to two cards added to the shortest Decree columns, and A New
// Roost when no roost is on the map.
func (r *Rules) EyrieBirdsong(gs *GameState) *PhaseResponse {
	next := gs.Copy()
	next.Recompute()
	e := &next.Factions.Eyrie
	var log []string

	e.Decree.Resolved = nil

	if e.HandSize <= 0 {
		e.HandSize = 1
		log = append(log, "Emergency Orders: drew 1 card.")
	}

	toAdd := min(MaxDecreeCardsPerBirdsong, e.HandSize)
	for i := 0; i < toAdd; i++ {
		col := shortestDecreeColumn(e.Decree)
		suit := Bird
		if i > 0 {
			suit = nonBirdSuits[(i-1)%len(nonBirdSuits)]
		}
		e.Decree.Columns[col] = append(e.Decree.Columns[col], DecreeCard{
			ID:     fmt.Sprintf("decree_%s_%s", col, uuid.NewString()),
			Suit:   suit,
			Source: Normal,
		})
		e.HandSize--
		log = append(log, fmt.Sprintf("Added a %s card to the %s column of the Decree.", suit, col))
	}

	if e.RoostsOnMap == 0 {
		if target := r.newRoostClearing(next); target != nil {
			n := min(NewRoostWarriors, e.WarriorsInSupply)
			target.Buildings = append(target.Buildings, BuildingInstance{
				ID:        newPieceID(Eyrie, string(Roost), target.ID),
				Faction:   Eyrie,
				Type:      Roost,
				SlotIndex: len(target.Buildings),
			})
			target.addWarriors(Eyrie, n)
			log = append(log, fmt.Sprintf("A New Roost: placed a roost with %d warriors in %s.", n, strings.ToUpper(target.ID)))
		} else {
			log = append(log, "A New Roost: no clearing has a free building slot.")
		}
	}

	next.Recompute()
	return &PhaseResponse{State: next, Log: log}
}

// shortestDecreeColumn picks the column with the fewest cards; ties go to
// the earlier column in DecreeColumns.
func shortestDecreeColumn(d DecreeState) DecreeColumn {
	best := DecreeColumns[0]
	for _, col := range DecreeColumns[1:] {
		if len(d.Columns[col]) < len(d.Columns[best]) {
			best = col
		}
	}
	return best
}

// newRoostClearing finds the clearing with a free slot holding the fewest
// warriors of any faction, first in board order on ties.
func (r *Rules) newRoostClearing(gs *GameState) *ClearingState {
	var best *ClearingState
	for _, c := range gs.orderedClearings(r.Board) {
		def, _ := r.Board.Clearing(c.ID)
		if len(c.Buildings) >= def.BuildingSlots {
			continue
		}
		if best == nil || c.TotalWarriors() < best.TotalWarriors() {
			best = c
		}
	}
	return best
}

// EyrieEvening scores the roost track and draws a card.
func (r *Rules) EyrieEvening(gs *GameState) *PhaseResponse {
	next := gs.Copy()
	next.Recompute()
	e := &next.Factions.Eyrie
	var log []string

	vp := tableAt(RoostTrackVictoryPoints, e.RoostTrack.RoostsPlaced)
	if vp > 0 {
		next.addVictoryPoints(Eyrie, vp)
		log = append(log, fmt.Sprintf("Scored %d VP from roost track (total %d).", vp, next.VictoryTrack[Eyrie]))
	} else {
		log = append(log, "Scored 0 VP from roost track.")
	}

	e.HandSize++
	log = append(log, fmt.Sprintf("Drew 1 card in Evening (hand size %d).", e.HandSize))

	next.Recompute()
	return &PhaseResponse{State: next, Log: log}
}

// EyrieTurmoil is triggered when a decree card cannot be carried out. The
// Eyrie lose one VP per bird card in the Decree, discard every card except
// the viziers and skip straight to Evening.
func (r *Rules) EyrieTurmoil(gs *GameState) (*TurmoilResponse, error) {
	if gs.Turn.CurrentFaction != Eyrie {
		return nil, invalid(TurmoilAction, "turmoil can only occur on the eyrie turn, not %s", gs.Turn.CurrentFaction)
	}
	if gs.Turn.Phase != Daylight {
		return nil, invalid(TurmoilAction, "turmoil can only occur during daylight, not %s", gs.Turn.Phase)
	}
	next := gs.Copy()
	next.Recompute()
	e := &next.Factions.Eyrie

	birds := 0
	discarded := 0
	for _, col := range DecreeColumns {
		kept := []DecreeCard{}
		for _, card := range e.Decree.Columns[col] {
			if card.Suit == Bird {
				birds++
			}
			if card.Source == Vizier {
				kept = append(kept, card)
			} else {
				discarded++
			}
		}
		e.Decree.Columns[col] = kept
	}
	e.Decree.Resolved = nil
	next.addVictoryPoints(Eyrie, -birds)
	next.Turn.Phase = Evening
	next.Turn.ActionSubstep = ""

	next.Recompute()
	return &TurmoilResponse{
		State:      next,
		LostPoints: birds,
		Log: []string{
			fmt.Sprintf("Turmoil: lost %d VP for bird cards in the Decree (total %d).", birds, next.VictoryTrack[Eyrie]),
			fmt.Sprintf("Discarded %d decree cards; viziers remain.", discarded),
			"The Eyrie skip the rest of Daylight and move to Evening.",
		},
	}, nil
}
