package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEyrieBirdsong(t *testing.T) {
	t.Run("emergency orders with an empty hand", func(t *testing.T) {
		r, gs := dominion(t)
		res := r.EyrieBirdsong(gs)

		e := res.State.Factions.Eyrie
		require.Equal(t, "Emergency Orders: drew 1 card.", res.Log[0])
		require.Len(t, res.Log, 2)
		require.Equal(t, 0, e.HandSize)
		require.Equal(t, 5, e.Decree.CardCount())
		recruit := e.Decree.Columns[DecreeRecruit]
		require.Len(t, recruit, 2, "ties go to the recruit column")
		require.Equal(t, Bird, recruit[1].Suit)
		require.Equal(t, 0, gs.Factions.Eyrie.HandSize, "input should not change")
	})

	t.Run("at most two cards are added", func(t *testing.T) {
		r, gs := dominion(t)
		gs.Factions.Eyrie.HandSize = 3
		res := r.EyrieBirdsong(gs)

		e := res.State.Factions.Eyrie
		require.Equal(t, 1, e.HandSize)
		require.Len(t, e.Decree.Columns[DecreeRecruit], 2)
		require.Len(t, e.Decree.Columns[DecreeMove], 2)
		require.Equal(t, Fox, e.Decree.Columns[DecreeMove][1].Suit)
	})

	t.Run("birdsong clears resolved cards", func(t *testing.T) {
		r, gs := dominion(t)
		moved, err := r.Move(gs, MoveRequest{Faction: Eyrie, From: "c2", To: "c1", Warriors: 1, Decree: DecreeMove})
		require.NoError(t, err)
		require.Len(t, moved.State.Factions.Eyrie.Decree.Resolved, 1)

		res := r.EyrieBirdsong(moved.State)
		require.Empty(t, res.State.Factions.Eyrie.Decree.Resolved)
	})

	t.Run("a new roost when none are on the map", func(t *testing.T) {
		r := newTestRules()
		gs := NewGameState(r.Board)
		gs.Board.Clearings["c1"].Warriors[Marquise] = 2
		gs.Factions.Eyrie.HandSize = 2
		gs.Recompute()

		res := r.EyrieBirdsong(gs)
		c2 := res.State.Board.Clearings["c2"]
		require.Len(t, c2.Buildings, 1)
		require.Equal(t, Roost, c2.Buildings[0].Type)
		require.Equal(t, NewRoostWarriors, c2.Warriors[Eyrie])
		require.Equal(t, 1, res.State.Factions.Eyrie.RoostsOnMap)
		require.Contains(t, res.Log, "A New Roost: placed a roost with 3 warriors in C2.")
		requireConservation(t, res.State)
	})
}

func TestEyrieEvening(t *testing.T) {
	r, gs := dominion(t)
	res := r.EyrieEvening(gs)

	require.Equal(t, 17, res.State.VictoryTrack[Eyrie], "three roosts score 3")
	require.Equal(t, 1, res.State.Factions.Eyrie.HandSize)
	require.Equal(t, []string{
		"Scored 3 VP from roost track (total 17).",
		"Drew 1 card in Evening (hand size 1).",
	}, res.Log)

	empty := r.EyrieEvening(NewGameState(r.Board))
	require.Equal(t, 0, empty.State.VictoryTrack[Eyrie])
	require.Equal(t, "Scored 0 VP from roost track.", empty.Log[0])
}

func TestEyrieTurmoil(t *testing.T) {
	t.Run("losing points and cards", func(t *testing.T) {
		r, gs := dominion(t)
		res, err := r.EyrieTurmoil(gs)
		require.NoError(t, err)

		e := res.State.Factions.Eyrie
		require.Equal(t, 1, res.LostPoints)
		require.Equal(t, 13, res.State.VictoryTrack[Eyrie])
		require.Equal(t, []DecreeCard{{Suit: Rabbit, Source: Vizier, ID: "vizier_recruit"}}, e.Decree.Columns[DecreeRecruit])
		require.Equal(t, []DecreeCard{{Suit: Bird, Source: Vizier, ID: "vizier_move"}}, e.Decree.Columns[DecreeMove])
		require.Empty(t, e.Decree.Columns[DecreeBattle])
		require.Empty(t, e.Decree.Columns[DecreeBuild])
		require.Equal(t, Evening, res.State.Turn.Phase)
		require.Len(t, res.Log, 3)
	})

	t.Run("points do not go below zero", func(t *testing.T) {
		r, gs := dominion(t)
		gs.VictoryTrack[Eyrie] = 0
		res, err := r.EyrieTurmoil(gs)
		require.NoError(t, err)
		require.Equal(t, 0, res.State.VictoryTrack[Eyrie])
	})

	t.Run("only on the eyrie daylight", func(t *testing.T) {
		r := newTestRules()
		_, err := r.EyrieTurmoil(BuildScenario(r.Board, 1))
		require.ErrorIs(t, err, ErrValidation)

		_, gs := dominion(t)
		gs.Turn.Phase = Birdsong
		_, err = r.EyrieTurmoil(gs)
		require.ErrorIs(t, err, ErrValidation)
	})
}
