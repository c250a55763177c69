package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBattle(t *testing.T) {
	t.Run("defenseless defender takes an extra hit", func(t *testing.T) {
		r, gs := dominion(t, 3, 0)
		snapshot := gs.Copy()

		res, err := r.Battle(gs, BattleRequest{ClearingID: "c7", Attacker: Marquise, Defender: WoodlandAlliance})
		require.NoError(t, err)
		require.Equal(t, [2]int{3, 0}, res.Dice)
		require.Equal(t, 2, res.AttackerRolledHits, "rolled hits are capped by attacking warriors")
		require.Equal(t, 1, res.AttackerExtraHits)
		require.Equal(t, 3, res.AttackerHits)
		require.Equal(t, 0, res.DefenderHits)
		require.Len(t, res.DefenderTokensRemoved, 1)
		require.Equal(t, Sympathy, res.DefenderTokensRemoved[0].Type)
		require.Empty(t, res.DefenderBuildingsRemoved)
		require.Equal(t, 1, res.VictoryPointsEarned.Attacker)
		require.Equal(t, 12, res.State.VictoryTrack[Marquise])
		require.Equal(t, 1, res.State.Factions.WoodlandAlliance.SympathyOnMap)
		require.Len(t, res.State.Board.Clearings["c7"].Tokens, 1, "the marquise wood should remain")
		require.Equal(t, snapshot, gs)
		requireConservation(t, res.State)
	})

	t.Run("higher die goes to the attacker", func(t *testing.T) {
		r, gs := dominion(t, 1, 2)
		res, err := r.Battle(gs, BattleRequest{ClearingID: "c5", Attacker: Eyrie, Defender: Marquise})
		require.NoError(t, err)
		require.Equal(t, [2]int{1, 2}, res.Dice)
		require.Equal(t, 2, res.AttackerHits)
		require.Equal(t, 1, res.DefenderHits)
		require.Equal(t, 2, res.DefenderWarriorsRemoved)
		require.Equal(t, 1, res.AttackerWarriorsRemoved)

		c5 := res.State.Board.Clearings["c5"]
		require.Equal(t, 2, c5.Warriors[Eyrie])
		_, ok := c5.Warriors[Marquise]
		require.False(t, ok)
		require.Len(t, c5.Buildings, 2, "buildings are only hit once warriors are gone")
		require.Equal(t, 16, res.State.Factions.Marquise.WarriorsInSupply)
		requireConservation(t, res.State)
	})

	t.Run("excess hits remove buildings and score", func(t *testing.T) {
		r, gs := dominion(t, 3, 0)
		res, err := r.Battle(gs, BattleRequest{ClearingID: "c5", Attacker: Eyrie, Defender: Marquise})
		require.NoError(t, err)
		require.Equal(t, 3, res.AttackerHits)
		require.Equal(t, 2, res.DefenderWarriorsRemoved)
		require.Len(t, res.DefenderBuildingsRemoved, 1)
		require.Equal(t, Recruiter, res.DefenderBuildingsRemoved[0].Type)
		require.Equal(t, 1, res.VictoryPointsEarned.Attacker)
		require.Equal(t, 15, res.State.VictoryTrack[Eyrie])
		require.Equal(t, 0, res.State.Factions.Marquise.TotalRecruitersOnMap)
	})

	t.Run("reported points are clamped", func(t *testing.T) {
		r, gs := dominion(t, 3, 0)
		gs.VictoryTrack[Marquise] = MaxVictoryPoints
		res, err := r.Battle(gs, BattleRequest{ClearingID: "c7", Attacker: Marquise, Defender: WoodlandAlliance})
		require.NoError(t, err)
		require.Equal(t, 0, res.VictoryPointsEarned.Attacker)
		require.Equal(t, MaxVictoryPoints, res.State.VictoryTrack[Marquise])
	})

	t.Run("rejecting illegal battles", func(t *testing.T) {
		r, gs := dominion(t, 3, 0)
		for name, req := range map[string]BattleRequest{
			"attacker absent":  {ClearingID: "c1", Attacker: WoodlandAlliance, Defender: Marquise},
			"self":             {ClearingID: "c1", Attacker: Marquise, Defender: Marquise},
			"unknown clearing": {ClearingID: "c0", Attacker: Marquise, Defender: Eyrie},
			"unknown faction":  {ClearingID: "c1", Attacker: Marquise, Defender: "vagabond"},
		} {
			_, err := r.Battle(gs, req)
			require.ErrorIs(t, err, ErrValidation, name)
		}
	})

	t.Run("missing clearing is reported first", func(t *testing.T) {
		r, gs := dominion(t, 3, 0)
		_, err := r.Battle(gs, BattleRequest{ClearingID: "c0", Attacker: Marquise, Defender: Marquise})
		require.ErrorContains(t, err, "clearing c0 does not exist")
	})
}

func TestApplyHits(t *testing.T) {
	c := &ClearingState{
		ID:       "c8",
		Warriors: map[Faction]int{Marquise: 1},
		Buildings: []BuildingInstance{
			{ID: "b1", Faction: Marquise, Type: Sawmill},
			{ID: "b2", Faction: WoodlandAlliance, Type: BaseMouse},
			{ID: "b3", Faction: Marquise, Type: Workshop},
		},
		Tokens: []TokenInstance{
			{ID: "t1", Faction: Marquise, Type: Wood},
		},
	}

	lost := applyHits(c, Marquise, 3)
	require.Equal(t, 1, lost.warriors)
	require.Equal(t, []string{"b1", "b3"}, []string{lost.buildings[0].ID, lost.buildings[1].ID})
	require.Empty(t, lost.tokens)
	require.Equal(t, 2, lost.scored())
	require.Len(t, c.Buildings, 1)
	require.Len(t, c.Tokens, 1)
}
