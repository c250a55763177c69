package gamemaster

import (
	"context"
	"errors"
	"io"
	"testing"
	"woodland/game"

	"github.com/stretchr/testify/require"
)

type scriptedCommunicator struct {
	actions  []game.Action
	errs     []error
	outcomes []*game.Outcome
	rejected []error
}

func (c *scriptedCommunicator) ReceiveAction() (game.Action, error) {
	if len(c.actions) == 0 {
		return nil, io.EOF
	}
	a, err := c.actions[0], c.errs[0]
	c.actions, c.errs = c.actions[1:], c.errs[1:]
	return a, err
}

func (c *scriptedCommunicator) SendOutcome(out *game.Outcome) error {
	c.outcomes = append(c.outcomes, out)
	return nil
}

func (c *scriptedCommunicator) SendError(_ game.Action, err error) error {
	c.rejected = append(c.rejected, err)
	return nil
}

func script(actions ...game.Action) *scriptedCommunicator {
	return &scriptedCommunicator{actions: actions, errs: make([]error, len(actions))}
}

func TestRunGame(t *testing.T) {
	t.Run("playing a script", func(t *testing.T) {
		s, _ := newSession(t)
		comm := script(
			game.MoveRequest{Faction: game.Eyrie, From: "c2", To: "c1", Warriors: 1, Decree: game.DecreeMove},
			game.MoveRequest{Faction: game.Marquise, From: "c1", To: "c9", Warriors: 1},
			game.AdvanceRequest{},
		)
		comm.actions = append(comm.actions, nil)
		comm.errs = append(comm.errs, errors.New("line 4: decode action: unknown type"))

		err := NewGameMaster(s, comm).RunGame(context.Background())
		require.NoError(t, err)
		require.Len(t, comm.outcomes, 3, "move, advance and the evening resolver")
		require.Len(t, comm.rejected, 2)
		require.ErrorIs(t, comm.rejected[0], game.ErrValidation)
		require.Equal(t, game.Evening, s.State().Turn.Phase)
	})

	t.Run("reporting turmoil and the evening after it", func(t *testing.T) {
		s, _ := newSession(t)
		comm := script(game.TurmoilRequest{})

		require.NoError(t, NewGameMaster(s, comm).RunGame(context.Background()))
		require.Len(t, comm.outcomes, 2)
		require.Equal(t, game.EveningAction, comm.outcomes[1].Action)
		require.Equal(t, 16, s.State().VictoryTrack[game.Eyrie])
	})

	t.Run("stopping at the action limit", func(t *testing.T) {
		s, _ := newSession(t, WithMaxActions(1))
		comm := script(game.PlaceWoodRequest{ClearingID: "c4"}, game.PlaceWoodRequest{ClearingID: "c4"})

		err := NewGameMaster(s, comm).RunGame(context.Background())
		require.ErrorIs(t, err, ErrActionLimit)
		require.Len(t, comm.outcomes, 1)
	})

	t.Run("stopping when a faction wins", func(t *testing.T) {
		rules := game.NewStandardRules(game.WoodlandBoard(), game.NewFixedDice())
		gs := game.BuildScenario(rules.Board, 0)
		gs.VictoryTrack[game.Eyrie] = 29
		s := New(rules, gs)
		comm := script(game.EveningRequest{}, game.PlaceWoodRequest{ClearingID: "c4"})

		require.NoError(t, NewGameMaster(s, comm).RunGame(context.Background()))
		require.Len(t, comm.outcomes, 1)
		require.Len(t, comm.actions, 1, "the remaining action is never read")
	})

	t.Run("honouring cancellation", func(t *testing.T) {
		s, _ := newSession(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewGameMaster(s, script(game.AdvanceRequest{})).RunGame(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
