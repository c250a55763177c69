package gamemaster

import (
	"context"
	"errors"
	"io"
	"woodland/communication"
)

// GameMaster feeds actions from a Communicator into a Session and reports
// each outcome back.
type GameMaster struct {
	Session      *Session
	Communicator communication.Communicator
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(session *Session, comm communication.Communicator) *GameMaster {
	return &GameMaster{
		Session:      session,
		Communicator: comm,
	}
}

// RunGame is the game loop. It stops when the communicator runs out of
// actions, a faction wins, the action limit is hit or ctx is cancelled.
// Rejected actions are reported to the communicator and play continues.
func (gm *GameMaster) RunGame(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, over := gm.Session.Winner(); over {
			return nil
		}

		action, err := gm.Communicator.ReceiveAction()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			gm.Session.logger.Warn().Err(err).Msg("unreadable action")
			if sendErr := gm.Communicator.SendError(nil, err); sendErr != nil {
				return sendErr
			}
			continue
		}

		outcomes, err := gm.Session.Play(action)
		for _, out := range outcomes {
			if sendErr := gm.Communicator.SendOutcome(out); sendErr != nil {
				return sendErr
			}
		}
		if errors.Is(err, ErrActionLimit) {
			return err
		}
		if err != nil {
			if sendErr := gm.Communicator.SendError(action, err); sendErr != nil {
				return sendErr
			}
		}
	}
}
