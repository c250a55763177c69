package communication

import "woodland/game"

// Communicator is an interface that abstracts the communication mechanism
// between a game master and the collaborator driving it.
type Communicator interface {
	// ReceiveAction returns the next requested action, or io.EOF when the
	// collaborator has nothing more to send.
	ReceiveAction() (game.Action, error)
	SendOutcome(out *game.Outcome) error
	SendError(action game.Action, err error) error
}
