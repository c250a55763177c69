package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"woodland/game"
	"woodland/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrGameOver is returned once a faction has reached the end of the victory
// track.
var ErrGameOver = errors.New("game is over - no actions allowed")

// ErrActionLimit is returned once a session has applied its maximum number
// of actions.
var ErrActionLimit = errors.New("action limit reached")

// Update records one applied action.
type Update struct {
	Step    int           `json:"step"`
	Action  game.Action   `json:"-"`
	Outcome *game.Outcome `json:"outcome"`
}

// Session owns the current state of one game. It is the single writer for
// that state: actions are applied one at a time and a new state is only
// committed when the executor succeeds.
type Session struct {
	mu         sync.Mutex
	rules      *game.Rules
	state      *game.GameState
	history    []Update
	logger     zerolog.Logger
	maxActions int
}

type Option func(*Session)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithMaxActions(n int) Option {
	return func(s *Session) { s.maxActions = n }
}

func New(rules *game.Rules, state *game.GameState, opts ...Option) *Session {
	s := &Session{
		rules:      rules,
		state:      state.Copy(),
		history:    make([]Update, 0, meta.HISTORY_CAPACITY),
		logger:     log.Logger,
		maxActions: meta.MAX_ACTIONS,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play applies an action to the current state. When the action hands the
// Eyrie a phase with a resolver (Birdsong or Evening after an advance,
// Evening after Turmoil), the resolver runs straight after. Every applied
// outcome is returned in order.
func (s *Session) Play(a game.Action) ([]*game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.play(a)
	if err != nil {
		return nil, err
	}
	outcomes := []*game.Outcome{out}
	turn := s.state.Turn
	if a.Type() == game.AdvanceAction {
		s.logger.Info().Msgf("round %d: %s %s", turn.RoundNumber, turn.CurrentFaction, turn.Phase)
	}

	resolver := followUp(a, turn)
	if resolver == nil {
		return outcomes, nil
	}
	out, err = s.play(resolver)
	if err != nil {
		return outcomes, err
	}
	return append(outcomes, out), nil
}

// Advance moves the turn forward one phase.
func (s *Session) Advance() ([]*game.Outcome, error) {
	return s.Play(game.AdvanceRequest{})
}

// followUp returns the Eyrie resolver owed after a, if any.
func followUp(a game.Action, turn game.TurnState) game.Action {
	if turn.CurrentFaction != game.Eyrie {
		return nil
	}
	switch a.Type() {
	case game.AdvanceAction:
		switch turn.Phase {
		case game.Birdsong:
			return game.BirdsongRequest{}
		case game.Evening:
			return game.EveningRequest{}
		}
	case game.TurmoilAction:
		if turn.Phase == game.Evening {
			return game.EveningRequest{}
		}
	}
	return nil
}

func (s *Session) play(a game.Action) (*game.Outcome, error) {
	if _, over := winner(s.state); over {
		return nil, ErrGameOver
	}
	if len(s.history) >= s.maxActions {
		return nil, fmt.Errorf("%w (%d)", ErrActionLimit, s.maxActions)
	}

	out, err := s.rules.Apply(s.state, a)
	if err != nil {
		s.logger.Warn().Err(err).Str("action", string(a.Type())).Msg("action rejected")
		return nil, err
	}
	s.state = out.State
	s.history = append(s.history, Update{Step: len(s.history) + 1, Action: a, Outcome: out})

	for _, line := range out.Log {
		s.logger.Debug().Str("action", string(a.Type())).Msg(line)
	}
	if f, over := winner(s.state); over {
		s.logger.Info().Msgf("%s reached %d victory points", f, game.MaxVictoryPoints)
	}
	return out, nil
}

// State returns a copy of the current state.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

// Updates returns the applied actions in order.
func (s *Session) Updates() []Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Update, len(s.history))
	copy(out, s.history)
	return out
}

// Winner reports the faction that reached the end of the victory track.
func (s *Session) Winner() (game.Faction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return winner(s.state)
}

func winner(gs *game.GameState) (game.Faction, bool) {
	for _, f := range game.Factions {
		if gs.VictoryTrack[f] >= game.MaxVictoryPoints {
			return f, true
		}
	}
	return "", false
}
