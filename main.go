package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"
	"woodland/communication"
	"woodland/game"
	"woodland/gamemaster"
	"woodland/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reads action envelopes (one JSON object per line) from the file named by
// the first argument, or from stdin, and writes one outcome per line to
// stdout. Configuration comes from WOODLAND_* environment variables.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("woodland stopped")
	}
}

func run(args []string) error {
	cfg, err := meta.Load()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	board, err := loadBoard(cfg.BoardPath)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rules := game.NewStandardRules(board, game.NewRandomDice(seed))

	sc := game.LookupScenario(cfg.Scenario)
	state := game.BuildScenario(board, sc.Index)
	log.Info().Msgf("scenario %q (%s), seed %d", sc.Title, sc.Type, seed)

	var input io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open actions: %w", err)
		}
		defer f.Close()
		input = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := gamemaster.New(rules, state, gamemaster.WithMaxActions(cfg.MaxActions))
	comm := communication.NewStreamCommunicator(input, os.Stdout)
	if err := gamemaster.NewGameMaster(session, comm).RunGame(ctx); err != nil {
		return err
	}

	summary := game.Summarize(board, session.State())
	log.Info().
		Int("actions", len(session.Updates())).
		Interface("victoryTrack", summary.VictoryTrack).
		Msgf("round %d: %s %s", summary.Turn.RoundNumber, summary.Turn.CurrentFaction, summary.Turn.Phase)
	if f, over := session.Winner(); over {
		log.Info().Msgf("%s wins!", f)
	}
	return nil
}

func loadBoard(path string) (*game.Board, error) {
	if path == "" {
		return game.WoodlandBoard(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return game.LoadBoard(data)
}
