package communication

import (
	"testing"
	"woodland/game"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  game.Action
	}{
		{
			name:  "move",
			input: `{"type":"move","faction":"marquise","from":"c1","to":"c2","warriors":2}`,
			want:  game.MoveRequest{Faction: game.Marquise, From: "c1", To: "c2", Warriors: 2},
		},
		{
			name:  "battle with decree",
			input: `{"type":"battle","clearingId":"c5","attacker":"eyrie","defender":"marquise","decree":"battle"}`,
			want:  game.BattleRequest{ClearingID: "c5", Attacker: game.Eyrie, Defender: game.Marquise, Decree: game.DecreeBattle},
		},
		{
			name:  "build",
			input: `{"type":"build","faction":"marquise","clearingId":"c7","buildingType":"sawmill"}`,
			want:  game.BuildRequest{Faction: game.Marquise, ClearingID: "c7", BuildingType: game.Sawmill},
		},
		{
			name:  "recruit",
			input: `{"type":"recruit","faction":"eyrie","warriors":2}`,
			want:  game.RecruitRequest{Faction: game.Eyrie, Warriors: 2},
		},
		{
			name:  "token",
			input: `{"type":"token","faction":"woodland_alliance","clearingId":"c4","tokenType":"sympathy"}`,
			want:  game.TokenRequest{Faction: game.WoodlandAlliance, ClearingID: "c4", TokenType: game.Sympathy},
		},
		{
			name:  "place wood",
			input: `{"type":"place_wood","clearingId":"c4"}`,
			want:  game.PlaceWoodRequest{ClearingID: "c4"},
		},
		{name: "birdsong", input: `{"type":"birdsong"}`, want: game.BirdsongRequest{}},
		{name: "evening", input: `{"type":"evening"}`, want: game.EveningRequest{}},
		{name: "turmoil", input: `{"type":"turmoil"}`, want: game.TurmoilRequest{}},
		{name: "advance", input: `{"type":"advance"}`, want: game.AdvanceRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			encoded, err := EncodeAction(got)
			require.NoError(t, err)
			again, err := DecodeAction(encoded)
			require.NoError(t, err)
			require.Equal(t, tt.want, again)
		})
	}
}

func TestDecodeActionErrors(t *testing.T) {
	for name, input := range map[string]string{
		"malformed":    `{"type":`,
		"missing type": `{"faction":"marquise"}`,
		"unknown type": `{"type":"craft"}`,
		"wrong field":  `{"type":"move","warriors":"two"}`,
	} {
		_, err := DecodeAction([]byte(input))
		require.Error(t, err, name)
	}
}

func TestEncodeOutcome(t *testing.T) {
	rules := game.NewStandardRules(game.WoodlandBoard(), game.NewFixedDice(3, 0))
	gs := game.BuildScenario(rules.Board, 0)

	t.Run("executor response", func(t *testing.T) {
		out, err := rules.Apply(gs, game.BattleRequest{ClearingID: "c7", Attacker: game.Marquise, Defender: game.WoodlandAlliance})
		require.NoError(t, err)

		data, err := EncodeOutcome(out)
		require.NoError(t, err)
		require.Equal(t, "battle", gjson.GetBytes(data, "action").String())
		require.EqualValues(t, 3, gjson.GetBytes(data, "attackerHits").Int())
		require.EqualValues(t, 1, gjson.GetBytes(data, "victoryPointsEarned.attacker").Int())
		require.EqualValues(t, 12, gjson.GetBytes(data, "state.victoryTrack.marquise").Int())
		require.Len(t, gjson.GetBytes(data, "log").Array(), 4)
	})

	t.Run("turn response gets the state", func(t *testing.T) {
		out, err := rules.Apply(gs, game.AdvanceRequest{})
		require.NoError(t, err)

		data, err := EncodeOutcome(out)
		require.NoError(t, err)
		require.Equal(t, "evening", gjson.GetBytes(data, "phase").String())
		require.Equal(t, "evening", gjson.GetBytes(data, "state.turn.phase").String())
	})
}

func TestEncodeError(t *testing.T) {
	rules := game.NewStandardRules(game.WoodlandBoard(), game.NewFixedDice())
	gs := game.BuildScenario(rules.Board, 0)
	move := game.MoveRequest{Faction: game.Marquise, From: "c1", To: "c9", Warriors: 1}
	_, cause := rules.Apply(gs, move)
	require.Error(t, cause)

	data, err := EncodeError(move, cause)
	require.NoError(t, err)
	require.Equal(t, "move", gjson.GetBytes(data, "action").String())
	require.True(t, gjson.GetBytes(data, "validation").Bool())
	require.Contains(t, gjson.GetBytes(data, "error").String(), "not adjacent")
}
