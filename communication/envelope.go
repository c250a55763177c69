package communication

import (
	"encoding/json"
	"fmt"
	"woodland/game"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Actions travel as flat JSON objects whose "type" field names the action,
// e.g. {"type":"move","faction":"marquise","from":"c1","to":"c2","warriors":2}.

var decoders = map[game.ActionType]func([]byte) (game.Action, error){
	game.MoveAction:      decodeAs[game.MoveRequest],
	game.BattleAction:    decodeAs[game.BattleRequest],
	game.BuildAction:     decodeAs[game.BuildRequest],
	game.RecruitAction:   decodeAs[game.RecruitRequest],
	game.TokenAction:     decodeAs[game.TokenRequest],
	game.PlaceWoodAction: decodeAs[game.PlaceWoodRequest],
	game.BirdsongAction:  decodeAs[game.BirdsongRequest],
	game.EveningAction:   decodeAs[game.EveningRequest],
	game.TurmoilAction:   decodeAs[game.TurmoilRequest],
	game.AdvanceAction:   decodeAs[game.AdvanceRequest],
}

func decodeAs[T game.Action](data []byte) (game.Action, error) {
	var req T
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeAction parses an action envelope.
func DecodeAction(data []byte) (game.Action, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode action: malformed json")
	}
	kind := gjson.GetBytes(data, "type")
	if !kind.Exists() {
		return nil, fmt.Errorf("decode action: missing type")
	}
	decode, ok := decoders[game.ActionType(kind.String())]
	if !ok {
		return nil, fmt.Errorf("decode action: unknown type %q", kind.String())
	}
	a, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s action: %w", kind.String(), err)
	}
	return a, nil
}

// EncodeAction writes an action as an envelope DecodeAction accepts.
func EncodeAction(a game.Action) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode %s action: %w", a.Type(), err)
	}
	return sjson.SetBytes(data, "type", string(a.Type()))
}

// EncodeOutcome flattens an outcome into one JSON object: the executor's
// response fields plus "action", "log" and "state".
func EncodeOutcome(out *game.Outcome) ([]byte, error) {
	data, err := json.Marshal(out.Response)
	if err != nil {
		return nil, fmt.Errorf("encode %s outcome: %w", out.Action, err)
	}
	if !gjson.ParseBytes(data).IsObject() {
		data, err = sjson.SetRawBytes([]byte(`{}`), "response", data)
		if err != nil {
			return nil, err
		}
	}
	if !gjson.GetBytes(data, "state").Exists() {
		state, err := json.Marshal(out.State)
		if err != nil {
			return nil, fmt.Errorf("encode %s outcome: %w", out.Action, err)
		}
		if data, err = sjson.SetRawBytes(data, "state", state); err != nil {
			return nil, err
		}
	}
	log := out.Log
	if log == nil {
		log = []string{}
	}
	if data, err = sjson.SetBytes(data, "log", log); err != nil {
		return nil, err
	}
	return sjson.SetBytes(data, "action", string(out.Action))
}

// EncodeError reports a rejected action.
func EncodeError(a game.Action, cause error) ([]byte, error) {
	data := []byte(`{}`)
	var err error
	if a != nil {
		if data, err = sjson.SetBytes(data, "action", string(a.Type())); err != nil {
			return nil, err
		}
	}
	if data, err = sjson.SetBytes(data, "error", cause.Error()); err != nil {
		return nil, err
	}
	return sjson.SetBytes(data, "validation", game.IsValidation(cause))
}
