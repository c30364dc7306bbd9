package main

import (
	"encoding/json"

	"nightshift-server/internal/domain"
	"nightshift-server/pkg/api"

	"github.com/gdamore/tcell/v2"
)

var controlKeys = map[rune]domain.Control{
	'a': domain.ControlLeftDoor,
	'd': domain.ControlRightDoor,
	'q': domain.ControlLeftLight,
	'e': domain.ControlRightLight,
}

var cameraKeys = map[rune]domain.Location{
	'1': domain.LocationStage,
	'2': domain.LocationDining,
	'3': domain.LocationHallway,
	'4': domain.LocationLeftDoor,
	'5': domain.LocationRightDoor,
}

// keyToCommand переводит клавишу в команду для текущего экрана.
// Недоступные на экране клавиши игнорируются.
func keyToCommand(state string, ev *tcell.EventKey) (api.ClientCommand, bool) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight:
		if state != domain.StateCamera.String() {
			return api.ClientCommand{}, false
		}
		step := 1
		if ev.Key() == tcell.KeyLeft {
			step = -1
		}
		return command(domain.ActionCycleCamera, api.CyclePayload{Step: step}), true

	case tcell.KeyRune:
	default:
		return api.ClientCommand{}, false
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	if r == ' ' {
		switch state {
		case domain.StateMenu.String():
			return command(domain.ActionStartNight, nil), true
		case domain.StatePlaying.String(), domain.StateCamera.String():
			return command(domain.ActionToggle, api.ControlPayload{Control: domain.ControlCamera.String()}), true
		case domain.StateGameOver.String(), domain.StateWin.String():
			return command(domain.ActionMenu, nil), true
		}
		return api.ClientCommand{}, false
	}

	if c, ok := controlKeys[r]; ok && state == domain.StatePlaying.String() {
		return command(domain.ActionToggle, api.ControlPayload{Control: c.String()}), true
	}
	if loc, ok := cameraKeys[r]; ok && state == domain.StateCamera.String() {
		return command(domain.ActionSelectCamera, api.CameraPayload{Location: loc.String()}), true
	}
	return api.ClientCommand{}, false
}

func command(action domain.ActionType, payload any) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		cmd.Payload, _ = json.Marshal(payload)
	}
	return cmd
}
