package main

import (
	"fmt"
	"strings"

	"nightshift-server/internal/domain"
	"nightshift-server/pkg/api"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	styleTitle   = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleOK      = styleDefault.Foreground(tcell.ColorGreen)
	styleAlert   = styleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
)

const maxLogLines = 6

// view хранит последний снимок и хвост лога между кадрами
type view struct {
	last api.ServerResponse
	logs []api.LogEntry
}

func (v *view) apply(resp api.ServerResponse) {
	if resp.Type == "UPDATE" {
		v.last = resp
	}
	v.logs = append(v.logs, resp.Logs...)
	if len(v.logs) > maxLogLines {
		v.logs = v.logs[len(v.logs)-maxLogLines:]
	}
}

func (v *view) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()

	switch v.last.State {
	case domain.StateMenu.String(), "":
		v.drawMenu(s, w)
	case domain.StatePlaying.String():
		v.drawHUD(s, w)
		v.drawOffice(s)
	case domain.StateCamera.String():
		v.drawHUD(s, w)
		v.drawCamera(s)
	case domain.StateGameOver.String():
		v.drawGameOver(s, w)
	case domain.StateWin.String():
		v.drawWin(s, w)
	}

	v.drawLog(s, h)
	s.Show()
}

func (v *view) drawMenu(s tcell.Screen, w int) {
	center(s, w, 2, styleTitle, "FIVE NIGHTS: NIGHT SHIFT")
	lines := []string{
		"A / D      - toggle left / right door",
		"Q / E      - toggle left / right light",
		"SPACE      - open / close camera",
		"LEFT/RIGHT - switch cameras, 1-5 pick one",
		"",
		"Survive until 6 AM. Doors and lights drain power.",
		"",
		"Press SPACE to start, ESC to quit",
	}
	for i, l := range lines {
		center(s, w, 5+i, styleDefault, l)
	}
}

func (v *view) drawHUD(s tcell.Screen, w int) {
	n := v.last.Night
	if n == nil {
		return
	}
	powerStyle := styleOK
	if n.Power < 20 {
		powerStyle = styleAlert
	}
	put(s, 1, 0, powerStyle, fmt.Sprintf("Power: %s  (-%.1f/s)", domain.FormatPower(n.Power), n.DrainRate))
	clock := n.Clock
	put(s, w-runewidth.StringWidth(clock)-2, 0, styleTitle, clock)
}

func (v *view) drawOffice(s tcell.Screen) {
	d := v.last.Defenses
	put(s, 2, 3, styleDefault, "LEFT DOOR:  "+doorLabel(d.LeftDoorClosed))
	put(s, 2, 4, styleDefault, "LEFT LIGHT: "+onOff(d.LeftLightOn))
	put(s, 40, 3, styleDefault, "RIGHT DOOR:  "+doorLabel(d.RightDoorClosed))
	put(s, 40, 4, styleDefault, "RIGHT LIGHT: "+onOff(d.RightLightOn))

	if len(v.last.Doors.LeftWarning) > 0 {
		put(s, 2, 6, styleAlert, "!! "+strings.Join(v.last.Doors.LeftWarning, ", ")+" at the door")
	}
	if len(v.last.Doors.RightWarning) > 0 {
		put(s, 40, 6, styleAlert, "!! "+strings.Join(v.last.Doors.RightWarning, ", ")+" at the door")
	}
}

func (v *view) drawCamera(s tcell.Screen) {
	cam := v.last.Camera
	if cam == nil {
		return
	}
	put(s, 2, 2, styleOK, "CAM: "+cam.Label)
	if len(cam.Occupants) == 0 {
		put(s, 4, 4, styleDim, "(empty)")
	}
	for i, name := range cam.Occupants {
		put(s, 4, 4+i, styleAlert, name)
	}

	x := 2
	for i, loc := range domain.AllLocations() {
		style := styleDim
		if loc.String() == cam.Location {
			style = styleOK.Reverse(true)
		}
		label := fmt.Sprintf("[%d] %s", i+1, loc.DisplayName())
		put(s, x, 9, style, label)
		x += runewidth.StringWidth(label) + 2
	}
}

func (v *view) drawGameOver(s tcell.Screen, w int) {
	entity := ""
	if v.last.Outcome != nil {
		entity = v.last.Outcome.Entity
	}
	if js := v.last.Jumpscare; js != nil {
		center(s, w, 3, styleAlert, strings.ToUpper(js.Entity))
	}
	center(s, w, 5, styleTitle, "GAME OVER")
	center(s, w, 7, styleDefault, "You were caught by "+entity)
	center(s, w, 9, styleDim, "Press SPACE to return to menu")
}

func (v *view) drawWin(s tcell.Screen, w int) {
	center(s, w, 4, styleOK, "6 AM")
	center(s, w, 6, styleTitle, "YOU SURVIVED THE NIGHT")
	center(s, w, 9, styleDim, "Press SPACE to return to menu")
}

func (v *view) drawLog(s tcell.Screen, h int) {
	top := h - len(v.logs) - 1
	for i, l := range v.logs {
		style := styleDim
		if l.Type == "ALERT" || l.Type == "ERROR" {
			style = styleAlert
		}
		put(s, 1, top+i, style, l.Text)
	}
}

func doorLabel(closed bool) string {
	if closed {
		return "SECURED"
	}
	return "OPEN"
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func center(s tcell.Screen, w, y int, style tcell.Style, text string) {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	put(s, x, y, style, text)
}

func put(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
