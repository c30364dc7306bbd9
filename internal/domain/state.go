package domain

import (
	"errors"
	"fmt"
)

// ErrWrongState - команда недоступна на текущем экране.
var ErrWrongState = errors.New("action not allowed in current state")

// GameState - экран, на котором находится игрок.
// Симуляция идет только в PLAYING и CAMERA.
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StateCamera
	StateGameOver
	StateWin
)

var gameStateToString = map[GameState]string{
	StateMenu:     "MENU",
	StatePlaying:  "PLAYING",
	StateCamera:   "CAMERA",
	StateGameOver: "GAME_OVER",
	StateWin:      "WIN",
}

func (s GameState) String() string {
	if val, ok := gameStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsSimulating - ночь идет
func (s GameState) IsSimulating() bool {
	return s == StatePlaying || s == StateCamera
}

// IsFinished - экран итогов ночи
func (s GameState) IsFinished() bool {
	return s == StateGameOver || s == StateWin
}

var hourLabels = []string{"12 AM", "1 AM", "2 AM", "3 AM", "4 AM", "5 AM", "6 AM"}

// FormatHour превращает час ночи 0..6 в подпись для HUD.
func FormatHour(hour int) string {
	if hour < 0 {
		hour = 0
	}
	if hour > HoursPerNight {
		hour = HoursPerNight
	}
	return hourLabels[hour]
}

// FormatPower - заряд в процентах для HUD
func FormatPower(power float64) string {
	return fmt.Sprintf("%d%%", int(power))
}
