package domain

import (
	"errors"
	"strings"
)

// DefenseConfig - переключатели игрока. Принадлежат слою ввода,
// симуляция только читает их каждый тик.
type DefenseConfig struct {
	LeftDoorClosed  bool `json:"leftDoorClosed"`
	RightDoorClosed bool `json:"rightDoorClosed"`
	LeftLightOn     bool `json:"leftLightOn"`
	RightLightOn    bool `json:"rightLightOn"`
	CameraOpen      bool `json:"cameraOpen"`
}

// DoorClosedAt сообщает, закрыта ли дверь для зоны у двери.
// Для остальных зон всегда false.
func (d DefenseConfig) DoorClosedAt(loc Location) bool {
	switch loc {
	case LocationLeftDoor:
		return d.LeftDoorClosed
	case LocationRightDoor:
		return d.RightDoorClosed
	}
	return false
}

// LightOnAt сообщает, освещена ли зона у двери.
func (d DefenseConfig) LightOnAt(loc Location) bool {
	switch loc {
	case LocationLeftDoor:
		return d.LeftLightOn
	case LocationRightDoor:
		return d.RightLightOn
	}
	return false
}

// Engaged - включен ли конкретный переключатель
func (d DefenseConfig) Engaged(c Control) bool {
	switch c {
	case ControlLeftDoor:
		return d.LeftDoorClosed
	case ControlRightDoor:
		return d.RightDoorClosed
	case ControlLeftLight:
		return d.LeftLightOn
	case ControlRightLight:
		return d.RightLightOn
	case ControlCamera:
		return d.CameraOpen
	}
	return false
}

// Toggle возвращает копию с переключенным контролом.
func (d DefenseConfig) Toggle(c Control) DefenseConfig {
	switch c {
	case ControlLeftDoor:
		d.LeftDoorClosed = !d.LeftDoorClosed
	case ControlRightDoor:
		d.RightDoorClosed = !d.RightDoorClosed
	case ControlLeftLight:
		d.LeftLightOn = !d.LeftLightOn
	case ControlRightLight:
		d.RightLightOn = !d.RightLightOn
	case ControlCamera:
		d.CameraOpen = !d.CameraOpen
	}
	return d
}

// Control - один из переключателей офиса
type Control uint8

const (
	ControlUnknown Control = iota
	ControlLeftDoor
	ControlRightDoor
	ControlLeftLight
	ControlRightLight
	ControlCamera
)

// ErrUnknownControl возвращается ParseControl для незнакомых имен.
var ErrUnknownControl = errors.New("unknown control")

var controlStringToValue = map[string]Control{
	"LEFT_DOOR":   ControlLeftDoor,
	"RIGHT_DOOR":  ControlRightDoor,
	"LEFT_LIGHT":  ControlLeftLight,
	"RIGHT_LIGHT": ControlRightLight,
	"CAMERA":      ControlCamera,
}

var controlValueToString = map[Control]string{
	ControlLeftDoor:   "LEFT_DOOR",
	ControlRightDoor:  "RIGHT_DOOR",
	ControlLeftLight:  "LEFT_LIGHT",
	ControlRightLight: "RIGHT_LIGHT",
	ControlCamera:     "CAMERA",
}

// ParseControl конвертирует строку из JSON в Control
func ParseControl(s string) (Control, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := controlStringToValue[upper]; ok {
		return val, nil
	}
	return ControlUnknown, ErrUnknownControl
}

func (c Control) String() string {
	if val, ok := controlValueToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsDoorOrLight - контролы, доступные только в офисе (не из камеры)
func (c Control) IsDoorOrLight() bool {
	return c == ControlLeftDoor || c == ControlRightDoor ||
		c == ControlLeftLight || c == ControlRightLight
}
