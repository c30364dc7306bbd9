package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionStartNight
	ActionToggle
	ActionSelectCamera
	ActionCycleCamera
	ActionMenu
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":          ActionInit,
	"START_NIGHT":   ActionStartNight,
	"TOGGLE":        ActionToggle,
	"SELECT_CAMERA": ActionSelectCamera,
	"CYCLE_CAMERA":  ActionCycleCamera,
	"MENU":          ActionMenu,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:         "INIT",
	ActionStartNight:   "START_NIGHT",
	ActionToggle:       "TOGGLE",
	ActionSelectCamera: "SELECT_CAMERA",
	ActionCycleCamera:  "CYCLE_CAMERA",
	ActionMenu:         "MENU",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
