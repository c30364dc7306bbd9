package domain

import (
	"errors"
	"strings"
)

// Location - одна из пяти зон офиса. Используется и как позиция аниматроника,
// и как ключ выбора камеры.
type Location uint8

const (
	LocationStage Location = iota
	LocationDining
	LocationHallway
	LocationLeftDoor
	LocationRightDoor
)

// ErrUnknownLocation возвращается ParseLocation для незнакомых имен.
var ErrUnknownLocation = errors.New("unknown location")

// allLocations - порядок камер (CYCLE_CAMERA идет по нему с заворотом)
var allLocations = []Location{
	LocationStage,
	LocationDining,
	LocationHallway,
	LocationLeftDoor,
	LocationRightDoor,
}

// Маппинг для конвертации JSON -> Domain
var locationStringToValue = map[string]Location{
	"STAGE":      LocationStage,
	"DINING":     LocationDining,
	"HALLWAY":    LocationHallway,
	"LEFT_DOOR":  LocationLeftDoor,
	"RIGHT_DOOR": LocationRightDoor,
}

// Маппинг для логов Domain -> String
var locationValueToString = map[Location]string{
	LocationStage:     "STAGE",
	LocationDining:    "DINING",
	LocationHallway:   "HALLWAY",
	LocationLeftDoor:  "LEFT_DOOR",
	LocationRightDoor: "RIGHT_DOOR",
}

// Человекочитаемые названия для HUD и камер
var locationDisplayNames = map[Location]string{
	LocationStage:     "Show Stage",
	LocationDining:    "Dining Area",
	LocationHallway:   "Hallway",
	LocationLeftDoor:  "Left Door",
	LocationRightDoor: "Right Door",
}

// AllLocations возвращает все зоны в порядке камер.
func AllLocations() []Location {
	out := make([]Location, len(allLocations))
	copy(out, allLocations)
	return out
}

// ParseLocation конвертирует строку из JSON в Location
func ParseLocation(s string) (Location, error) {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := locationStringToValue[upper]; ok {
		return val, nil
	}
	return 0, ErrUnknownLocation
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (l Location) String() string {
	if val, ok := locationValueToString[l]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText - в JSON зона пишется именем ("HALLWAY"), а не числом
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(text []byte) error {
	loc, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// DisplayName - название зоны для экрана камеры
func (l Location) DisplayName() string {
	if val, ok := locationDisplayNames[l]; ok {
		return val
	}
	return "Unknown"
}

// Valid сообщает, входит ли значение в перечисление.
func (l Location) Valid() bool {
	_, ok := locationValueToString[l]
	return ok
}

// IsDoor - зона непосредственно у офиса (LeftDoor / RightDoor)
func (l Location) IsDoor() bool {
	return l == LocationLeftDoor || l == LocationRightDoor
}

// CycleLocation сдвигает камеру на step позиций с заворотом.
func CycleLocation(from Location, step int) Location {
	n := len(allLocations)
	idx := 0
	for i, loc := range allLocations {
		if loc == from {
			idx = i
			break
		}
	}
	next := ((idx+step)%n + n) % n
	return allLocations[next]
}
