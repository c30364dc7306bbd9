package domain

// EventType - что произошло за тик ночи
type EventType uint8

const (
	EventUnknown EventType = iota
	EventMoved
	EventBlocked
	EventHourChanged
	EventPowerOut
	EventCaught
	EventSurvived
)

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventMoved:       "MOVED",
	EventBlocked:     "BLOCKED",
	EventHourChanged: "HOUR_CHANGED",
	EventPowerOut:    "POWER_OUT",
	EventCaught:      "CAUGHT",
	EventSurvived:    "SURVIVED",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// NightEvent - запись о событии ночи. Поля заполняются по типу:
// Moved - Entity/From/To, Blocked - Entity/To, HourChanged - Hour,
// PowerOut/Caught - Entity.
type NightEvent struct {
	Type   EventType `json:"type"`
	Entity string    `json:"entity,omitempty"`
	From   Location  `json:"from"`
	To     Location  `json:"to"`
	Hour   int       `json:"hour"`
}
