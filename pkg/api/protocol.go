package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" ночи для конкретной сессии.
// Отправляется после каждого шага симуляции и после каждой команды.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// SessionID ID сессии, которой принадлежит снимок.
	SessionID string `json:"sessionId"`

	// State экран игры: MENU, PLAYING, CAMERA, GAME_OVER, WIN.
	// КЛИЕНТ ДОЛЖЕН ОРИЕНТИРОВАТЬСЯ НА ЭТО ПОЛЕ при выборе экрана.
	State string `json:"state"`

	// Night показатели ночи (энергия, время). Нет в MENU до первой ночи.
	Night *NightView `json:"night,omitempty"`

	// Defenses текущие переключатели офиса.
	Defenses DefensesView `json:"defenses"`

	// Camera активная камера. Заполняется только в состоянии CAMERA.
	Camera *CameraView `json:"camera,omitempty"`

	// Doors кто стоит у освещенных дверей.
	Doors DoorsView `json:"doors"`

	// Outcome итог ночи, если она закончилась.
	Outcome *OutcomeView `json:"outcome,omitempty"`

	// Jumpscare отсчет скримера после поражения.
	Jumpscare *JumpscareView `json:"jumpscare,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// NightView содержит показатели HUD.
type NightView struct {
	Power     float64 `json:"power"`     // 0..100
	Hour      int     `json:"hour"`      // 0..6
	Clock     string  `json:"clock"`     // "12 AM".."6 AM"
	Elapsed   float64 `json:"elapsed"`   // секунд с начала ночи
	Remaining float64 `json:"remaining"` // секунд до 6 AM
	DrainRate float64 `json:"drainRate"` // расход в секунду
}

// DefensesView это DTO для переключателей офиса.
type DefensesView struct {
	LeftDoorClosed  bool `json:"leftDoorClosed"`
	RightDoorClosed bool `json:"rightDoorClosed"`
	LeftLightOn     bool `json:"leftLightOn"`
	RightLightOn    bool `json:"rightLightOn"`
	CameraOpen      bool `json:"cameraOpen"`
}

// CameraView то, что видно на выбранной камере.
type CameraView struct {
	Location  string   `json:"location"`  // STAGE, DINING ...
	Label     string   `json:"label"`     // "Show Stage", "Dining Area" ...
	Occupants []string `json:"occupants"` // Имена аниматроников в зоне
}

// DoorsView предупреждения у дверей. Список пуст, если свет выключен.
type DoorsView struct {
	LeftWarning  []string `json:"leftWarning,omitempty"`
	RightWarning []string `json:"rightWarning,omitempty"`
}

// OutcomeView итог ночи.
type OutcomeView struct {
	Kind   string `json:"kind"`             // LOST, WON
	Entity string `json:"entity,omitempty"` // Кто поймал игрока
}

// JumpscareView отсчет скримера на экране GAME_OVER.
type JumpscareView struct {
	Entity    string  `json:"entity"`
	Remaining float64 `json:"remaining"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, ALERT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии, от имени которой выполняется действие.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// ControlPayload используется для TOGGLE.
type ControlPayload struct {
	Control string `json:"control"` // LEFT_DOOR, RIGHT_DOOR, LEFT_LIGHT, RIGHT_LIGHT, CAMERA
}

// CameraPayload используется для SELECT_CAMERA.
type CameraPayload struct {
	Location string `json:"location"`
}

// CyclePayload используется для CYCLE_CAMERA.
type CyclePayload struct {
	Step int `json:"step"` // -1 или 1
}
