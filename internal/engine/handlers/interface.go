package handlers

import (
	"encoding/json"

	"nightshift-server/internal/domain"
)

// Office описывает пульт игрока, на который действуют команды.
// engine.Office неявно реализует этот интерфейс.
type Office interface {
	State() domain.GameState
	StartNight() error
	Toggle(c domain.Control) error
	SelectCamera(loc domain.Location) error
	CycleCamera(step int) (domain.Location, error)
	ReturnToMenu() error
}

// Context передает хендлеру состояние сессии.
type Context struct {
	SessionID string
	Office    Office
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, ALERT, ERROR)
}

// HandlerFunc - это контракт для любой команды (TOGGLE, SELECT_CAMERA, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
