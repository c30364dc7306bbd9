package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/night", h.handleDumpNight)
}

// /debug/sessions - список активных сессий с краткой сводкой
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Sessions())
}

// /debug/night?id=abc - полная картина ночи, включая скрытые таймеры аниматроников
func (h *DebugHandler) handleDumpNight(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	instance, err := h.Service.GetInstance(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	type NightDump struct {
		Session      string               `json:"session"`
		Seed         int64                `json:"seed"`
		State        string               `json:"state"`
		Night        engine.Snapshot      `json:"night"`
		Animatronics []domain.Animatronic `json:"animatronics"`
	}

	writeJSON(w, NightDump{
		Session:      instance.ID,
		Seed:         instance.Seed,
		State:        instance.State().String(),
		Night:        instance.NightSnapshot(),
		Animatronics: instance.Animatronics(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil, возвращаем пустой массив [], а не null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
