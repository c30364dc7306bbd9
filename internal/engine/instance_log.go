package engine

import (
	"fmt"
	"time"

	"nightshift-server/internal/domain"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"
	"nightshift-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет лог в историю сессии. Вызывается под i.mu.
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"session":   i.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// logNightEvents превращает события ночи в записи лога.
// Перемещения игроку не показываем: их видно только на камерах.
func (i *Instance) logNightEvents(events []domain.NightEvent) {
	for _, e := range events {
		switch e.Type {
		case domain.EventMoved:
			logger.Log.WithFields(logrus.Fields{
				"session": i.ID,
				"entity":  e.Entity,
				"from":    e.From.String(),
				"to":      e.To.String(),
				"hour":    e.Hour,
			}).Debug("Animatronic moved")
		case domain.EventHourChanged:
			// 6 AM объявляет EventSurvived
			if e.Hour < domain.HoursPerNight {
				i.AddLog(domain.FormatHour(e.Hour), "INFO")
			}
		case domain.EventBlocked:
			i.AddLog(fmt.Sprintf("Кто-то стучит в дверь: %s.", e.To.DisplayName()), "ALERT")
		case domain.EventPowerOut:
			i.AddLog(fmt.Sprintf("Энергия закончилась. В темноте звучит мелодия %s...", e.Entity), "ALERT")
		case domain.EventCaught:
			i.AddLog(fmt.Sprintf("Вас поймал %s.", e.Entity), "ALERT")
		case domain.EventSurvived:
			i.AddLog("6 AM. Вы пережили ночь!", "INFO")
		}
	}
}
