package agent

import (
	"context"
	"encoding/json"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// pendingUpdates - сколько снимков ждать подтверждения команды,
// прежде чем разрешить ее повтор.
const pendingUpdates = 10

// Result - чем закончилась ночь автопилота
type Result struct {
	SessionID string           `json:"sessionId"`
	State     string           `json:"state"`
	Outcome   *api.OutcomeView `json:"outcome,omitempty"`
	Hour      int              `json:"hour"`
	Power     float64          `json:"power"`
}

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он подписывается на снимки своей сессии в хабе так же, как обычный клиент,
// и отвечает командами через GameService.ProcessCommand.
//
// Жизненный цикл:
//  1. NewBot -> создание сессии и регистрация в хабе (личный канал Inbox).
//  2. Run -> слушает Inbox, на каждый снимок вызывает Decide.
//  3. На экране GAME_OVER или WIN отдает Result в Done() и завершается.
type Bot struct {
	SessionID string
	Service   *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox     chan api.ServerResponse

	pending map[string]int
	last    api.DefensesView
	done    chan Result
}

func NewBot(sessionID string, service *engine.GameService) *Bot {
	inst := service.Join(sessionID)
	logger.Log.WithField("session", inst.ID).Info("Creating autopilot")
	return &Bot{
		SessionID: inst.ID,
		Service:   service,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox:   service.Hub.Register(inst.ID),
		pending: make(map[string]int),
		done:    make(chan Result, 1),
	}
}

// Done закрывается (с результатом) по окончании ночи
func (b *Bot) Done() <-chan Result { return b.done }

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.UnregisterChan(b.SessionID, b.Inbox)
	defer close(b.done)

	botLogger := logger.Log.WithField("session", b.SessionID)

	// Первый снимок
	b.send(api.ClientCommand{Action: domain.ActionInit.String()})

	for {
		select {
		case <-ctx.Done():
			botLogger.Info("Autopilot cancelled")
			return

		case state, ok := <-b.Inbox:
			if !ok {
				return
			}
			if state.Type != "UPDATE" {
				continue
			}

			if state.State == domain.StateGameOver.String() || state.State == domain.StateWin.String() {
				res := Result{SessionID: b.SessionID, State: state.State, Outcome: state.Outcome}
				if state.Night != nil {
					res.Hour = state.Night.Hour
					res.Power = state.Night.Power
				}
				botLogger.WithFields(logrus.Fields{
					"state": res.State,
					"hour":  res.Hour,
					"power": res.Power,
				}).Info("Autopilot finished the night")
				b.done <- res
				return
			}

			// Пульт изменился - ожидающие команды дошли
			if state.Defenses != b.last {
				b.last = state.Defenses
				clear(b.pending)
			}
			b.tickPending()
			for _, cmd := range Decide(state) {
				b.sendOnce(cmd)
			}
		}
	}
}

// Decide - мозг бота. Возвращает команды, которые приводят офис к желаемому виду:
// свет горит у открытых дверей, дверь закрывается, как только свет показал гостя.
func Decide(state api.ServerResponse) []api.ClientCommand {
	switch state.State {
	case domain.StateMenu.String():
		return []api.ClientCommand{{Action: domain.ActionStartNight.String()}}

	case domain.StateCamera.String():
		// Бот смотрит только на двери
		return []api.ClientCommand{toggle(domain.ControlCamera)}

	case domain.StatePlaying.String():
		d := state.Defenses
		var cmds []api.ClientCommand
		cmds = append(cmds, guardDoor(d.LeftDoorClosed, d.LeftLightOn, state.Doors.LeftWarning,
			domain.ControlLeftDoor, domain.ControlLeftLight)...)
		cmds = append(cmds, guardDoor(d.RightDoorClosed, d.RightLightOn, state.Doors.RightWarning,
			domain.ControlRightDoor, domain.ControlRightLight)...)
		return cmds
	}
	return nil
}

func guardDoor(closed, lightOn bool, warning []string, door, light domain.Control) []api.ClientCommand {
	if !closed && len(warning) > 0 {
		return []api.ClientCommand{toggle(door)}
	}
	// У закрытой двери свет не нужен
	if lightOn == closed {
		return []api.ClientCommand{toggle(light)}
	}
	return nil
}

func toggle(c domain.Control) api.ClientCommand {
	payload, _ := json.Marshal(api.ControlPayload{Control: c.String()})
	return api.ClientCommand{Action: domain.ActionToggle.String(), Payload: payload}
}

// sendOnce не повторяет команду, пока она ждет подтверждения
func (b *Bot) sendOnce(cmd api.ClientCommand) {
	key := cmd.Action + string(cmd.Payload)
	if b.pending[key] > 0 {
		return
	}
	b.pending[key] = pendingUpdates
	b.send(cmd)
}

func (b *Bot) tickPending() {
	for key, left := range b.pending {
		if left <= 1 {
			delete(b.pending, key)
			continue
		}
		b.pending[key] = left - 1
	}
}

func (b *Bot) send(cmd api.ClientCommand) {
	cmd.Token = b.SessionID
	if err := b.Service.ProcessCommand(cmd); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"session": b.SessionID,
			"action":  cmd.Action,
		}).Warn("Autopilot command rejected")
	}
}
