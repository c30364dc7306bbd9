package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine/handlers"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Instance представляет собой одну изолированную игровую сессию (одного игрока).
// Все изменения идут через mu: цикл Run, команды и снимки для клиентов.
type Instance struct {
	ID string

	// Каналы коммуникации
	CommandChan chan domain.InternalCommand // Команды от игрока

	// Ссылка на Service для доступа к Hub и таблице хендлеров
	Service *GameService

	mu     sync.Mutex
	office *Office

	Logs []api.LogEntry // Новые записи с прошлого снимка

	Rng  *rand.Rand // Локальный генератор
	Seed int64      // Сид, с которого началась сессия

	tickRate  time.Duration
	timeScale float64
	cancel    context.CancelFunc
}

func NewInstance(id string, service *GameService, cfg Config, seed int64) *Instance {
	rngSource := rand.NewSource(seed)
	rng := rand.New(rngSource)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 100 * time.Millisecond
	}
	timeScale := cfg.TimeScale
	if timeScale <= 0 {
		timeScale = 1
	}

	return &Instance{
		ID:          id,
		CommandChan: make(chan domain.InternalCommand, 100),
		Service:     service,
		office:      NewOffice(NewNightSession(cfg, rng)),
		Logs:        []api.LogEntry{},
		Rng:         rng,
		Seed:        seed,
		tickRate:    tickRate,
		timeScale:   timeScale,
	}
}

// Run запускает цикл ЭТОЙ сессии: тики по таймеру и команды игрока.
// Завершается при отмене ctx.
func (i *Instance) Run(ctx context.Context) {
	instLogger := logger.Log.WithField("session", i.ID)
	instLogger.Info("Instance loop started")
	defer instLogger.Info("Instance loop stopped")

	ticker := time.NewTicker(i.tickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-i.CommandChan:
			if err := i.Execute(cmd); err != nil {
				instLogger.WithError(err).WithField("action", cmd.Action.String()).Warn("Command rejected")
			}
			i.publish()

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds() * i.timeScale
			last = now
			i.Step(dt)
			i.publish()
		}
	}
}

// Step продвигает сессию на dt игровых секунд.
func (i *Instance) Step(dt float64) domain.Outcome {
	i.mu.Lock()
	defer i.mu.Unlock()

	before := i.office.State()
	outcome := i.office.Advance(dt)
	i.logNightEvents(i.office.Night().DrainEvents())

	if after := i.office.State(); after != before {
		logger.Log.WithFields(logrus.Fields{
			"session": i.ID,
			"from":    before.String(),
			"to":      after.String(),
			"outcome": outcome.String(),
		}).Info("Game state changed")
	}
	return outcome
}

// Execute выполняет команду игрока в контексте сессии.
// Ошибка хендлера попадает в лог сессии как ERROR.
func (i *Instance) Execute(cmd domain.InternalCommand) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	handler, ok := i.handler(cmd.Action)
	if !ok {
		return fmt.Errorf("no handler for action %s", cmd.Action)
	}

	ctx := handlers.Context{
		SessionID: i.ID,
		Office:    i.office,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		i.AddLog(err.Error(), "ERROR")
		return err
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		i.AddLog(result.Msg, msgType)
	}
	return nil
}

func (i *Instance) handler(action domain.ActionType) (handlers.HandlerFunc, bool) {
	if i.Service == nil {
		return nil, false
	}
	h, ok := i.Service.handlers[action]
	return h, ok
}

// publish отправляет снимок подписчику сессии, если он есть.
func (i *Instance) publish() {
	if i.Service == nil || !i.Service.Hub.HasSubscriber(i.ID) {
		return
	}
	i.Service.Hub.SendTo(i.ID, *i.TakeUpdate())
}

// TakeUpdate собирает снимок и очищает накопленные логи.
func (i *Instance) TakeUpdate() *api.ServerResponse {
	i.mu.Lock()
	defer i.mu.Unlock()

	resp := buildState(i)
	i.Logs = []api.LogEntry{}
	return resp
}

// State - текущий экран
func (i *Instance) State() domain.GameState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.office.State()
}

// NightSnapshot - показатели ночи для отладки и инструментов
func (i *Instance) NightSnapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.office.Night().Snapshot()
}

// Animatronics - копии аниматроников текущей ночи
func (i *Instance) Animatronics() []domain.Animatronic {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.office.Night().Animatronics()
}
