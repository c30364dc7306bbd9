package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine/handlers"
	"nightshift-server/internal/engine/handlers/actions"
	"nightshift-server/internal/network"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"
	"nightshift-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

var (
	// ErrSessionNotFound - нет сессии с таким токеном
	ErrSessionNotFound = errors.New("session not found")
	// ErrQueueFull - игрок шлет команды быстрее, чем сессия их обрабатывает
	ErrQueueFull = errors.New("command queue full")
)

// SessionInfo - краткая сводка для /debug/sessions
type SessionInfo struct {
	ID      string  `json:"id"`
	State   string  `json:"state"`
	Hour    int     `json:"hour"`
	Power   float64 `json:"power"`
	Outcome string  `json:"outcome"`
	Seed    int64   `json:"seed"`
}

type GameService struct {
	cfg Config

	mu        sync.RWMutex
	instances map[string]*Instance

	Hub *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	ctx     context.Context
	wg      sync.WaitGroup
	started bool
}

func NewService(cfg Config) (*GameService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &GameService{
		cfg:       cfg,
		instances: make(map[string]*Instance),
		Hub:       network.NewBroadcaster(),
		handlers:  make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionStartNight] = handlers.WithEmptyPayload(actions.HandleStartNight)
	s.handlers[domain.ActionMenu] = handlers.WithEmptyPayload(actions.HandleMenu)
	s.handlers[domain.ActionToggle] = handlers.WithPayload(actions.HandleToggle)
	s.handlers[domain.ActionSelectCamera] = handlers.WithPayload(actions.HandleSelectCamera)
	s.handlers[domain.ActionCycleCamera] = handlers.WithPayload(actions.HandleCycleCamera)
}

// Config - параметры, с которыми запущен сервис
func (s *GameService) Config() Config { return s.cfg }

// Start запускает циклы всех сессий. Новые сессии стартуют сразу при Join.
func (s *GameService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx = ctx
	s.started = true
	for _, inst := range s.instances {
		s.runInstance(inst)
	}
	logger.Log.WithField("sessions", len(s.instances)).Info("Game service started")
}

// runInstance вызывается под s.mu.
func (s *GameService) runInstance(inst *Instance) {
	ctx, cancel := context.WithCancel(s.ctx)
	inst.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		inst.Run(ctx)
	}()
}

// Join возвращает сессию по ID, создавая ее при первом входе.
// Пустой ID получает сгенерированный.
func (s *GameService) Join(id string) *Instance {
	if id == "" {
		id = utils.GenerateID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if inst, ok := s.instances[id]; ok {
		return inst
	}

	seed := s.cfg.Seed + utils.StringToSeed(id)
	inst := NewInstance(id, s, s.cfg, seed)
	s.instances[id] = inst
	if s.started {
		s.runInstance(inst)
	}

	logger.Log.WithFields(logrus.Fields{
		"session": id,
		"seed":    seed,
	}).Info("Session created")
	return inst
}

// Leave останавливает и удаляет сессию.
func (s *GameService) Leave(id string) {
	s.mu.RLock()
	inst, ok := s.instances[id]
	s.mu.RUnlock()

	if ok {
		s.remove(inst)
	}
}

// Release вызывается, когда отключился клиент сессии.
// Сессия вне ночи закрывается сразу, идущая ночь ждет ReconnectGrace:
// переподключение с тем же токеном за это время продолжает ее.
func (s *GameService) Release(id string) {
	inst, err := s.GetInstance(id)
	if err != nil || s.Hub.HasSubscriber(id) {
		return
	}

	grace := s.cfg.ReconnectGrace
	if grace <= 0 || !inst.State().IsSimulating() {
		s.removeIfAbandoned(inst)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"session": id,
		"grace":   grace.String(),
	}).Info("Client gone, waiting for reconnect")
	time.AfterFunc(grace, func() { s.removeIfAbandoned(inst) })
}

func (s *GameService) removeIfAbandoned(inst *Instance) {
	if s.Hub.HasSubscriber(inst.ID) {
		return
	}
	s.remove(inst)
}

// remove удаляет именно этот инстанс: сессия с тем же ID,
// созданная заново, не трогается.
func (s *GameService) remove(inst *Instance) {
	s.mu.Lock()
	cur, ok := s.instances[inst.ID]
	if !ok || cur != inst {
		s.mu.Unlock()
		return
	}
	delete(s.instances, inst.ID)
	cancel := inst.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	logger.Log.WithField("session", inst.ID).Info("Session closed")
}

// GetInstance ищет сессию по ID
func (s *GameService) GetInstance(id string) (*Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return inst, nil
}

// ProcessCommand принимает команду от внешнего мира (WebSocket, консоль, автопилот)
// и ставит ее в очередь сессии, указанной в Token.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		return fmt.Errorf("unknown action: %q", externalCmd.Action)
	}

	inst, err := s.GetInstance(externalCmd.Token)
	if err != nil {
		return err
	}

	select {
	case inst.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrQueueFull, externalCmd.Token)
	}
}

// Sessions - сводка по всем сессиям, отсортированная по ID
func (s *GameService) Sessions() []SessionInfo {
	s.mu.RLock()
	list := make([]*Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		list = append(list, inst)
	}
	s.mu.RUnlock()

	out := make([]SessionInfo, 0, len(list))
	for _, inst := range list {
		snap := inst.NightSnapshot()
		out = append(out, SessionInfo{
			ID:      inst.ID,
			State:   inst.State().String(),
			Hour:    snap.Hour,
			Power:   snap.Power,
			Outcome: snap.Outcome.String(),
			Seed:    inst.Seed,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Shutdown останавливает все сессии и ждет завершения их циклов.
func (s *GameService) Shutdown() {
	s.mu.Lock()
	for _, inst := range s.instances {
		if inst.cancel != nil {
			inst.cancel()
		}
	}
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()
	logger.Log.Info("Game service stopped")
}
