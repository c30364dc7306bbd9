package engine

import (
	"nightshift-server/internal/domain"
	"nightshift-server/internal/systems"
	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AgentPosition - где находится аниматроник (для камер и света у дверей)
type AgentPosition struct {
	Name     string          `json:"name"`
	Location domain.Location `json:"location"`
}

// Snapshot - состояние ночи сразу после сброса или на момент запроса.
type Snapshot struct {
	Power   float64         `json:"power"`
	Hour    int             `json:"hour"`
	Elapsed float64         `json:"elapsed"`
	Outcome domain.Outcome  `json:"outcome"`
	Agents  []AgentPosition `json:"agents"`
}

// NightSession - симуляция одной ночи: часы, энергия и аниматроники.
// Однопоточная: владельцем является ровно один Instance.
type NightSession struct {
	clock  *systems.NightClock
	power  *systems.PowerEconomy
	threat *systems.ThreatResolver

	roster  []*domain.Animatronic
	rng     domain.Random
	outcome domain.Outcome

	events []domain.NightEvent
}

// NewNightSession создает ночь со стандартным составом.
func NewNightSession(cfg Config, rng domain.Random) *NightSession {
	return NewNightSessionWithRoster(cfg, rng, domain.DefaultRoster())
}

// NewNightSessionWithRoster создает ночь с заданным составом.
// Первый аниматроник в списке атакует при отключении энергии.
// Пустой состав заменяется стандартным.
func NewNightSessionWithRoster(cfg Config, rng domain.Random, roster []*domain.Animatronic) *NightSession {
	if len(roster) == 0 {
		roster = domain.DefaultRoster()
	}
	return &NightSession{
		clock:   systems.NewNightClock(cfg.NightLength),
		power:   systems.NewPowerEconomy(cfg.Drain),
		threat:  systems.NewThreatResolver(cfg.Attack),
		roster:  roster,
		rng:     rng,
		outcome: domain.Continuing(),
	}
}

// ResetNight возвращает все к началу ночи.
func (n *NightSession) ResetNight() Snapshot {
	n.clock.Reset()
	n.power.Reset()
	for _, a := range n.roster {
		a.Reset()
	}
	n.outcome = domain.Continuing()
	n.events = nil
	return n.Snapshot()
}

// Tick продвигает ночь на dt секунд при заданной конфигурации защиты.
// Порядок: часы -> энергия -> аниматроники (и атака у двери) -> проверка энергии.
// После Lost/Won тики ничего не меняют до ResetNight.
func (n *NightSession) Tick(dt float64, defenses domain.DefenseConfig) domain.Outcome {
	if n.outcome.IsTerminal() {
		return n.outcome
	}
	dt = systems.SanitizeDelta(dt)

	// 1. Часы
	prevHour := n.clock.Hour()
	hour, reachedEnd := n.clock.Tick(dt)
	if hour != prevHour {
		n.emit(domain.NightEvent{Type: domain.EventHourChanged, Hour: hour})
	}
	if reachedEnd {
		n.outcome = domain.Won()
		n.emit(domain.NightEvent{Type: domain.EventSurvived, Hour: hour})
		return n.outcome
	}

	// 2. Энергия
	n.power.Tick(dt, defenses)

	// 3. Аниматроники по порядку состава
	for _, a := range n.roster {
		from := a.Location
		if !a.Advance(dt, hour, n.rng) {
			continue
		}
		n.emit(domain.NightEvent{Type: domain.EventMoved, Entity: a.Name, From: from, To: a.Location, Hour: hour})

		if !a.Location.IsDoor() {
			continue
		}
		if n.threat.Resolve(a, hour, defenses, n.rng) {
			n.outcome = domain.LostTo(a.Name)
			n.emit(domain.NightEvent{Type: domain.EventCaught, Entity: a.Name, To: a.Location, Hour: hour})
			return n.outcome
		}
		if defenses.DoorClosedAt(a.Location) {
			n.emit(domain.NightEvent{Type: domain.EventBlocked, Entity: a.Name, To: a.Location, Hour: hour})
		}
	}

	// 4. Отключение энергии
	if n.power.Depleted() {
		attacker := n.roster[0].Name
		logger.Log.WithFields(logrus.Fields{
			"component": "night_session",
			"entity":    attacker,
			"hour":      hour,
		}).Info("Power out")
		n.outcome = domain.LostTo(attacker)
		n.emit(domain.NightEvent{Type: domain.EventPowerOut, Entity: attacker, Hour: hour})
	}

	return n.outcome
}

func (n *NightSession) emit(e domain.NightEvent) {
	n.events = append(n.events, e)
}

// DrainEvents забирает накопленные события (буфер очищается).
func (n *NightSession) DrainEvents() []domain.NightEvent {
	out := n.events
	n.events = nil
	return out
}

func (n *NightSession) Power() float64 { return n.power.Power() }

func (n *NightSession) Hour() int { return n.clock.Hour() }

func (n *NightSession) Elapsed() float64 { return n.clock.Elapsed() }

func (n *NightSession) Remaining() float64 { return n.clock.Remaining() }

func (n *NightSession) Outcome() domain.Outcome { return n.outcome }

// DrainRate - текущий расход энергии при заданной защите
func (n *NightSession) DrainRate(defenses domain.DefenseConfig) float64 {
	return n.power.DrainRate(defenses)
}

// Locations - позиции в порядке состава
func (n *NightSession) Locations() []AgentPosition {
	out := make([]AgentPosition, 0, len(n.roster))
	for _, a := range n.roster {
		out = append(out, AgentPosition{Name: a.Name, Location: a.Location})
	}
	return out
}

// Animatronics - копии аниматроников (изменять состояние снаружи нельзя)
func (n *NightSession) Animatronics() []domain.Animatronic {
	out := make([]domain.Animatronic, 0, len(n.roster))
	for _, a := range n.roster {
		out = append(out, *a)
	}
	return out
}

// NamesAt - кто сейчас в зоне
func (n *NightSession) NamesAt(loc domain.Location) []string {
	return domain.NamesAt(n.roster, loc)
}

func (n *NightSession) Snapshot() Snapshot {
	return Snapshot{
		Power:   n.power.Power(),
		Hour:    n.clock.Hour(),
		Elapsed: n.clock.Elapsed(),
		Outcome: n.outcome,
		Agents:  n.Locations(),
	}
}
