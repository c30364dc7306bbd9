package engine

import (
	"errors"
	"fmt"
	"time"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/systems"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Сид сессии = Seed + хеш ID сессии,
	// поэтому одна и та же сессия при одном Seed проигрывается одинаково.
	Seed int64

	NightLength float64       // Секунд реального времени на ночь
	TickRate    time.Duration // Период цикла инстанса
	TimeScale   float64       // Множитель игрового времени (ускорение для автопилота)

	// ReconnectGrace - сколько идущая ночь ждет переподключения
	// после ухода последнего клиента. 0 - закрывать сразу.
	ReconnectGrace time.Duration

	Drain  systems.DrainRates
	Attack systems.AttackParams
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		NightLength: domain.NightLengthSeconds,
		TickRate:    100 * time.Millisecond,
		TimeScale:   1.0,

		ReconnectGrace: 30 * time.Second,
		Drain:       systems.DefaultDrainRates(),
		Attack:      systems.DefaultAttackParams(),
	}
}

// Validate проверяет, что параметры допустимы.
func (c Config) Validate() error {
	var errs []error
	if c.NightLength <= 0 {
		errs = append(errs, fmt.Errorf("night length must be positive, got %v", c.NightLength))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %v", c.TickRate))
	}
	if c.TimeScale <= 0 {
		errs = append(errs, fmt.Errorf("time scale must be positive, got %v", c.TimeScale))
	}
	if c.ReconnectGrace < 0 {
		errs = append(errs, fmt.Errorf("reconnect grace must not be negative, got %v", c.ReconnectGrace))
	}

	d := c.Drain
	rates := []struct {
		name string
		v    float64
	}{
		{"base", d.Base}, {"leftDoor", d.LeftDoor}, {"rightDoor", d.RightDoor},
		{"leftLight", d.LeftLight}, {"rightLight", d.RightLight}, {"camera", d.Camera},
	}
	for _, r := range rates {
		if r.v < 0 {
			errs = append(errs, fmt.Errorf("drain rate %s must not be negative, got %v", r.name, r.v))
		}
	}

	if c.Attack.Base < 0 {
		errs = append(errs, fmt.Errorf("attack base chance must not be negative, got %v", c.Attack.Base))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid engine config: %w", errors.Join(errs...))
	}
	return nil
}
