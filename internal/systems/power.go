package systems

import (
	"nightshift-server/internal/domain"
)

// DrainRates - расход энергии в секунду по каждому потребителю.
type DrainRates struct {
	Base       float64 `json:"base"`
	LeftDoor   float64 `json:"leftDoor"`
	RightDoor  float64 `json:"rightDoor"`
	LeftLight  float64 `json:"leftLight"`
	RightLight float64 `json:"rightLight"`
	Camera     float64 `json:"camera"`
}

func DefaultDrainRates() DrainRates {
	return DrainRates{
		Base:       domain.DrainBase,
		LeftDoor:   domain.DrainDoor,
		RightDoor:  domain.DrainDoor,
		LeftLight:  domain.DrainLight,
		RightLight: domain.DrainLight,
		Camera:     domain.DrainCamera,
	}
}

// Rate - суммарный расход в секунду при данной конфигурации.
// Слагаемые независимы и просто складываются.
func (r DrainRates) Rate(d domain.DefenseConfig) float64 {
	rate := r.Base
	if d.LeftDoorClosed {
		rate += r.LeftDoor
	}
	if d.RightDoorClosed {
		rate += r.RightDoor
	}
	if d.LeftLightOn {
		rate += r.LeftLight
	}
	if d.RightLightOn {
		rate += r.RightLight
	}
	if d.CameraOpen {
		rate += r.Camera
	}
	return rate
}

// PowerEconomy - запас энергии на ночь.
type PowerEconomy struct {
	rates DrainRates
	power float64
}

func NewPowerEconomy(rates DrainRates) *PowerEconomy {
	return &PowerEconomy{rates: rates, power: domain.MaxPower}
}

// Tick списывает энергию за dt секунд и возвращает остаток.
// Остаток не бывает отрицательным.
func (p *PowerEconomy) Tick(dt float64, d domain.DefenseConfig) float64 {
	if p.power <= 0 {
		return 0
	}
	p.power -= p.rates.Rate(d) * dt
	if p.power < domain.PowerEpsilon {
		p.power = 0
	}
	return p.power
}

// DrainRate - текущий расход для HUD
func (p *PowerEconomy) DrainRate(d domain.DefenseConfig) float64 {
	return p.rates.Rate(d)
}

func (p *PowerEconomy) Power() float64 { return p.power }

func (p *PowerEconomy) Depleted() bool { return p.power <= 0 }

func (p *PowerEconomy) Reset() { p.power = domain.MaxPower }
