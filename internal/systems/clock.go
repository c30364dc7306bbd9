package systems

import (
	"math"

	"nightshift-server/internal/domain"
)

// NightClock отсчитывает игровое время ночи.
// Час = floor(elapsed * 6 / length), не больше 6.
type NightClock struct {
	length  float64
	elapsed float64
	hour    int
}

// NewNightClock создает часы. Неположительная длина заменяется стандартной.
func NewNightClock(length float64) *NightClock {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		length = domain.NightLengthSeconds
	}
	return &NightClock{length: length}
}

// Tick продвигает часы. Возвращает текущий час и признак наступления 6 AM.
func (c *NightClock) Tick(dt float64) (int, bool) {
	c.elapsed += dt
	c.hour = hourAt(c.elapsed, c.length)
	return c.hour, c.Survived()
}

func hourAt(elapsed, length float64) int {
	h := int(math.Floor(elapsed*domain.HoursPerNight/length + domain.ClockEpsilon))
	if h > domain.HoursPerNight {
		return domain.HoursPerNight
	}
	if h < 0 {
		return 0
	}
	return h
}

func (c *NightClock) Hour() int { return c.hour }

func (c *NightClock) Elapsed() float64 { return c.elapsed }

func (c *NightClock) Length() float64 { return c.length }

// Remaining - секунд до 6 AM
func (c *NightClock) Remaining() float64 {
	return math.Max(0, c.length-c.elapsed)
}

// Survived - наступило 6 AM
func (c *NightClock) Survived() bool { return c.hour >= domain.HoursPerNight }

func (c *NightClock) Reset() {
	c.elapsed = 0
	c.hour = 0
}
