package domain

// Random - источник случайности для симуляции.
// *rand.Rand из math/rand реализует его без адаптеров; в тестах
// подставляются детерминированные реализации.
type Random interface {
	// Float64 возвращает значение в [0, 1).
	Float64() float64
	// Intn возвращает значение в [0, n).
	Intn(n int) int
}

// Uniform возвращает равномерное значение в [min, max).
func Uniform(rng Random, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
