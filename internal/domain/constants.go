package domain

// Энергия
const (
	MaxPower = 100.0

	DrainBase   = 0.1 // Базовый расход в секунду
	DrainDoor   = 0.4 // Каждая закрытая дверь
	DrainLight  = 0.2 // Каждый включенный свет
	DrainCamera = 0.1 // Открытый монитор

	// Остаток ниже порога считается нулем (накопленная ошибка float)
	PowerEpsilon = 1e-9
)

// Время
const (
	NightLengthSeconds = 120.0 // 2 минуты реального времени на ночь
	HoursPerNight      = 6     // 12 AM -> 6 AM
	JumpscareSeconds   = 2.0

	// Допуск при переводе elapsed в час: сумма дробных dt
	// (0.1, 1/60) недобирает до границы часа на ~1e-12
	ClockEpsilon = 1e-9
)

// Поведение аниматроников
const (
	DifficultyDivisor = 20.0

	// Таймер после удачного хода
	MoveTimerMin = 3.0
	MoveTimerMax = 8.0

	// Таймер после "почти хода" - повтор раньше
	RetryTimerMin = 2.0
	RetryTimerMax = 5.0
)

// Атака у открытой двери
const (
	AttackBaseChance    = 0.8
	AttackAILevelWeight = 0.05
	AttackHourWeight    = 0.05
)
