package domain

// Animatronic - автономный противник. Имя и AILevel неизменны,
// остальное - состояние текущей ночи.
type Animatronic struct {
	Name    string `json:"name"`
	AILevel int    `json:"aiLevel"` // Агрессивность (обычно 0..20)

	Location  Location `json:"location"`
	MoveTimer float64  `json:"moveTimer"` // Секунд до следующей попытки хода
	Active    bool     `json:"active"`

	initialTimer float64
}

// NewAnimatronic создает аниматроника на сцене.
func NewAnimatronic(name string, aiLevel int, moveTimer float64) *Animatronic {
	return &Animatronic{
		Name:         name,
		AILevel:      aiLevel,
		Location:     LocationStage,
		MoveTimer:    moveTimer,
		Active:       true,
		initialTimer: moveTimer,
	}
}

// Reset возвращает аниматроника в состояние начала ночи.
func (a *Animatronic) Reset() {
	a.Location = LocationStage
	a.MoveTimer = a.initialTimer
	a.Active = true
}

// Difficulty - шанс хода. Не ограничен сверху: >= 1 означает "ходит всегда".
func Difficulty(aiLevel, hour int) float64 {
	return float64(aiLevel+hour) / DifficultyDivisor
}

// Advance продвигает таймер на dt секунд. Когда таймер истек,
// бросается кубик против Difficulty: при успехе аниматроник переходит
// в следующую зону и взводит длинный таймер, иначе - короткий.
// Возвращает true, если был ход.
func (a *Animatronic) Advance(dt float64, hour int, rng Random) bool {
	if !a.Active {
		return false
	}

	a.MoveTimer -= dt
	if a.MoveTimer > 0 {
		return false
	}

	if rng.Float64() < Difficulty(a.AILevel, hour) {
		a.Move(rng)
		a.MoveTimer = Uniform(rng, MoveTimerMin, MoveTimerMax)
		return true
	}

	a.MoveTimer = Uniform(rng, RetryTimerMin, RetryTimerMax)
	return false
}

// Move выбирает равновероятно одного из преемников текущей зоны.
// У дверей единственный преемник - сама дверь.
func (a *Animatronic) Move(rng Random) {
	next := Successors(a.Location)
	if len(next) == 0 {
		return
	}
	a.Location = next[rng.Intn(len(next))]
}

// DefaultRoster - состав на новую ночь. Первый в списке отвечает
// за отключение энергии.
func DefaultRoster() []*Animatronic {
	return []*Animatronic{
		NewAnimatronic("Freddy", 2, 5.0),
		NewAnimatronic("Bonnie", 3, 4.0),
		NewAnimatronic("Chica", 3, 4.5),
	}
}

// AtLocation - аниматроники в указанной зоне (для камер и света у дверей)
func AtLocation(roster []*Animatronic, loc Location) []*Animatronic {
	var out []*Animatronic
	for _, a := range roster {
		if a.Location == loc {
			out = append(out, a)
		}
	}
	return out
}

// NamesAt - имена аниматроников в зоне
func NamesAt(roster []*Animatronic, loc Location) []string {
	names := make([]string, 0)
	for _, a := range AtLocation(roster, loc) {
		names = append(names, a.Name)
	}
	return names
}
