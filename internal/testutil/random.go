// Package testutil содержит детерминированные источники случайности
// для тестов симуляции.
package testutil

// ConstRandom всегда возвращает одно и то же.
type ConstRandom struct {
	Value float64 // Результат Float64
	Index int     // Результат Intn (по модулю n)

	Calls int // Сколько раз вызывался Float64
}

// Constant - Float64 всегда v, Intn всегда 0.
func Constant(v float64) *ConstRandom {
	return &ConstRandom{Value: v}
}

func (r *ConstRandom) Float64() float64 {
	r.Calls++
	return r.Value
}

func (r *ConstRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.Index % n
}

// SequenceRandom отдает заранее записанные значения по кругу.
// Пустая последовательность ведет себя как Constant(0).
type SequenceRandom struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func Sequence(floats ...float64) *SequenceRandom {
	return &SequenceRandom{Floats: floats}
}

// WithInts задает ответы Intn.
func (r *SequenceRandom) WithInts(ints ...int) *SequenceRandom {
	r.Ints = ints
	return r
}

func (r *SequenceRandom) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[r.fi%len(r.Floats)]
	r.fi++
	return v
}

func (r *SequenceRandom) Intn(n int) int {
	if n <= 0 || len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ii%len(r.Ints)]
	r.ii++
	return v % n
}

// FloatCalls - сколько значений Float64 уже выдано
func (r *SequenceRandom) FloatCalls() int { return r.fi }
