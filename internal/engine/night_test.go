package engine

import (
	"testing"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inHallway - аниматроник, который сходит к двери на первом же тике
func inHallway(name string, aiLevel int) *domain.Animatronic {
	a := domain.NewAnimatronic(name, aiLevel, 0.01)
	a.Location = domain.LocationHallway
	return a
}

func TestNightSession_PowerOutLosesToFirstEntity(t *testing.T) {
	cfg := testConfig()
	cfg.NightLength = 2000 // ночь длиннее запаса энергии
	night := NewNightSession(cfg, testutil.Constant(0.999))

	for tick := 1; tick < 1000; tick++ {
		out := night.Tick(1, domain.DefenseConfig{})
		require.Equal(t, domain.OutcomeContinuing, out.Kind, "tick %d", tick)
	}

	out := night.Tick(1, domain.DefenseConfig{})
	assert.Equal(t, domain.LostTo("Freddy"), out)
	assert.Equal(t, 0.0, night.Power())

	for _, p := range night.Locations() {
		assert.Equal(t, domain.LocationStage, p.Location, "%s should never move", p.Name)
	}
}

func TestNightSession_SurvivesAtSixAM(t *testing.T) {
	night := NewNightSession(testConfig(), testutil.Constant(0.999))

	for tick := 1; tick < 120; tick++ {
		require.False(t, night.Tick(1, domain.DefenseConfig{}).IsTerminal(), "tick %d", tick)
		if tick == 100 {
			assert.Equal(t, 5, night.Hour())
		}
	}

	assert.Equal(t, domain.Won(), night.Tick(1, domain.DefenseConfig{}))
	assert.Equal(t, 6, night.Hour())
	assert.InDelta(t, 100-0.1*119, night.Power(), 1e-9, "the winning tick does not drain")
}

func TestNightSession_SurvivesWithFrameDeltas(t *testing.T) {
	night := NewNightSession(testConfig(), testutil.Constant(0.999))

	for frame := 1; frame < 1200; frame++ {
		require.False(t, night.Tick(0.1, domain.DefenseConfig{}).IsTerminal(), "frame %d", frame)
	}

	assert.Equal(t, domain.Won(), night.Tick(0.1, domain.DefenseConfig{}))
	assert.Equal(t, 6, night.Hour())
}

func TestNightSession_ForcedBreach(t *testing.T) {
	rng := &testutil.ConstRandom{Value: 0, Index: 1} // всегда ход, всегда правая ветка
	first := inHallway("Bonnie", 3)
	second := inHallway("Chica", 3)
	night := NewNightSessionWithRoster(testConfig(), rng, []*domain.Animatronic{first, second})

	out := night.Tick(1, domain.DefenseConfig{})

	assert.Equal(t, domain.LostTo("Bonnie"), out)
	assert.Equal(t, domain.LocationRightDoor, first.Location)
	// Второй не обрабатывался
	assert.Equal(t, domain.LocationHallway, second.Location)
	assert.Equal(t, 0.01, second.MoveTimer)

	events := night.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, domain.EventCaught, events[len(events)-1].Type)
}

func TestNightSession_ClosedDoorBlocks(t *testing.T) {
	rng := &testutil.ConstRandom{Value: 0, Index: 1}
	night := NewNightSessionWithRoster(testConfig(), rng, []*domain.Animatronic{
		inHallway("Bonnie", 20),
		inHallway("Chica", 20),
	})
	closed := domain.DefenseConfig{RightDoorClosed: true}

	for i := 0; i < 50; i++ {
		require.Equal(t, domain.OutcomeContinuing, night.Tick(1, closed).Kind)
	}

	blocked := 0
	for _, e := range night.DrainEvents() {
		if e.Type == domain.EventBlocked {
			blocked++
		}
	}
	assert.Positive(t, blocked)

	// Дверь открыли - первая же атака успешна
	for i := 0; i < 10; i++ {
		if out := night.Tick(1, domain.DefenseConfig{}); out.IsTerminal() {
			assert.Equal(t, domain.LostTo("Bonnie"), out)
			return
		}
	}
	t.Fatal("expected a breach once the door opened")
}

func TestNightSession_EntityLossBeatsPowerLoss(t *testing.T) {
	cfg := testConfig()
	cfg.Drain.Base = 1000 // энергия кончается за первый тик

	freddy := domain.NewAnimatronic("Freddy", 2, 100)
	bonnie := inHallway("Bonnie", 3)
	night := NewNightSessionWithRoster(cfg, &testutil.ConstRandom{Value: 0, Index: 0}, []*domain.Animatronic{freddy, bonnie})

	out := night.Tick(1, domain.DefenseConfig{})

	assert.Equal(t, 0.0, night.Power())
	assert.Equal(t, domain.LostTo("Bonnie"), out)
}

func TestNightSession_TerminalTicksAreNoOps(t *testing.T) {
	cfg := testConfig()
	cfg.NightLength = 6
	night := NewNightSession(cfg, testutil.Constant(0.999))

	require.Equal(t, domain.Won(), night.Tick(10, domain.DefenseConfig{}))
	elapsed, power := night.Elapsed(), night.Power()

	assert.Equal(t, domain.Won(), night.Tick(5, domain.DefenseConfig{LeftDoorClosed: true}))
	assert.Equal(t, elapsed, night.Elapsed())
	assert.Equal(t, power, night.Power())
}

func TestNightSession_InvalidDeltaIsIgnored(t *testing.T) {
	night := NewNightSession(testConfig(), testutil.Constant(0.999))
	night.Tick(10, domain.DefenseConfig{})

	night.Tick(-5, domain.DefenseConfig{})

	assert.Equal(t, 10.0, night.Elapsed())
	assert.InDelta(t, 99.0, night.Power(), 1e-9)
}

func TestNightSession_ResetNight(t *testing.T) {
	rng := &testutil.ConstRandom{Value: 0, Index: 1}
	night := NewNightSession(testConfig(), rng)

	for !night.Tick(1, domain.DefenseConfig{}).IsTerminal() {
	}
	require.Equal(t, domain.OutcomeLost, night.Outcome().Kind)

	snap := night.ResetNight()

	assert.Equal(t, 100.0, snap.Power)
	assert.Equal(t, 0, snap.Hour)
	assert.Equal(t, 0.0, snap.Elapsed)
	assert.Equal(t, domain.Continuing(), snap.Outcome)
	require.Len(t, snap.Agents, 3)
	for _, a := range snap.Agents {
		assert.Equal(t, domain.LocationStage, a.Location)
	}
	assert.Empty(t, night.DrainEvents())

	timers := []float64{5.0, 4.0, 4.5}
	for i, a := range night.Animatronics() {
		assert.Equal(t, timers[i], a.MoveTimer)
	}
}

func TestNightSession_PowerNeverNegativeAndMonotonic(t *testing.T) {
	night := NewNightSession(testConfig(), testutil.Constant(0.999))
	all := domain.DefenseConfig{LeftDoorClosed: true, RightDoorClosed: true, LeftLightOn: true, RightLightOn: true, CameraOpen: true}

	prev := night.Power()
	for i := 0; i < 200 && !night.Outcome().IsTerminal(); i++ {
		night.Tick(0.5, all)
		p := night.Power()
		assert.LessOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
}
