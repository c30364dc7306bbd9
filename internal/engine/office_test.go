package engine

import (
	"testing"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffice(rng domain.Random) *Office {
	return NewOffice(NewNightSession(testConfig(), rng))
}

func TestOffice_MenuOnlyStarts(t *testing.T) {
	o := newTestOffice(testutil.Constant(0.999))
	assert.Equal(t, domain.StateMenu, o.State())

	assert.ErrorIs(t, o.Toggle(domain.ControlLeftDoor), domain.ErrWrongState)
	assert.ErrorIs(t, o.Toggle(domain.ControlCamera), domain.ErrWrongState)
	assert.ErrorIs(t, o.ReturnToMenu(), domain.ErrWrongState)

	// В меню время не идет
	o.Advance(50)
	assert.Equal(t, 0.0, o.Night().Elapsed())

	require.NoError(t, o.StartNight())
	assert.Equal(t, domain.StatePlaying, o.State())
	assert.ErrorIs(t, o.StartNight(), domain.ErrWrongState)
}

func TestOffice_ControlsByState(t *testing.T) {
	o := newTestOffice(testutil.Constant(0.999))
	require.NoError(t, o.StartNight())

	require.NoError(t, o.Toggle(domain.ControlLeftDoor))
	require.NoError(t, o.Toggle(domain.ControlRightLight))
	assert.True(t, o.Defenses().LeftDoorClosed)
	assert.True(t, o.Defenses().RightLightOn)

	// Камера
	require.NoError(t, o.Toggle(domain.ControlCamera))
	assert.Equal(t, domain.StateCamera, o.State())
	assert.True(t, o.Defenses().CameraOpen)

	// Из камеры двери недоступны, а закрытая дверь остается закрытой
	assert.ErrorIs(t, o.Toggle(domain.ControlLeftDoor), domain.ErrWrongState)
	assert.True(t, o.Defenses().LeftDoorClosed)

	require.NoError(t, o.SelectCamera(domain.LocationHallway))
	loc, err := o.CycleCamera(1)
	require.NoError(t, err)
	assert.Equal(t, domain.LocationLeftDoor, loc)
	loc, _ = o.CycleCamera(-1)
	assert.Equal(t, domain.LocationHallway, loc)

	require.NoError(t, o.Toggle(domain.ControlCamera))
	assert.Equal(t, domain.StatePlaying, o.State())
	assert.False(t, o.Defenses().CameraOpen)

	_, err = o.CycleCamera(1)
	assert.ErrorIs(t, err, domain.ErrWrongState)
	assert.ErrorIs(t, o.SelectCamera(domain.LocationStage), domain.ErrWrongState)
	assert.ErrorIs(t, o.Toggle(domain.ControlUnknown), domain.ErrUnknownControl)
}

func TestOffice_CameraDrainsWhileOpen(t *testing.T) {
	o := newTestOffice(testutil.Constant(0.999))
	require.NoError(t, o.StartNight())
	require.NoError(t, o.Toggle(domain.ControlCamera))

	o.Advance(10)

	assert.InDelta(t, 98.0, o.Night().Power(), 1e-9) // 0.1 база + 0.1 камера
}

func TestOffice_LossShowsJumpscareThenMenu(t *testing.T) {
	o := newTestOffice(&testutil.ConstRandom{Value: 0, Index: 1})
	require.NoError(t, o.StartNight())

	var out domain.Outcome
	for i := 0; i < 100 && !out.IsTerminal(); i++ {
		out = o.Advance(1)
	}
	require.Equal(t, domain.OutcomeLost, out.Kind)
	assert.Equal(t, domain.StateGameOver, o.State())

	remaining, entity := o.Jumpscare()
	assert.Equal(t, domain.JumpscareSeconds, remaining)
	assert.Equal(t, out.Entity, entity)

	o.Advance(0.5)
	remaining, _ = o.Jumpscare()
	assert.InDelta(t, 1.5, remaining, 1e-9)

	o.Advance(5)
	remaining, _ = o.Jumpscare()
	assert.Equal(t, 0.0, remaining)

	require.NoError(t, o.ReturnToMenu())
	assert.Equal(t, domain.StateMenu, o.State())

	// Новая ночь начинается с чистого листа
	require.NoError(t, o.StartNight())
	assert.Equal(t, domain.DefenseConfig{}, o.Defenses())
	assert.Equal(t, domain.LocationStage, o.Camera())
	assert.Equal(t, 100.0, o.Night().Power())
}

func TestOffice_WinState(t *testing.T) {
	o := newTestOffice(testutil.Constant(0.999))
	require.NoError(t, o.StartNight())

	assert.Equal(t, domain.Won(), o.Advance(120))
	assert.Equal(t, domain.StateWin, o.State())
	remaining, _ := o.Jumpscare()
	assert.Zero(t, remaining)
}

func TestOffice_DoorWarnings(t *testing.T) {
	rng := &testutil.ConstRandom{Value: 0, Index: 0}
	bonnie := inHallway("Bonnie", 3)
	o := NewOffice(NewNightSessionWithRoster(testConfig(), rng, []*domain.Animatronic{bonnie}))
	require.NoError(t, o.StartNight())
	bonnie.Location = domain.LocationLeftDoor // StartNight вернул всех на сцену

	left, right := o.DoorWarnings()
	assert.Empty(t, left, "light is off")
	assert.Empty(t, right)

	require.NoError(t, o.Toggle(domain.ControlLeftLight))
	left, _ = o.DoorWarnings()
	assert.Equal(t, []string{"Bonnie"}, left)
}
