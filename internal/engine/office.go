package engine

import (
	"nightshift-server/internal/domain"
	"nightshift-server/internal/systems"
)

// Office - экранный автомат вокруг ночи: меню, офис, камеры, итоги.
// Владеет переключателями и передает их в NightSession по значению.
type Office struct {
	night *NightSession

	state     domain.GameState
	defenses  domain.DefenseConfig
	camera    domain.Location
	jumpscare float64
}

func NewOffice(night *NightSession) *Office {
	return &Office{
		night:  night,
		state:  domain.StateMenu,
		camera: domain.LocationStage,
	}
}

func (o *Office) State() domain.GameState { return o.state }

func (o *Office) Defenses() domain.DefenseConfig { return o.defenses }

func (o *Office) Camera() domain.Location { return o.camera }

func (o *Office) Night() *NightSession { return o.night }

// Jumpscare - оставшееся время скримера и кто напал
func (o *Office) Jumpscare() (float64, string) {
	return o.jumpscare, o.night.Outcome().Entity
}

// StartNight сбрасывает ночь и переключатели. Только из меню.
func (o *Office) StartNight() error {
	if o.state != domain.StateMenu {
		return domain.ErrWrongState
	}
	o.night.ResetNight()
	o.defenses = domain.DefenseConfig{}
	o.camera = domain.LocationStage
	o.jumpscare = 0
	o.state = domain.StatePlaying
	return nil
}

// Toggle переключает контрол. Двери и свет - только в офисе,
// камера открывается из офиса и закрывается из камеры.
func (o *Office) Toggle(c domain.Control) error {
	switch {
	case c == domain.ControlCamera:
		switch o.state {
		case domain.StatePlaying:
			o.state = domain.StateCamera
		case domain.StateCamera:
			o.state = domain.StatePlaying
		default:
			return domain.ErrWrongState
		}
		o.defenses = o.defenses.Toggle(c)
		return nil

	case c.IsDoorOrLight():
		if o.state != domain.StatePlaying {
			return domain.ErrWrongState
		}
		o.defenses = o.defenses.Toggle(c)
		return nil
	}
	return domain.ErrUnknownControl
}

func (o *Office) SelectCamera(loc domain.Location) error {
	if !loc.Valid() {
		return domain.ErrUnknownLocation
	}
	if o.state != domain.StateCamera {
		return domain.ErrWrongState
	}
	o.camera = loc
	return nil
}

func (o *Office) CycleCamera(step int) (domain.Location, error) {
	if o.state != domain.StateCamera {
		return o.camera, domain.ErrWrongState
	}
	o.camera = domain.CycleLocation(o.camera, step)
	return o.camera, nil
}

// ReturnToMenu - выход с экрана итогов
func (o *Office) ReturnToMenu() error {
	if !o.state.IsFinished() {
		return domain.ErrWrongState
	}
	o.state = domain.StateMenu
	o.jumpscare = 0
	return nil
}

// Advance продвигает время на dt. Ночь тикает только в офисе и камере,
// на экране поражения идет отсчет скримера.
func (o *Office) Advance(dt float64) domain.Outcome {
	switch {
	case o.state.IsSimulating():
		outcome := o.night.Tick(dt, o.defenses)
		switch outcome.Kind {
		case domain.OutcomeLost:
			o.state = domain.StateGameOver
			o.jumpscare = domain.JumpscareSeconds
		case domain.OutcomeWon:
			o.state = domain.StateWin
		}
		return outcome

	case o.state == domain.StateGameOver && o.jumpscare > 0:
		o.jumpscare -= systems.SanitizeDelta(dt)
		if o.jumpscare < 0 {
			o.jumpscare = 0
		}
	}
	return o.night.Outcome()
}

// DoorWarnings - кто виден у дверей при включенном свете
func (o *Office) DoorWarnings() (left, right []string) {
	if !o.state.IsSimulating() {
		return nil, nil
	}
	if o.defenses.LeftLightOn {
		left = o.night.NamesAt(domain.LocationLeftDoor)
	}
	if o.defenses.RightLightOn {
		right = o.night.NamesAt(domain.LocationRightDoor)
	}
	return left, right
}

// CameraOccupants - кто на выбранной камере
func (o *Office) CameraOccupants() []string {
	return o.night.NamesAt(o.camera)
}
