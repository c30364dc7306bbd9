package engine

import (
	"nightshift-server/internal/domain"
	"nightshift-server/pkg/api"
)

// BuildStateFor создает "снимок" сессии для клиента. Логи не очищаются.
func BuildStateFor(instance *Instance) *api.ServerResponse {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	return buildState(instance)
}

// buildState вызывается под instance.mu.
func buildState(instance *Instance) *api.ServerResponse {
	office := instance.office
	night := office.Night()
	state := office.State()
	d := office.Defenses()

	resp := &api.ServerResponse{
		Type:      "UPDATE",
		SessionID: instance.ID,
		State:     state.String(),
		Defenses: api.DefensesView{
			LeftDoorClosed:  d.LeftDoorClosed,
			RightDoorClosed: d.RightDoorClosed,
			LeftLightOn:     d.LeftLightOn,
			RightLightOn:    d.RightLightOn,
			CameraOpen:      d.CameraOpen,
		},
	}

	// 1. HUD (в меню ночи нет)
	if state != domain.StateMenu {
		resp.Night = &api.NightView{
			Power:     night.Power(),
			Hour:      night.Hour(),
			Clock:     domain.FormatHour(night.Hour()),
			Elapsed:   night.Elapsed(),
			Remaining: night.Remaining(),
			DrainRate: night.DrainRate(d),
		}
	}

	// 2. Камера
	if state == domain.StateCamera {
		cam := office.Camera()
		resp.Camera = &api.CameraView{
			Location:  cam.String(),
			Label:     cam.DisplayName(),
			Occupants: office.CameraOccupants(),
		}
	}

	// 3. Свет у дверей
	resp.Doors.LeftWarning, resp.Doors.RightWarning = office.DoorWarnings()

	// 4. Итог и скример
	if state.IsFinished() {
		outcome := night.Outcome()
		resp.Outcome = &api.OutcomeView{Kind: outcome.Kind.String(), Entity: outcome.Entity}
	}
	if state == domain.StateGameOver {
		remaining, entity := office.Jumpscare()
		if remaining > 0 {
			resp.Jumpscare = &api.JumpscareView{Entity: entity, Remaining: remaining}
		}
	}

	// Копия логов, чтобы не было гонки данных
	logsCopy := make([]api.LogEntry, len(instance.Logs))
	copy(logsCopy, instance.Logs)
	resp.Logs = logsCopy

	return resp
}
