package actions

import (
	"fmt"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine/handlers"
	"nightshift-server/pkg/api"
)

func HandleToggle(ctx handlers.Context, payload api.ControlPayload) (handlers.Result, error) {
	control, err := domain.ParseControl(payload.Control)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("toggle %q: %w", payload.Control, err)
	}

	if err := ctx.Office.Toggle(control); err != nil {
		return handlers.Result{}, fmt.Errorf("toggle %s in %s: %w", control, ctx.Office.State(), err)
	}

	// Переключение - рутинное действие, в лог не пишем
	return handlers.EmptyResult(), nil
}
