package actions

import (
	"fmt"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine/handlers"
	"nightshift-server/pkg/api"
)

func HandleSelectCamera(ctx handlers.Context, payload api.CameraPayload) (handlers.Result, error) {
	loc, err := domain.ParseLocation(payload.Location)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("select camera %q: %w", payload.Location, err)
	}
	if err := ctx.Office.SelectCamera(loc); err != nil {
		return handlers.Result{}, fmt.Errorf("select camera: %w", err)
	}
	return handlers.EmptyResult(), nil
}

func HandleCycleCamera(ctx handlers.Context, payload api.CyclePayload) (handlers.Result, error) {
	if _, err := ctx.Office.CycleCamera(payload.Step); err != nil {
		return handlers.Result{}, fmt.Errorf("cycle camera: %w", err)
	}
	return handlers.EmptyResult(), nil
}
