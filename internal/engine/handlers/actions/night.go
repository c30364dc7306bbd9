package actions

import (
	"fmt"

	"nightshift-server/internal/engine/handlers"
)

// HandleStartNight запускает новую ночь из меню.
func HandleStartNight(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Office.StartNight(); err != nil {
		return handlers.Result{}, fmt.Errorf("start night: %w", err)
	}
	return handlers.Result{
		Msg:     "12 AM. Ночь началась.",
		MsgType: "INFO",
	}, nil
}

// HandleMenu возвращает в меню с экрана итогов.
func HandleMenu(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Office.ReturnToMenu(); err != nil {
		return handlers.Result{}, fmt.Errorf("return to menu: %w", err)
	}
	return handlers.EmptyResult(), nil
}
