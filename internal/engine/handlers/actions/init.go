package actions

import (
	"fmt"

	"nightshift-server/internal/engine/handlers"
)

// HandleInit ничего не меняет: клиент просто получает свежий снимок.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("Смена началась. Экран: %s.", ctx.Office.State()),
		MsgType: "INFO",
	}, nil
}
