package agent

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nightshift-server/internal/engine"
	"nightshift-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controlOf(t *testing.T, cmd api.ClientCommand) string {
	t.Helper()
	var p api.ControlPayload
	require.NoError(t, json.Unmarshal(cmd.Payload, &p))
	return p.Control
}

func TestDecide(t *testing.T) {
	t.Run("menu starts the night", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{State: "MENU"})
		require.Len(t, cmds, 1)
		assert.Equal(t, "START_NIGHT", cmds[0].Action)
	})

	t.Run("lights go on at open doors", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{State: "PLAYING"})
		require.Len(t, cmds, 2)
		assert.Equal(t, "LEFT_LIGHT", controlOf(t, cmds[0]))
		assert.Equal(t, "RIGHT_LIGHT", controlOf(t, cmds[1]))
	})

	t.Run("warning closes the door", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{
			State:    "PLAYING",
			Defenses: api.DefensesView{LeftLightOn: true, RightLightOn: true},
			Doors:    api.DoorsView{RightWarning: []string{"Chica"}},
		})
		require.Len(t, cmds, 1)
		assert.Equal(t, "RIGHT_DOOR", controlOf(t, cmds[0]))
	})

	t.Run("closed door switches its light off", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{
			State:    "PLAYING",
			Defenses: api.DefensesView{LeftLightOn: true, RightLightOn: true, RightDoorClosed: true},
		})
		require.Len(t, cmds, 1)
		assert.Equal(t, "RIGHT_LIGHT", controlOf(t, cmds[0]))
	})

	t.Run("steady state sends nothing", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{
			State:    "PLAYING",
			Defenses: api.DefensesView{LeftLightOn: true, RightDoorClosed: true},
		})
		assert.Empty(t, cmds)
	})

	t.Run("camera gets closed", func(t *testing.T) {
		cmds := Decide(api.ServerResponse{State: "CAMERA"})
		require.Len(t, cmds, 1)
		assert.Equal(t, "CAMERA", controlOf(t, cmds[0]))
	})

	t.Run("finished night", func(t *testing.T) {
		assert.Empty(t, Decide(api.ServerResponse{State: "WIN"}))
	})
}

func TestBot_PlaysAFullNight(t *testing.T) {
	cfg := engine.NewConfig()
	cfg.Seed = 1
	cfg.TickRate = 2 * time.Millisecond
	cfg.TimeScale = 50 // 120 игровых секунд примерно за 2.4 с

	svc, err := engine.NewService(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	bot := NewBot("autopilot-test", svc)
	svc.Start(ctx)
	defer svc.Shutdown()

	go bot.Run(ctx)

	select {
	case res, ok := <-bot.Done():
		require.True(t, ok, "bot stopped without a result")
		assert.Contains(t, []string{"WIN", "GAME_OVER"}, res.State)
		require.NotNil(t, res.Outcome)
		assert.Equal(t, "autopilot-test", res.SessionID)
	case <-ctx.Done():
		t.Fatal("night did not finish in time")
	}
}
