// Command console - терминальный клиент ночи поверх встроенного движка.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/engine"
	"nightshift-server/pkg/api"
	"nightshift-server/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

const sessionID = "console"

func main() {
	cfg := engine.NewConfig()
	var seed int64
	var logPath string
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.Float64Var(&cfg.NightLength, "night-length", cfg.NightLength, "Seconds from 12 AM to 6 AM")
	flag.StringVar(&logPath, "log", "nightshift-console.log", "Log file (the screen belongs to the UI)")
	flag.Parse()

	if seed != 0 {
		cfg.Seed = seed
	}

	if err := run(cfg, logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg engine.Config, logPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger.InitWithOutput(logFile)

	gameService, err := engine.NewService(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(styleDefault)
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameService.Join(sessionID)
	updates := gameService.Hub.Register(sessionID)
	gameService.Start(ctx)
	defer gameService.Shutdown()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v := &view{}
	v.draw(screen)

	send := func(cmd api.ClientCommand) {
		cmd.Token = sessionID
		if err := gameService.ProcessCommand(cmd); err != nil {
			logger.Log.WithError(err).Warn("Command rejected")
		}
	}
	send(command(domain.ActionInit, nil))

	for {
		select {
		case resp, ok := <-updates:
			if !ok {
				return nil
			}
			v.apply(resp)
			v.draw(screen)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				v.draw(screen)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if cmd, ok := keyToCommand(v.last.State, ev); ok {
					send(cmd)
				}
			}
		}
	}
}
