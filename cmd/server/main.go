package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nightshift-server/internal/agent"
	"nightshift-server/internal/engine"
	"nightshift-server/internal/server"
	"nightshift-server/internal/version"
	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	os.Exit(run())
}

// run возвращает код выхода, чтобы отложенные вызовы успели отработать до os.Exit.
func run() int {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()
	var seed int64
	var autopilot bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.Float64Var(&cfg.NightLength, "night-length", cfg.NightLength, "Seconds from 12 AM to 6 AM")
	flag.DurationVar(&cfg.TickRate, "tick", cfg.TickRate, "Simulation tick period")
	flag.Float64Var(&cfg.TimeScale, "time-scale", cfg.TimeScale, "Game seconds per real second")
	flag.DurationVar(&cfg.ReconnectGrace, "reconnect-grace", cfg.ReconnectGrace, "How long a running night waits for its client to reconnect")
	flag.BoolVar(&autopilot, "autopilot", false, "Play one night with the built-in bot and exit")
	flag.Parse()

	logger.Log.Info("Starting Night Shift...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Invalid configuration")
		return 1
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// РЕЖИМ АВТОПИЛОТА
	if autopilot {
		logger.Log.Info("🤖 Mode: Autopilot")
		return runAutopilot(ctx, gameService)
	}

	port := os.Getenv("NS_PORT")
	if port == "" {
		port = "8080"
	}

	gameService.Start(ctx)

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	code := 0
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
		code = 1
	}

	logger.Log.Info("Shutting down...")
	gameService.Shutdown()
	logger.Log.Info("Done.")
	return code
}

// runAutopilot проигрывает одну ночь ботом. Код выхода 0 - бот дожил до 6 AM.
func runAutopilot(ctx context.Context, gameService *engine.GameService) int {
	bot := agent.NewBot("", gameService)
	gameService.Start(ctx)
	defer gameService.Shutdown()

	go bot.Run(ctx)

	started := time.Now()
	res, ok := <-bot.Done()
	if !ok {
		logger.Log.Warn("Autopilot interrupted")
		return 2
	}

	fields := logrus.Fields{
		"session": res.SessionID,
		"state":   res.State,
		"hour":    res.Hour,
		"power":   res.Power,
		"took":    time.Since(started).Round(time.Millisecond).String(),
	}
	if res.Outcome != nil && res.Outcome.Entity != "" {
		fields["entity"] = res.Outcome.Entity
	}
	logger.Log.WithFields(fields).Info("Night finished")

	if res.State == "WIN" {
		return 0
	}
	return 1
}
