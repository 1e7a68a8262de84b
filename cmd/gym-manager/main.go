// Package main содержит точку входа для HTTP API академии.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/gym-manager/internal/app/gymmanager"
	"github.com/magabrotheeeer/gym-manager/internal/config"
)

// @title Gym Manager API
// @version 1.0
// @description Сервис управления академией: студенты, тарифы, абонементы, чекины и вопросы тренеру.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting gym-manager", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := gymmanager.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize gym-manager app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("gym-manager app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("gym-manager app stopped gracefully")
}
