package main

import (
	"fmt"
	"log/slog"
	"os"

	"filmoteca/pkg/config"
	"filmoteca/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	baseURL := cfg.Web.APIBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	app, err := web.New(web.NewClient(baseURL))
	if err != nil {
		slog.Error("Cannot build web app", "error", err)
		os.Exit(1)
	}
	app.Addr = fmt.Sprintf(":%d", cfg.Web.Port)

	slog.Info("web client started!", "addr", app.Addr, "api", baseURL)
	if err := app.Start(); err != nil {
		slog.Error("web client stopped with error", "error", err)
		os.Exit(1)
	}
}
