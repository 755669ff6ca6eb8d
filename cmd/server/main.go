// Package main - entry point for the Chicago 3D Printworks quote server
package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/chuymedina96/chicago-3d-printworks/api"
	"github.com/chuymedina96/chicago-3d-printworks/core/materials"
	"github.com/chuymedina96/chicago-3d-printworks/internal/config"
	"github.com/chuymedina96/chicago-3d-printworks/internal/logging"
	"github.com/chuymedina96/chicago-3d-printworks/internal/store"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("load configuration", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	registry := materials.Default()
	if cfg.Materials.CatalogPath != "" {
		loaded, err := materials.LoadFile(cfg.Materials.CatalogPath)
		if err != nil {
			logging.Fatal("load material catalog", zap.Error(err))
		}
		registry = loaded
	}

	st, err := store.Open(cfg.Server.WorkspaceDB)
	if err != nil {
		logging.Fatal("open workspace database", zap.Error(err))
	}
	defer st.Close()

	handler := api.NewHandler(registry, cfg.Pricing, cfg.Ladder)
	apiServer := api.NewServer(version, handler, st)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("quote server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version),
		zap.Int("materials", len(registry.All())),
	)

	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
