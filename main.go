package main

import (
	"os"

	"weather-dash/config"
	"weather-dash/di"
	"weather-dash/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[MAIN] %v", err)
	}
	if err := logging.Init(cfg.Debug); err != nil {
		logging.Fatalf("[MAIN] Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	container := di.NewContainer(cfg)

	logging.Infof("[MAIN] Warming default views")
	container.ViewWarmerService.WarmDefaults()

	stop := make(chan struct{})
	if cfg.WarmInterval > 0 {
		container.ViewWarmerService.StartPeriodicJob(cfg.WarmInterval, stop)
	}

	err = container.DashboardHttpServer.Start()
	close(stop)
	if err != nil {
		logging.Errorf("[MAIN] Server failed: %v", err)
		logging.Sync()
		os.Exit(1)
	}
}
