package main

import (
	"chore/config"
	"chore/di"
	"chore/shared/logger"
	"chore/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
