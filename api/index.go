package handler

import (
	"chore/config"
	"chore/di"
	"chore/shared/logger"
	"chore/shared/timezone"
	"net/http"
	"sync"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler serves the application from a serverless function. The dependency graph is
// built on the first request and reused afterwards.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
