//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Start initializes and starts the HTTP server with the given configuration
func Start(cfg Config) error {
	s := &Server{
		api: cfg.API,
		// shared across handlers, mutating requests beyond the burst get a 429
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}

	mux := http.NewServeMux()
	// bind handler methods that have access to s.api
	mux.HandleFunc("/trials", s.TrialsHandler)
	mux.HandleFunc("/trials/", s.TrialHandler)
	mux.HandleFunc("/judges", s.JudgesHandler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	log.Println("HTTP server listening on", cfg.Addr)
	return srv.ListenAndServe()
}
