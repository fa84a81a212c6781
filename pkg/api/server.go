// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/didip/tollbooth"
	cfg "github.com/dusk-network/starknet-codec/pkg/config"
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	"github.com/etherlabsio/healthcheck"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/gorilla/pat"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "api")

// Server defines the HTTP server of the API
type Server struct {
	db database.DB

	Server *http.Server
}

// NewHTTPServer return pointer to new created server object. Observed
// transactions are kept in db.
func NewHTTPServer(db database.DB) (*Server, error) {
	srv := Server{db: db}

	srv.Server = &http.Server{
		Addr:         cfg.Get().API.Address,
		Handler:      srv.InitRouting(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return &srv, nil
}

// Start will start and listen the *http.Server until a termination signal.
func (s *Server) Start() error {
	log.WithField("address", s.Server.Addr).Info("Starting API server")

	// enable graceful shutdown
	return gracehttp.Serve(s.Server)
}

// InitRouting registers the routes. gorilla/pat matches by path prefix in
// registration order, so longer paths come first.
func (s *Server) InitRouting() http.Handler {
	r := pat.New()

	r.Handle("/healthcheck", healthcheck.Handler(
		// WithTimeout allows you to set a max overall timeout.
		healthcheck.WithTimeout(5*time.Second),

		healthcheck.WithChecker(
			"database", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					_, err := s.db.Count()
					return err
				},
			),
		),
	))

	r.Post("/transactions/decode", s.decodeTransaction)
	r.Get("/transactions/{hash}", s.getTransaction)
	r.Get("/transactions", s.listTransactions)
	r.Post("/transactions", s.storeTransaction)

	limit := cfg.Get().API.RequestLimit
	if limit <= 0 {
		return r
	}

	return tollbooth.LimitHandler(tollbooth.NewLimiter(float64(limit), nil), r)
}
