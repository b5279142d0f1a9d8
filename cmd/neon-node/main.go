// Copyright 2021 Alvalor S.A.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/neon-ledger/api/rest"
	"github.com/optakt/neon-ledger/models/ledger"
	"github.com/optakt/neon-ledger/service/broadcast"
	"github.com/optakt/neon-ledger/service/metrics"
	"github.com/optakt/neon-ledger/service/node"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAddress string
		flagLevel   string
		flagMetrics string
		flagPeers   []string
		flagPort    uint16
	)

	pflag.StringVarP(&flagAddress, "address", "a", "0.0.0.0", "host address to serve the ledger API on")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", ":9090", "address to serve prometheus metrics on (empty to disable)")
	pflag.StringSliceVar(&flagPeers, "peers", nil, "comma-separated list of initial peer addresses")
	pflag.Uint16VarP(&flagPort, "port", "p", 80, "port to serve the ledger API on")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// The node holds the only chain of the process; it starts from a fresh
	// genesis block every time, as nothing is persisted.
	var coordinator ledger.Coordinator = node.New(log,
		node.WithBroadcaster(broadcast.Nop{}),
		node.WithPeers(flagPeers...),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	var monitor *metrics.Server
	if flagMetrics != "" {
		coordinator = metrics.NewNode(coordinator, registry)
		monitor = metrics.NewServer(log, flagMetrics, registry)
	}

	ctrl := rest.NewController(coordinator)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	rest.Register(server, ctrl)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	listen := net.JoinHostPort(flagAddress, strconv.FormatUint(uint64(flagPort), 10))
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("address", listen).Msg("Neon Node starting")
		err := server.Start(listen)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Neon Node failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Neon Node stopped")
	}()
	if monitor != nil {
		go func() {
			err := monitor.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Neon Node stopping")
	case <-done:
		log.Info().Msg("Neon Node done")
	case <-failed:
		log.Warn().Msg("Neon Node aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	var errs *multierror.Error
	err = server.Shutdown(ctx)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("could not shut down ledger API: %w", err))
	}
	if monitor != nil {
		err = monitor.Stop(ctx)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs.ErrorOrNil() != nil {
		log.Error().Err(errs).Msg("could not shut down Neon Node")
		return failure
	}

	return success
}
