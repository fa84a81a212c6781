// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/dusk-network/starknet-codec/pkg/api"
	cfg "github.com/dusk-network/starknet-codec/pkg/config"
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	_ "github.com/dusk-network/starknet-codec/pkg/core/database/heavy"
	_ "github.com/dusk-network/starknet-codec/pkg/core/database/lite"
	"github.com/dusk-network/starknet-codec/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/urfave/cli"
)

// configFlags copies the serve flags set on the command line into a pflag
// set bound to the config registry.
func configFlags(ctx *cli.Context) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("txcodec", pflag.ContinueOnError)
	cfg.DefineFlags(fs)

	for _, f := range ServeFlags {
		name := f.GetName()
		if name == ConfigFlag.Name || !ctx.IsSet(name) {
			continue
		}

		if err := fs.Set(name, ctx.String(name)); err != nil {
			return nil, err
		}
	}

	return fs, nil
}

// serveAction loads the configuration, opens the transaction store and runs
// the HTTP API until terminated.
func serveAction(ctx *cli.Context) error {
	fs, err := configFlags(ctx)
	if err != nil {
		return err
	}

	// Loading all configurations. Fail-fast if critical error occurs
	if err := cfg.Load(ctx.String(ConfigFlag.Name), fs); err != nil {
		return errors.Wrap(err, "could not load config")
	}

	r := cfg.Get()

	// Any subsystem should be initialized after config and logger loading
	closer, err := logging.InitLog(r.Logger.Level, r.Logger.Format, r.Logger.Output)
	if err != nil {
		return errors.Wrap(err, "could not set up logging")
	}

	defer func() {
		_ = closer.Close()
	}()

	log.WithField("file", r.UsedConfigFile).Info("Loaded config file")
	log.WithField("network", r.General.Network).Info("Selected network")

	db, err := database.Open(r.Database.Driver, r.Database.Dir, false)
	if err != nil {
		return errors.Wrapf(err, "could not open %s store", r.Database.Driver)
	}

	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("could not close store")
		}
	}()

	if !r.API.Enabled {
		log.Warn("API disabled, nothing to serve")
		return nil
	}

	srv, err := api.NewHTTPServer(db)
	if err != nil {
		return err
	}

	err = srv.Start()
	log.WithField("prefix", "main").Info("Terminated")
	return err
}
