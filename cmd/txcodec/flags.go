// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// ExpectFlag restricts decoding to one transaction kind.
	ExpectFlag = cli.StringFlag{
		Name:  "expect",
		Usage: "kind the transaction must be of (invoke, declare, deploy, deploy_account, l1_handler)",
	}
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "txcodec.toml configuration file",
	}
	// LogLevelFlag overrides logger.level.
	LogLevelFlag = cli.StringFlag{
		Name:  "logger.level",
		Usage: "log level",
	}
	// APIAddressFlag overrides api.address.
	APIAddressFlag = cli.StringFlag{
		Name:  "api.address",
		Usage: "address the HTTP API binds on",
	}
	// DatabaseDriverFlag overrides database.driver.
	DatabaseDriverFlag = cli.StringFlag{
		Name:  "database.driver",
		Usage: "transaction store driver (lite_v0.1.0, heavy_v0.1.0)",
	}
	// DatabaseDirFlag overrides database.dir.
	DatabaseDirFlag = cli.StringFlag{
		Name:  "database.dir",
		Usage: "transaction store directory",
	}
)

var (
	// DecodeFlags flags of the decode command.
	DecodeFlags = []cli.Flag{
		ExpectFlag,
	}
	// ServeFlags flags of the serve command. All but config override the
	// setting of the same name.
	ServeFlags = []cli.Flag{
		ConfigFlag,
		LogLevelFlag,
		APIAddressFlag,
		DatabaseDriverFlag,
		DatabaseDirFlag,
	}
)
