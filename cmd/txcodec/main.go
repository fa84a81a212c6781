// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Version of the txcodec binary.
const Version = "0.1.0"

var log = logrus.WithFields(logrus.Fields{
	"app":    "txcodec",
	"prefix": "main",
})

func newApp() *cli.App {
	app := cli.NewApp()

	app.Copyright = "Copyright (c) 2020 DUSK"
	app.Name = "txcodec"
	app.Usage = "Decode, normalize and store Starknet transactions"
	app.Author = "DUSK 2020"
	app.Version = semver.MustParse(Version).String()
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "decodes a transaction and prints its normalized encoding",
			ArgsUsage: "[FILE|-]",
			Flags:     DecodeFlags,
			Action:    decodeAction,
		},
		{
			Name:   "variants",
			Usage:  "lists the supported transaction variants",
			Action: variantsAction,
		},
		{
			Name:   "serve",
			Usage:  "starts the HTTP API",
			Flags:  ServeFlags,
			Action: serveAction,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
