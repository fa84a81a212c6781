// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

type generalConfiguration struct {
	// Network is informational: mainnet, testnet or any other label the
	// operator uses. Decoding does not depend on it.
	Network string
}

type loggerConfiguration struct {
	Level string
	// stdout, stderr or a file path. Files are rotated.
	Output string
	// text or json
	Format string
}

// pkg/core/database package configs.
type databaseConfiguration struct {
	Driver string
	Dir    string
}

// pkg/api package configs.
type apiConfiguration struct {
	Enabled bool
	Address string
	// requests per second allowed per client
	RequestLimit int
}
