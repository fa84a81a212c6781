// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any other package of the module in
// order to prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.txcodec/"

	// name for the config file. Does not include extension.
	configFileName = "txcodec"

	envPrefix = "TXCODEC"
)

var r *Registry

var envKeys = []string{
	"general.network",
	"logger.level",
	"logger.output",
	"logger.format",
	"database.driver",
	"database.dir",
	"api.address",
}

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	General  generalConfiguration
	Logger   loggerConfiguration
	Database databaseConfiguration
	API      apiConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flags, env and
// the txcodec config file.
//
// It uses the following precedence order. Each item takes precedence over the item below it:
//  - flag
//  - env
//  - config
//  - default
//
// A confFile given explicitly must exist. Otherwise txcodec.toml (or .json,
// .yaml) is searched in the working dir and in $HOME/.txcodec/, and a missing
// file leaves the defaults in place.
func Load(confFile string, flags *pflag.FlagSet) error {
	reg := new(Registry)
	if err := reg.init(confFile, flags); err != nil {
		return err
	}

	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

func (r *Registry) init(confFile string, flags *pflag.FlagSet) error {
	v := viper.New()
	setDefaults(v)

	// Make an attempt to find txcodec.toml/txcodec.json/txcodec.yaml in any of
	// the provided paths below
	v.SetConfigName(configFileName)
	v.AddConfigPath(searchPath1)
	v.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(confFile) > 0 {
		v.SetConfigFile(confFile)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || len(confFile) > 0 {
			return fmt.Errorf("error reading config file: %s", err)
		}
	}

	if err := defineENV(v); err != nil {
		return err
	}

	// Bind all command line parameters to their corresponding file configs
	//
	// e.g CLI argument `--logger.level="warn"` will overwrite the value from
	// `[logger] level = "info"` in the loaded config file
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("unable bind pflags, %v", err)
		}
	}

	// Uncomment on debugging only. This will list all levels of configurations
	// v.Debug()

	if err := v.Unmarshal(r); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	r.UsedConfigFile = v.ConfigFileUsed()
	return nil
}

// DefineFlags declares on fs the flags bound to config file settings.
// The settings that are needed to be passed frequently by CLI should be added here
func DefineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("logger.level", "l", "", "override logger.level settings in config file")
	_ = fs.StringP("logger.output", "o", "", "specifies the log output")
	_ = fs.StringP("database.driver", "d", "", "sets the transaction store driver")
	_ = fs.StringP("database.dir", "b", "", "sets the transaction store directory")
	_ = fs.StringP("api.address", "a", "", "address the HTTP API binds on")
}

// define a set of environment variables as bindings to config file settings
//
// e.g. config key logger.level is bound to ENV var TXCODEC_LOGGER_LEVEL
func defineENV(v *viper.Viper) error {
	for _, key := range envKeys {
		name := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, name); err != nil {
			return fmt.Errorf("defineENV %v", err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	d := defaults()
	v.SetDefault("general.network", d.General.Network)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.output", d.Logger.Output)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.dir", d.Database.Dir)
	v.SetDefault("api.enabled", d.API.Enabled)
	v.SetDefault("api.address", d.API.Address)
	v.SetDefault("api.requestlimit", d.API.RequestLimit)
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

func defaults() *Registry {
	d := new(Registry)
	d.General.Network = "mainnet"
	d.Logger.Level = "info"
	d.Logger.Output = "stdout"
	d.Logger.Format = "text"
	d.Database.Driver = "lite_v0.1.0"
	d.Database.Dir = "txstore"
	d.API.Enabled = true
	d.API.Address = "127.0.0.1:9090"
	d.API.RequestLimit = 20
	return d
}

func init() {
	// By default Registry should be filled with defaults but not nil. In that
	// way, consumers (packages) can use their default values on unit testing
	r = defaults()
}
