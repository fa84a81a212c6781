// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	assert "github.com/stretchr/testify/require"
)

const sampleConfig = `
[general]
network = "testnet"

[logger]
level = "debug"
output = "txcodec.log"
format = "json"

[database]
driver = "heavy_v0.1.0"
dir = "/tmp/txstore"

[api]
address = "0.0.0.0:9999"
requestlimit = 5
`

func writeConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "txcodec.toml")
	assert.NoError(t, ioutil.WriteFile(path, []byte(sampleConfig), 0o600))
	return path
}

func restore(t *testing.T) {
	saved := Get()
	t.Cleanup(func() { Mock(&saved) })
}

func TestDefaults(t *testing.T) {
	assert := assert.New(t)

	r := Get()
	assert.Equal("lite_v0.1.0", r.Database.Driver)
	assert.Equal("info", r.Logger.Level)
	assert.Equal("127.0.0.1:9090", r.API.Address)
	assert.True(r.API.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	assert := assert.New(t)
	restore(t)

	path := writeConfig(t)
	assert.NoError(Load(path, nil))

	r := Get()
	assert.Equal(path, r.UsedConfigFile)
	assert.Equal("testnet", r.General.Network)
	assert.Equal("debug", r.Logger.Level)
	assert.Equal("json", r.Logger.Format)
	assert.Equal("heavy_v0.1.0", r.Database.Driver)
	assert.Equal("/tmp/txstore", r.Database.Dir)
	assert.Equal("0.0.0.0:9999", r.API.Address)
	assert.Equal(5, r.API.RequestLimit)

	// not in the file
	assert.True(r.API.Enabled)
}

func TestMissingConfigFile(t *testing.T) {
	assert := assert.New(t)
	restore(t)

	assert.Error(Load(filepath.Join(t.TempDir(), "absent.toml"), nil))
}

func TestLoadWithoutConfigFile(t *testing.T) {
	assert := assert.New(t)
	restore(t)

	wd, err := os.Getwd()
	assert.NoError(err)
	assert.NoError(os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	assert.NoError(Load("", nil))
	assert.Equal("lite_v0.1.0", Get().Database.Driver)
}

func TestPrecedence(t *testing.T) {
	assert := assert.New(t)
	restore(t)

	path := writeConfig(t)

	assert.NoError(os.Setenv("TXCODEC_LOGGER_LEVEL", "warn"))
	assert.NoError(os.Setenv("TXCODEC_API_ADDRESS", "127.0.0.1:1"))
	defer func() {
		_ = os.Unsetenv("TXCODEC_LOGGER_LEVEL")
		_ = os.Unsetenv("TXCODEC_API_ADDRESS")
	}()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	assert.NoError(fs.Parse([]string{"--api.address=127.0.0.1:2"}))

	assert.NoError(Load(path, fs))

	r := Get()
	// env over file
	assert.Equal("warn", r.Logger.Level)
	// flag over env
	assert.Equal("127.0.0.1:2", r.API.Address)
	// file over default
	assert.Equal("heavy_v0.1.0", r.Database.Driver)
}

// Flags left unset do not hide file or default values.
func TestUnsetFlags(t *testing.T) {
	assert := assert.New(t)
	restore(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	assert.NoError(fs.Parse(nil))

	assert.NoError(Load(writeConfig(t), fs))
	assert.Equal("debug", Get().Logger.Level)
	assert.Equal("/tmp/txstore", Get().Database.Dir)
}
