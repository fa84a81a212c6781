// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package lite

import (
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	log "github.com/sirupsen/logrus"
)

// DriverName is the unique identifier for the lite driver.
var DriverName = "lite_v0.1.0"

type driver struct{}

// Open opens the buntdb file under path. An empty path opens an in-memory
// store.
func (d driver) Open(path string, readonly bool) (database.DB, error) {
	return NewDatabase(path, readonly)
}

func (d driver) Name() string {
	return DriverName
}

func init() {
	// Register the lite driver.
	if err := database.Register(driver{}); err != nil {
		log.Panic(err)
	}
}
