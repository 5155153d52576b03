// Copyright © 2025 GridForge, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const voltPrefix = "VL01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(voltPrefix, "VoltLedger Energy Trading")
	})
	if !strings.HasPrefix(key, voltPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", voltPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (

	// Invalid input VL0101XX
	MsgParameterRequired   = ffe("VL010100", "Parameter '%s' is required and cannot be empty")
	MsgInvalidDateFormat   = ffe("VL010101", "Invalid date '%s'. Expected format: %s")
	MsgInvalidTimestamp    = ffe("VL010102", "Invalid timestamp '%s'. Expected format: %s")
	MsgInvalidStatus       = ffe("VL010103", "Invalid status '%s'. Must be one of: %s")
	MsgInvalidStatusChange = ffe("VL010104", "Agreement status cannot change from %s to %s")
	MsgInvalidConfigFile   = ffe("VL010105", "Failed to parse configuration file %s")

	// Out of range VL0102XX
	MsgValueNegative       = ffe("VL010200", "%s cannot be negative: %v")
	MsgValueExceedsMaximum = ffe("VL010201", "%s value %v exceeds maximum allowed value of %v")

	// Invalid date range VL0103XX
	MsgEndDateBeforeStart = ffe("VL010300", "End date %s must not be before start date %s")

	// Not found VL0104XX
	MsgProsumerNotFound  = ffe("VL010400", "Prosumer %s does not exist")
	MsgAgreementNotFound = ffe("VL010401", "PPA %s does not exist")

	// Already exists VL0105XX
	MsgProsumerAlreadyExists  = ffe("VL010500", "Prosumer %s already exists")
	MsgAgreementAlreadyExists = ffe("VL010501", "PPA %s already exists")

	// Serialization VL0106XX
	MsgEncodeFailed = ffe("VL010600", "Failed to serialize %s %s")
	MsgDecodeFailed = ffe("VL010601", "Failed to deserialize %s %s")

	// World state / persistence VL0107XX
	MsgPersistenceInvalidType         = ffe("VL010700", "Invalid persistence type: %s")
	MsgPersistenceMissingURI          = ffe("VL010701", "Missing database connection URI")
	MsgPersistenceInitFailed          = ffe("VL010702", "Database init failed")
	MsgPersistenceMigrationFailed     = ffe("VL010703", "Database migration failed")
	MsgPersistenceMissingMigrationDir = ffe("VL010704", "Missing database migrations directory for automatic migration")
	MsgStateReadFailed                = ffe("VL010705", "Failed to read world state key %s")
	MsgStateWriteFailed               = ffe("VL010706", "Failed to write world state key %s")
	MsgStateScanFailed                = ffe("VL010707", "Failed to scan world state range [%s,%s)")
	MsgStateTxConcluded               = ffe("VL010708", "World state transaction already concluded")
)
