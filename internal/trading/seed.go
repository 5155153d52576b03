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

package trading

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/gridforge-io/voltledger/internal/worldstate"
)

// InitLedger seeds two sample prosumers and two sample agreements.
// Idempotent: entities that already exist are skipped, never treated as a
// failure of the whole initialization.
func (et *EnergyTrading) InitLedger(ctx context.Context, tx worldstate.TransactionContext) error {
	if _, err := et.seedProsumer(ctx, tx, "PROSUMER001", "Green Solar Farm", "Mumbai, Maharashtra", 100.0, "ProsumerMSP"); err != nil {
		return err
	}
	if _, err := et.seedProsumer(ctx, tx, "PROSUMER002", "Eco Energy Solutions", "Pune, Maharashtra", 150.0, "ProsumerMSP"); err != nil {
		return err
	}
	if _, err := et.seedPPA(ctx, tx, "PPA001", "PROSUMER001", "UTILITY001", 4.5, "2025-01-01", "2030-12-31"); err != nil {
		return err
	}
	if _, err := et.seedPPA(ctx, tx, "PPA002", "PROSUMER002", "CORPORATE001", 4.2, "2025-01-01", "2030-12-31"); err != nil {
		return err
	}
	return nil
}

// seedProsumer registers the prosumer unless it already exists. Returns
// whether a new entity was created.
func (et *EnergyTrading) seedProsumer(ctx context.Context, tx worldstate.TransactionContext,
	prosumerID, name, location string, capacityKW float64, msp string) (bool, error) {

	l := ledger{tx: tx}
	existing, err := l.get(ctx, prefixProsumer, prosumerID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.L(ctx).Debugf("Seed prosumer %s already exists, skipping", prosumerID)
		return false, nil
	}
	_, err = et.RegisterProsumer(ctx, tx, prosumerID, name, location, capacityKW, msp)
	return err == nil, err
}

// seedPPA creates the agreement unless it already exists. Returns whether
// a new entity was created.
func (et *EnergyTrading) seedPPA(ctx context.Context, tx worldstate.TransactionContext,
	agreementID, prosumerID, buyerID string, tariff float64, startDate, endDate string) (bool, error) {

	l := ledger{tx: tx}
	existing, err := l.get(ctx, prefixAgreement, agreementID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.L(ctx).Debugf("Seed PPA %s already exists, skipping", agreementID)
		return false, nil
	}
	_, err = et.CreatePPA(ctx, tx, agreementID, prosumerID, buyerID, tariff, startDate, endDate)
	return err == nil, err
}
