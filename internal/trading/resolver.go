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
	"github.com/gridforge-io/voltledger/pkg/types"
)

// resolveOrCreatePPA returns the agreement id for a (prosumer, buyer) pair,
// creating one with default terms when none exists.
//
// Resolution is a pure function of the transaction's view of world state: a
// linear scan in key order, first match wins. The engine holds no memory of
// past resolutions, so every replica executing over the same pre-state picks
// the same agreement even when duplicates exist for the pair.
//
// Known consistency gap: two transactions racing to create the agreement
// for the same pair synthesize the same id, and nothing in this logic
// prevents both from staging the write. The substrate's write-conflict
// detection, where present, is the only backstop.
func (et *EnergyTrading) resolveOrCreatePPA(ctx context.Context, tx worldstate.TransactionContext, prosumerID, buyerID string) (string, error) {
	l := ledger{tx: tx}
	it, err := l.scan(ctx, prefixAgreement)
	if err != nil {
		return "", err
	}
	defer it.Close()
	for {
		kv, err := it.Next()
		if err != nil {
			return "", err
		}
		if kv == nil {
			break
		}
		ppa, err := decodeEntity[types.PowerPurchaseAgreement](ctx, "PPA", kv.Key, kv.Value)
		if err != nil {
			log.L(ctx).Warnf("Skipping undecodable record in PPA scan: %s", err)
			continue
		}
		if ppa.ProsumerID == prosumerID && ppa.BuyerID == buyerID {
			return ppa.AgreementID, nil
		}
	}

	// No agreement for this pair: create one with default terms, through
	// the same validated path as explicit creation
	newAgreementID := prefixAgreement + "_" + prosumerID + "_" + buyerID + "_" + et.idgen.Suffix(prosumerID, buyerID)
	if _, err := et.CreatePPA(ctx, tx, newAgreementID, prosumerID, buyerID,
		et.defaultTariff, et.defaultStartDate, et.defaultEndDate); err != nil {
		return "", err
	}
	log.L(ctx).Infof("Auto-created PPA %s for pair (%s,%s)", newAgreementID, prosumerID, buyerID)
	return newAgreementID, nil
}
