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

// Read-only scan+filter queries. A record that fails to decode is skipped
// with a warning rather than failing the whole listing: one corrupt entry
// must not make the entire ledger unlistable.

// ListGenerationEvents returns every generation event reported by the
// given prosumer, in store iteration order.
func (et *EnergyTrading) ListGenerationEvents(ctx context.Context, tx worldstate.TransactionContext, prosumerID string) ([]*types.GenerationEvent, error) {
	l := ledger{tx: tx}
	it, err := l.scan(ctx, prefixEvent)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	events := []*types.GenerationEvent{}
	for {
		kv, err := it.Next()
		if err != nil {
			return nil, err
		}
		if kv == nil {
			break
		}
		event, err := decodeEntity[types.GenerationEvent](ctx, "generation event", kv.Key, kv.Value)
		if err != nil {
			log.L(ctx).Warnf("Skipping undecodable record in event scan: %s", err)
			continue
		}
		if event.ProsumerID == prosumerID {
			events = append(events, event)
		}
	}
	return events, nil
}

// ListAvailableCredits returns every energy credit still marked available.
func (et *EnergyTrading) ListAvailableCredits(ctx context.Context, tx worldstate.TransactionContext) ([]*types.EnergyCredit, error) {
	l := ledger{tx: tx}
	it, err := l.scan(ctx, prefixCredit)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	credits := []*types.EnergyCredit{}
	for {
		kv, err := it.Next()
		if err != nil {
			return nil, err
		}
		if kv == nil {
			break
		}
		credit, err := decodeEntity[types.EnergyCredit](ctx, "energy credit", kv.Key, kv.Value)
		if err != nil {
			log.L(ctx).Warnf("Skipping undecodable record in credit scan: %s", err)
			continue
		}
		if credit.Available {
			credits = append(credits, credit)
		}
	}
	return credits, nil
}
