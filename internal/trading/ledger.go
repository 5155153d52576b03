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

	"github.com/gridforge-io/voltledger/internal/worldstate"
)

// World state key prefixes. These are the wire contract with every other
// client of the same ledger, and must not change.
const (
	prefixProsumer  = "PROSUMER"
	prefixAgreement = "PPA"
	prefixEvent     = "EVENT"
	prefixCredit    = "CREDIT"

	// scanSentinel sorts after every character valid in an identifier,
	// closing the half-open range of a prefix scan
	scanSentinel = "~"
)

func stateKey(prefix, id string) string {
	return prefix + "_" + id
}

// ledger is the thin accessor translating entity operations into world
// state primitives. It applies no business rules.
type ledger struct {
	tx worldstate.TransactionContext
}

func (l ledger) get(ctx context.Context, prefix, id string) ([]byte, error) {
	return l.tx.GetState(ctx, stateKey(prefix, id))
}

func (l ledger) put(ctx context.Context, prefix, id string, data []byte) error {
	return l.tx.PutState(ctx, stateKey(prefix, id), data)
}

func (l ledger) scan(ctx context.Context, prefix string) (worldstate.StateIterator, error) {
	return l.tx.ScanRange(ctx, prefix+"_", prefix+"_"+scanSentinel)
}
