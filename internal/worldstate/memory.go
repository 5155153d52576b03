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

package worldstate

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/gridforge-io/voltledger/internal/msgs"
)

// memoryStore is a map-backed world state, used for unit tests and as a
// standalone development substrate. Transactions are serialized, matching
// the at-most-one-in-flight model the transaction logic assumes.
type memoryStore struct {
	mux    sync.Mutex
	states map[string][]byte
}

func NewMemoryStore() WorldState {
	return &memoryStore{
		states: map[string][]byte{},
	}
}

func (ms *memoryStore) RunTransaction(ctx context.Context, fn func(tx TransactionContext) error) error {
	ms.mux.Lock()
	defer ms.mux.Unlock()

	tx := &memoryTx{
		store:  ms,
		txID:   uuid.New(),
		writes: map[string][]byte{},
	}
	defer func() { tx.concluded = true }()
	if err := fn(tx); err != nil {
		log.L(ctx).Debugf("Discarded world state tx %s: %s", tx.txID, err)
		return err
	}
	for key, value := range tx.writes {
		ms.states[key] = value
	}
	log.L(ctx).Debugf("Committed world state tx %s (writes=%d)", tx.txID, len(tx.writes))
	return nil
}

func (ms *memoryStore) Close() {}

type memoryTx struct {
	store     *memoryStore
	txID      uuid.UUID
	writes    map[string][]byte
	concluded bool
}

func (tx *memoryTx) GetState(ctx context.Context, key string) ([]byte, error) {
	if tx.concluded {
		return nil, i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	value, ok := tx.writes[key]
	if !ok {
		value = tx.store.states[key]
	}
	if len(value) == 0 {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (tx *memoryTx) PutState(ctx context.Context, key string, value []byte) error {
	if tx.concluded {
		return i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	tx.writes[key] = cp
	return nil
}

func (tx *memoryTx) ScanRange(ctx context.Context, startKey, endKey string) (StateIterator, error) {
	if tx.concluded {
		return nil, i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	merged := map[string][]byte{}
	for key, value := range tx.store.states {
		merged[key] = value
	}
	for key, value := range tx.writes {
		merged[key] = value
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		if key >= startKey && key < endKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	entries := make([]*KeyValue, 0, len(keys))
	for _, key := range keys {
		value := merged[key]
		if len(value) == 0 {
			continue
		}
		cp := make([]byte, len(value))
		copy(cp, value)
		entries = append(entries, &KeyValue{Key: key, Value: cp})
	}
	return &sliceIterator{entries: entries}, nil
}
