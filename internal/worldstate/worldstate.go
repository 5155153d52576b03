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
)

// KeyValue is a single entry returned from a range scan.
type KeyValue struct {
	Key   string
	Value []byte
}

// StateIterator is a finite, non-restartable sequence over a snapshot of
// the world state taken when the scan started.
type StateIterator interface {
	// Next returns the next entry, or nil when the sequence is exhausted.
	Next() (*KeyValue, error)
	Close()
}

// TransactionContext is the only surface the transaction logic sees of the
// underlying store. Writes staged with PutState are visible to subsequent
// reads in the same transaction. A stored empty value is indistinguishable
// from an absent key.
type TransactionContext interface {
	GetState(ctx context.Context, key string) ([]byte, error)
	PutState(ctx context.Context, key string, value []byte) error
	ScanRange(ctx context.Context, startKey, endKey string) (StateIterator, error)
}

// WorldState owns transaction atomicity: the writes staged by fn become
// visible to other transactions only if fn returns nil.
type WorldState interface {
	RunTransaction(ctx context.Context, fn func(tx TransactionContext) error) error
	Close()
}

type sliceIterator struct {
	entries []*KeyValue
	next    int
}

func (it *sliceIterator) Next() (*KeyValue, error) {
	if it.next >= len(it.entries) {
		return nil, nil
	}
	kv := it.entries[it.next]
	it.next++
	return kv, nil
}

func (it *sliceIterator) Close() {
	it.next = len(it.entries)
}
