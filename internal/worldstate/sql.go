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
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gridforge-io/voltledger/internal/cache"
	"github.com/gridforge-io/voltledger/internal/confutil"
	"github.com/gridforge-io/voltledger/internal/msgs"
	"github.com/gridforge-io/voltledger/internal/persistence"
)

// State is the single-table representation of the world state.
type State struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt int64  `gorm:"column:updated_at"`
}

func (State) TableName() string {
	return "states"
}

type Config struct {
	ReadCache cache.Config `yaml:"readCache"`
}

var ConfigDefaults = &Config{
	ReadCache: cache.Config{
		Capacity: confutil.P(256),
	},
}

type sqlStore struct {
	p    persistence.Persistence
	conf *Config
}

// NewSQLStore maps world state transactions onto database transactions, so
// read-your-writes and all-or-nothing commit come from the DB engine.
func NewSQLStore(p persistence.Persistence, conf *Config) WorldState {
	return &sqlStore{p: p, conf: conf}
}

func (ss *sqlStore) RunTransaction(ctx context.Context, fn func(tx TransactionContext) error) error {
	return ss.p.DB().WithContext(ctx).Transaction(func(gdb *gorm.DB) error {
		// The read cache lives and dies with this one transaction. It
		// never carries state between transactions, so what a transaction
		// observes is a function of the database alone.
		tx := &sqlTx{
			gdb:   gdb,
			reads: cache.NewCache[string, []byte](&ss.conf.ReadCache, &ConfigDefaults.ReadCache),
		}
		defer func() { tx.concluded = true }()
		return fn(tx)
	})
}

func (ss *sqlStore) Close() {
	ss.p.Close()
}

type sqlTx struct {
	gdb       *gorm.DB
	reads     cache.Cache[string, []byte]
	concluded bool
}

func (tx *sqlTx) GetState(ctx context.Context, key string) ([]byte, error) {
	if tx.concluded {
		return nil, i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	if value, ok := tx.reads.Get(key); ok {
		return value, nil
	}
	var rows []*State
	err := tx.gdb.Where("key = ?", key).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgStateReadFailed, key)
	}
	var value []byte
	if len(rows) > 0 && len(rows[0].Value) > 0 {
		value = rows[0].Value
	}
	tx.reads.Set(key, value)
	return value, nil
}

func (tx *sqlTx) PutState(ctx context.Context, key string, value []byte) error {
	if tx.concluded {
		return i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	err := tx.gdb.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&State{
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now().UnixNano(),
		}).
		Error
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgStateWriteFailed, key)
	}
	if len(value) == 0 {
		value = nil
	}
	tx.reads.Set(key, value)
	return nil
}

func (tx *sqlTx) ScanRange(ctx context.Context, startKey, endKey string) (StateIterator, error) {
	if tx.concluded {
		return nil, i18n.NewError(ctx, msgs.MsgStateTxConcluded)
	}
	var rows []*State
	err := tx.gdb.
		Where("key >= ? AND key < ?", startKey, endKey).
		Order("key").
		Find(&rows).
		Error
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgStateScanFailed, startKey, endKey)
	}
	entries := make([]*KeyValue, 0, len(rows))
	for _, row := range rows {
		if len(row.Value) == 0 {
			continue
		}
		entries = append(entries, &KeyValue{Key: row.Key, Value: row.Value})
	}
	return &sliceIterator{entries: entries}, nil
}
