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
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge-io/voltledger/internal/persistence/mockpersistence"
)

func newSQLMockStore(t *testing.T) (WorldState, sqlmock.Sqlmock) {
	mp, err := mockpersistence.NewSQLMockProvider()
	require.NoError(t, err)
	return NewSQLStore(mp.P, &Config{}), mp.Mock
}

func TestSQLGetStateCachedWithinTx(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	// One SELECT serves both reads of the same key in one transaction
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("PROSUMER_P1", []byte(`{"prosumerId":"P1"}`), int64(12345)))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		for i := 0; i < 2; i++ {
			v, err := tx.GetState(ctx, "PROSUMER_P1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"prosumerId":"P1"}`, string(v))
		}
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetStateAfterPutServedFromTx(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	// The write populates the transaction's read set, no SELECT follows
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO.*states").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		if err := tx.PutState(ctx, "PROSUMER_P1", []byte(`{"prosumerId":"P1"}`)); err != nil {
			return err
		}
		v, err := tx.GetState(ctx, "PROSUMER_P1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"prosumerId":"P1"}`, string(v))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTxConcludedGuard(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var leaked TransactionContext
	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		leaked = tx
		return nil
	})
	require.NoError(t, err)

	_, err = leaked.GetState(ctx, "PROSUMER_P1")
	assert.Regexp(t, "VL010708", err)
	err = leaked.PutState(ctx, "PROSUMER_P1", []byte(`{}`))
	assert.Regexp(t, "VL010708", err)
	_, err = leaked.ScanRange(ctx, "EVENT_", "EVENT_~")
	assert.Regexp(t, "VL010708", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetStatePresent(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("PROSUMER_P1", []byte(`{"prosumerId":"P1"}`), int64(12345)))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		v, err := tx.GetState(ctx, "PROSUMER_P1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"prosumerId":"P1"}`, string(v))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetStateAbsent(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value", "updated_at"}))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		v, err := tx.GetState(ctx, "PROSUMER_P1")
		require.NoError(t, err)
		assert.Nil(t, v)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGetStateFail(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		_, err := tx.GetState(ctx, "PROSUMER_P1")
		return err
	})
	assert.Regexp(t, "VL010705", err)
}

func TestSQLPutStateUpsert(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO.*states").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		return tx.PutState(ctx, "PROSUMER_P1", []byte(`{"prosumerId":"P1"}`))
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPutStateFail(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO.*states").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		return tx.PutState(ctx, "PROSUMER_P1", []byte(`{}`))
	})
	assert.Regexp(t, "VL010706", err)
}

func TestSQLScanRange(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("EVENT_P1_1", []byte(`{"eventId":"P1_1"}`), int64(1)).
			AddRow("EVENT_P1_2", []byte{}, int64(2)). // empty == absent, skipped
			AddRow("EVENT_P2_1", []byte(`{"eventId":"P2_1"}`), int64(3)))
	mock.ExpectCommit()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		it, err := tx.ScanRange(ctx, "EVENT_", "EVENT_~")
		require.NoError(t, err)
		defer it.Close()

		var keys []string
		for {
			kv, err := it.Next()
			require.NoError(t, err)
			if kv == nil {
				break
			}
			keys = append(keys, kv.Key)
		}
		assert.Equal(t, []string{"EVENT_P1_1", "EVENT_P2_1"}, keys)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLScanRangeFail(t *testing.T) {
	ctx := context.Background()
	ws, mock := newSQLMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT.*states").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()

	err := ws.RunTransaction(ctx, func(tx TransactionContext) error {
		_, err := tx.ScanRange(ctx, "EVENT_", "EVENT_~")
		return err
	})
	assert.Regexp(t, "VL010707", err)
}
