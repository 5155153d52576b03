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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/gridforge-io/voltledger/internal/msgs"
	"github.com/gridforge-io/voltledger/internal/validation"
	"github.com/gridforge-io/voltledger/internal/worldstate"
	"github.com/gridforge-io/voltledger/pkg/types"
)

// RegisterProsumer creates a new prosumer with zeroed running totals.
// Fails before any write if inputs are invalid or the id is taken.
func (et *EnergyTrading) RegisterProsumer(ctx context.Context, tx worldstate.TransactionContext,
	prosumerID, name, location string, solarCapacityKW float64, organizationMSP string) (*types.Prosumer, error) {

	for _, p := range []struct{ name, value string }{
		{"prosumerId", prosumerID},
		{"name", name},
		{"location", location},
		{"organizationMSP", organizationMSP},
	} {
		if err := validation.RequiredString(ctx, p.name, p.value); err != nil {
			return nil, err
		}
	}
	if err := validation.Range(ctx, "solarCapacityKW", solarCapacityKW, minEnergy, maxCapacityKW); err != nil {
		return nil, err
	}

	l := ledger{tx: tx}
	existing, err := l.get(ctx, prefixProsumer, prosumerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, i18n.NewError(ctx, msgs.MsgProsumerAlreadyExists, prosumerID)
	}

	prosumer := &types.Prosumer{
		ProsumerID:      prosumerID,
		Name:            name,
		Location:        location,
		SolarCapacityKW: solarCapacityKW,
		OrganizationMSP: organizationMSP,
		IsActive:        true,
	}
	if err := et.putProsumer(ctx, l, prosumer); err != nil {
		return nil, err
	}

	log.L(ctx).Infof("Registered prosumer %s (capacity=%skW org=%s)", prosumerID, formatAmount(solarCapacityKW), organizationMSP)
	return prosumer, nil
}

// GetProsumer loads a prosumer by id.
func (et *EnergyTrading) GetProsumer(ctx context.Context, tx worldstate.TransactionContext, prosumerID string) (*types.Prosumer, error) {
	return et.loadProsumer(ctx, ledger{tx: tx}, prosumerID)
}

func (et *EnergyTrading) loadProsumer(ctx context.Context, l ledger, prosumerID string) (*types.Prosumer, error) {
	data, err := l.get(ctx, prefixProsumer, prosumerID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, i18n.NewError(ctx, msgs.MsgProsumerNotFound, prosumerID)
	}
	return decodeEntity[types.Prosumer](ctx, "prosumer", prosumerID, data)
}

func (et *EnergyTrading) putProsumer(ctx context.Context, l ledger, prosumer *types.Prosumer) error {
	data, err := encodeEntity(ctx, "prosumer", prosumer.ProsumerID, prosumer)
	if err != nil {
		return err
	}
	return l.put(ctx, prefixProsumer, prosumer.ProsumerID, data)
}
