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

var ppaStatuses = []string{types.PPAStatusActive, types.PPAStatusExpired, types.PPAStatusTerminated}

// CreatePPA creates an agreement with an explicit id. Uniqueness of the
// (prosumerId, buyerId) pair is NOT enforced: duplicate pairs are tolerated
// and generation processing resolves them first-match in store order.
func (et *EnergyTrading) CreatePPA(ctx context.Context, tx worldstate.TransactionContext,
	agreementID, prosumerID, buyerID string, tariffPerKWh float64, startDate, endDate string) (*types.PowerPurchaseAgreement, error) {

	for _, p := range []struct{ name, value string }{
		{"agreementId", agreementID},
		{"prosumerId", prosumerID},
		{"buyerId", buyerID},
		{"startDate", startDate},
		{"endDate", endDate},
	} {
		if err := validation.RequiredString(ctx, p.name, p.value); err != nil {
			return nil, err
		}
	}
	if err := validation.Range(ctx, "tariffPerKWh", tariffPerKWh, minTariff, maxTariff); err != nil {
		return nil, err
	}
	if err := validation.DateRange(ctx, startDate, endDate); err != nil {
		return nil, err
	}

	l := ledger{tx: tx}
	existing, err := l.get(ctx, prefixAgreement, agreementID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, i18n.NewError(ctx, msgs.MsgAgreementAlreadyExists, agreementID)
	}

	now := et.clock.Now().UTC().Format(validation.TimestampFormat)
	ppa := &types.PowerPurchaseAgreement{
		AgreementID:          agreementID,
		ProsumerID:           prosumerID,
		BuyerID:              buyerID,
		TariffPerKWh:         tariffPerKWh,
		StartDate:            startDate,
		EndDate:              endDate,
		Status:               types.PPAStatusActive,
		CreatedTimestamp:     now,
		LastUpdatedTimestamp: now,
	}
	if err := et.putPPA(ctx, l, ppa); err != nil {
		return nil, err
	}

	log.L(ctx).Infof("Created PPA %s (%s -> %s, tariff=%s)", agreementID, prosumerID, buyerID, formatAmount(tariffPerKWh))
	return ppa, nil
}

// GetPPA loads an agreement by id.
func (et *EnergyTrading) GetPPA(ctx context.Context, tx worldstate.TransactionContext, agreementID string) (*types.PowerPurchaseAgreement, error) {
	return et.loadPPA(ctx, ledger{tx: tx}, agreementID)
}

// UpdatePPAStatus moves an agreement out of ACTIVE. EXPIRED and TERMINATED
// are terminal, so the only legal transitions are ACTIVE to either of them.
func (et *EnergyTrading) UpdatePPAStatus(ctx context.Context, tx worldstate.TransactionContext,
	agreementID, status string) (*types.PowerPurchaseAgreement, error) {

	if err := validation.RequiredString(ctx, "agreementId", agreementID); err != nil {
		return nil, err
	}
	if err := validation.Status(ctx, status, ppaStatuses); err != nil {
		return nil, err
	}

	l := ledger{tx: tx}
	ppa, err := et.loadPPA(ctx, l, agreementID)
	if err != nil {
		return nil, err
	}
	if ppa.Status != types.PPAStatusActive || status == types.PPAStatusActive {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidStatusChange, ppa.Status, status)
	}

	ppa.Status = status
	ppa.LastUpdatedTimestamp = et.clock.Now().UTC().Format(validation.TimestampFormat)
	if err := et.putPPA(ctx, l, ppa); err != nil {
		return nil, err
	}

	log.L(ctx).Infof("PPA %s status now %s", agreementID, status)
	return ppa, nil
}

func (et *EnergyTrading) loadPPA(ctx context.Context, l ledger, agreementID string) (*types.PowerPurchaseAgreement, error) {
	data, err := l.get(ctx, prefixAgreement, agreementID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, i18n.NewError(ctx, msgs.MsgAgreementNotFound, agreementID)
	}
	return decodeEntity[types.PowerPurchaseAgreement](ctx, "PPA", agreementID, data)
}

func (et *EnergyTrading) putPPA(ctx context.Context, l ledger, ppa *types.PowerPurchaseAgreement) error {
	data, err := encodeEntity(ctx, "PPA", ppa.AgreementID, ppa)
	if err != nil {
		return err
	}
	return l.put(ctx, prefixAgreement, ppa.AgreementID, data)
}
