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

	"github.com/gridforge-io/voltledger/internal/validation"
	"github.com/gridforge-io/voltledger/internal/worldstate"
	"github.com/gridforge-io/voltledger/pkg/types"
)

// ProcessElectricityGeneration books one reported generation measurement:
// it resolves (or creates) the agreement for the (prosumer, buyer) pair,
// issues exactly one energy credit, and adds the generated energy to the
// running totals of both the agreement and the prosumer.
//
// All validation happens before the first write, so a rejected call leaves
// no partial state. The four writes that follow are staged in one world
// state transaction; the substrate commits them atomically or not at all.
//
// The event and token ids are derived from a hash of the full input tuple,
// never from the clock, so every replica of this transaction constructs
// identical keys and identical values.
func (et *EnergyTrading) ProcessElectricityGeneration(ctx context.Context, tx worldstate.TransactionContext,
	prosumerID string, generatedKWh float64, meterID, timestamp, buyerID string) (*types.GenerationResult, error) {

	for _, p := range []struct{ name, value string }{
		{"prosumerId", prosumerID},
		{"meterId", meterID},
		{"timestamp", timestamp},
		{"buyerId", buyerID},
	} {
		if err := validation.RequiredString(ctx, p.name, p.value); err != nil {
			return nil, err
		}
	}
	if err := validation.Range(ctx, "generatedKWh", generatedKWh, minEnergy, maxEnergy); err != nil {
		return nil, err
	}
	if err := validation.Timestamp(ctx, timestamp); err != nil {
		return nil, err
	}

	l := ledger{tx: tx}
	prosumer, err := et.loadProsumer(ctx, l, prosumerID)
	if err != nil {
		return nil, err
	}

	agreementID, err := et.resolveOrCreatePPA(ctx, tx, prosumerID, buyerID)
	if err != nil {
		return nil, err
	}
	ppa, err := et.loadPPA(ctx, l, agreementID)
	if err != nil {
		return nil, err
	}

	tokensIssued := generatedKWh * tokenToKWhRatio
	invoiceValue := generatedKWh * ppa.TariffPerKWh

	eventID := prosumerID + "_" + et.idgen.Suffix(prosumerID, meterID, timestamp, buyerID, formatAmount(generatedKWh))
	tokenID := "TOKEN_" + eventID

	event := &types.GenerationEvent{
		EventID:      eventID,
		ProsumerID:   prosumerID,
		MeterID:      meterID,
		GeneratedKWh: generatedKWh,
		Timestamp:    timestamp,
		AgreementID:  agreementID,
		TokensIssued: tokensIssued,
		InvoiceValue: invoiceValue,
		Status:       types.EventStatusPending,
	}
	credit := &types.EnergyCredit{
		TokenID:      tokenID,
		ProsumerID:   prosumerID,
		EnergyAmount: generatedKWh,
		EnergyType:   "SOLAR",
		OwnerID:      prosumerID,
		TariffPerKWh: ppa.TariffPerKWh,
		Location:     prosumer.Location,
		Available:    true,
	}

	ppa.TotalEnergyGenerated += generatedKWh
	ppa.TotalTokensIssued += tokensIssued
	ppa.TotalInvoiceValue += invoiceValue
	ppa.LastUpdatedTimestamp = et.clock.Now().UTC().Format(validation.TimestampFormat)

	prosumer.TotalEnergyGenerated += generatedKWh

	eventData, err := encodeEntity(ctx, "generation event", eventID, event)
	if err != nil {
		return nil, err
	}
	if err := l.put(ctx, prefixEvent, eventID, eventData); err != nil {
		return nil, err
	}

	creditData, err := encodeEntity(ctx, "energy credit", tokenID, credit)
	if err != nil {
		return nil, err
	}
	if err := l.put(ctx, prefixCredit, tokenID, creditData); err != nil {
		return nil, err
	}

	if err := et.putPPA(ctx, l, ppa); err != nil {
		return nil, err
	}
	if err := et.putProsumer(ctx, l, prosumer); err != nil {
		return nil, err
	}

	log.L(ctx).Infof("Processed generation event %s: %s kWh against %s (tokens=%s invoice=%s)",
		eventID, formatAmount(generatedKWh), agreementID, formatAmount(tokensIssued), formatAmount(invoiceValue))

	return &types.GenerationResult{
		Status:       "SUCCESS",
		EventID:      eventID,
		TokenID:      tokenID,
		TokensIssued: tokensIssued,
		InvoiceValue: invoiceValue,
		AgreementID:  agreementID,
	}, nil
}
