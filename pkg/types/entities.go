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

package types

// The JSON field names in this file are the wire encoding of the world
// state, shared with other clients of the same ledger. Do not rename.

// Prosumer is an energy producer/consumer site, identified by a stable id.
// Only TotalEnergyGenerated and TotalEnergyTraded change after registration.
type Prosumer struct {
	ProsumerID           string  `json:"prosumerId"`
	Name                 string  `json:"name"`
	Location             string  `json:"location"`
	SolarCapacityKW      float64 `json:"solarCapacityKW"`
	OrganizationMSP      string  `json:"organizationMSP"`
	IsActive             bool    `json:"isActive"`
	TotalEnergyGenerated float64 `json:"totalEnergyGenerated"`
	TotalEnergyTraded    float64 `json:"totalEnergyTraded"`
}

// Agreement statuses. ACTIVE is the only non-terminal state.
const (
	PPAStatusActive     = "ACTIVE"
	PPAStatusExpired    = "EXPIRED"
	PPAStatusTerminated = "TERMINATED"
)

// PowerPurchaseAgreement fixes the tariff between a prosumer and a buyer,
// and accumulates running totals over its lifetime.
type PowerPurchaseAgreement struct {
	AgreementID          string  `json:"agreementId"`
	ProsumerID           string  `json:"prosumerId"`
	BuyerID              string  `json:"buyerId"`
	TariffPerKWh         float64 `json:"tariffPerKWh"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Status               string  `json:"status"`
	TotalEnergyGenerated float64 `json:"totalEnergyGenerated"`
	TotalTokensIssued    float64 `json:"totalTokensIssued"`
	TotalInvoiceValue    float64 `json:"totalInvoiceValue"`
	CreatedTimestamp     string  `json:"createdTimestamp"`
	LastUpdatedTimestamp string  `json:"lastUpdatedTimestamp"`
}

// Generation event statuses.
const (
	EventStatusPending   = "PENDING"
	EventStatusProcessed = "PROCESSED"
	EventStatusFailed    = "FAILED"
)

// GenerationEvent is a single reported measurement of energy produced,
// booked against a PPA. Immutable once written, except status.
type GenerationEvent struct {
	EventID      string  `json:"eventId"`
	ProsumerID   string  `json:"prosumerId"`
	MeterID      string  `json:"meterId"`
	GeneratedKWh float64 `json:"generatedKWh"`
	Timestamp    string  `json:"timestamp"`
	AgreementID  string  `json:"agreementId"`
	TokensIssued float64 `json:"tokensIssued"`
	InvoiceValue float64 `json:"invoiceValue"`
	Status       string  `json:"status"`
}

// EnergyCredit is the tradable token minted once per generation event.
// TariffPerKWh is a snapshot of the agreement tariff at issuance time.
type EnergyCredit struct {
	TokenID      string  `json:"tokenId"`
	ProsumerID   string  `json:"prosumerId"`
	EnergyAmount float64 `json:"energyAmount"`
	EnergyType   string  `json:"energyType"`
	OwnerID      string  `json:"ownerId"`
	TariffPerKWh float64 `json:"tariffPerKWh"`
	Location     string  `json:"location"`
	Available    bool    `json:"available"`
}

// GenerationResult is the summary returned from processing one generation
// report.
type GenerationResult struct {
	Status       string  `json:"status"`
	EventID      string  `json:"eventId"`
	TokenID      string  `json:"tokenId"`
	TokensIssued float64 `json:"tokensIssued"`
	InvoiceValue float64 `json:"invoiceValue"`
	AgreementID  string  `json:"agreementId"`
}
