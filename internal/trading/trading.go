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

// Package trading implements the transaction logic of the energy trading
// ledger: prosumer registration, power purchase agreements, generation
// processing with credit issuance, and the read-only query surface.
//
// Every operation runs inside a single world state transaction supplied by
// the caller. Determinism matters: given the same inputs and the same
// pre-transaction state, an operation produces the same derived identifiers
// and the same computed totals on every replica.
package trading

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/gridforge-io/voltledger/internal/confutil"
)

const (
	minTariff     = 0.0
	maxTariff     = 1000.0
	minEnergy     = 0.0
	maxEnergy     = 1000000.0
	maxCapacityKW = 100000.0

	// 1 token = 1 kWh
	tokenToKWhRatio = 1.0
)

type Config struct {
	DefaultTariff    *float64 `yaml:"defaultTariff"`
	DefaultStartDate *string  `yaml:"defaultStartDate"`
	DefaultEndDate   *string  `yaml:"defaultEndDate"`
}

// Defaults for agreements auto-created during generation processing, when
// no agreement exists yet for a (prosumer, buyer) pair.
var ConfigDefaults = &Config{
	DefaultTariff:    confutil.P(4.5),
	DefaultStartDate: confutil.P("2025-01-01"),
	DefaultEndDate:   confutil.P("2030-12-31"),
}

// Clock supplies the wall-clock metadata written to agreement timestamps.
// It is never used to derive identifiers or amounts, so replicas with
// different clocks still converge on the consensus-critical output.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

// IDGenerator derives the unique suffix of new identifiers from
// transaction inputs, so replayed transactions regenerate the same ids.
type IDGenerator interface {
	Suffix(parts ...string) string
}

type hashIDGenerator struct{}

func (hashIDGenerator) Suffix(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:8])
}

// EnergyTrading is the transaction engine. It holds configuration only, no
// state: everything an operation reads or remembers lives in the world
// state transaction it runs in, so every replica of a transaction over the
// same pre-state produces the same output.
type EnergyTrading struct {
	defaultTariff    float64
	defaultStartDate string
	defaultEndDate   string
	clock            Clock
	idgen            IDGenerator
}

func NewEnergyTrading(conf *Config) *EnergyTrading {
	return &EnergyTrading{
		defaultTariff:    confutil.Float64(conf.DefaultTariff, *ConfigDefaults.DefaultTariff),
		defaultStartDate: confutil.StringNotEmpty(conf.DefaultStartDate, *ConfigDefaults.DefaultStartDate),
		defaultEndDate:   confutil.StringNotEmpty(conf.DefaultEndDate, *ConfigDefaults.DefaultEndDate),
		clock:            wallClock{},
		idgen:            hashIDGenerator{},
	}
}

// WithClock replaces the wall clock, for deterministic replayable tests.
func (et *EnergyTrading) WithClock(c Clock) *EnergyTrading {
	et.clock = c
	return et
}

// WithIDGenerator replaces the identifier suffix strategy.
func (et *EnergyTrading) WithIDGenerator(g IDGenerator) *EnergyTrading {
	et.idgen = g
	return et
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
