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

// voltledger opens the world state database, runs migrations, and seeds
// the sample ledger data. It is the operational entry point for standing
// up a new environment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/gridforge-io/voltledger/internal/confutil"
	"github.com/gridforge-io/voltledger/internal/persistence"
	"github.com/gridforge-io/voltledger/internal/trading"
	"github.com/gridforge-io/voltledger/internal/worldstate"
)

var exitProcess = os.Exit

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		exitProcess(1)
	}
}

type Config struct {
	Log         LogConfig          `yaml:"log"`
	Persistence persistence.Config `yaml:"persistence"`
	WorldState  worldstate.Config  `yaml:"worldState"`
	Trading     trading.Config     `yaml:"trading"`
}

type LogConfig struct {
	Level *string `yaml:"level"`
}

func setupConfig(ctx context.Context, args []string) (*Config, error) {
	configFile := "./voltledger.yaml"
	if len(args) >= 2 {
		configFile = args[1]
	}
	var conf Config
	if err := confutil.ReadAndParseYAMLFile(ctx, configFile, &conf); err != nil {
		return nil, err
	}
	log.SetLevel(confutil.StringNotEmpty(conf.Log.Level, "info"))
	return &conf, nil
}

func run(args []string) error {
	ctx := context.Background()

	conf, err := setupConfig(ctx, args)
	if err != nil {
		return err
	}

	p, err := persistence.NewPersistence(ctx, &conf.Persistence)
	if err != nil {
		return err
	}
	ws := worldstate.NewSQLStore(p, &conf.WorldState)
	defer ws.Close()
	engine := trading.NewEnergyTrading(&conf.Trading)

	if err := ws.RunTransaction(ctx, func(tx worldstate.TransactionContext) error {
		return engine.InitLedger(ctx, tx)
	}); err != nil {
		return err
	}

	log.L(ctx).Infof("Ledger initialized")
	return nil
}
