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
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/gridforge-io/voltledger/internal/msgs"
)

// Canonical JSON codec for the world state entities. Round-trip property:
// decode(encode(e)) == e for any valid entity, including float totals.

func encodeEntity[T any](ctx context.Context, kind, id string, e *T) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgEncodeFailed, kind, id)
	}
	return data, nil
}

func decodeEntity[T any](ctx context.Context, kind, id string, data []byte) (*T, error) {
	var e T
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgDecodeFailed, kind, id)
	}
	return &e, nil
}
