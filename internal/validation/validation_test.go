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

package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		value       float64
		min, max    float64
		expectedErr string
	}{
		{name: "negative", value: -1.0, min: 0, max: 1000, expectedErr: "VL010200"},
		{name: "zero is inclusive", value: 0, min: 0, max: 1000},
		{name: "upper bound is inclusive", value: 1000.0, min: 0, max: 1000},
		{name: "exceeds maximum", value: 1000.01, min: 0, max: 1000, expectedErr: "VL010201"},
		{name: "mid range", value: 4.5, min: 0, max: 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Range(ctx, "x", tc.value, tc.min, tc.max)
			if tc.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Regexp(t, tc.expectedErr, err)
			}
		})
	}
}

func TestRequiredString(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, RequiredString(ctx, "prosumerId", "P1"))
	assert.Regexp(t, "VL010100.*prosumerId", RequiredString(ctx, "prosumerId", ""))
	assert.Regexp(t, "VL010100", RequiredString(ctx, "meterId", "   "))
	assert.Regexp(t, "VL010100", RequiredString(ctx, "meterId", "\t\n"))
}

func TestDateRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		start, end  string
		expectedErr string
	}{
		{name: "valid", start: "2025-01-01", end: "2030-12-31"},
		{name: "same day", start: "2025-01-01", end: "2025-01-01"},
		{name: "start after end", start: "2025-06-01", end: "2025-01-01", expectedErr: "VL010300"},
		{name: "bad start format", start: "01/01/2025", end: "2025-12-31", expectedErr: "VL010101"},
		{name: "bad end format", start: "2025-01-01", end: "31-12-2025", expectedErr: "VL010101"},
		{name: "month 13 does not roll over", start: "2025-13-01", end: "2026-01-01", expectedErr: "VL010101"},
		{name: "day 32 does not roll over", start: "2025-01-32", end: "2026-01-01", expectedErr: "VL010101"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := DateRange(ctx, tc.start, tc.end)
			if tc.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Regexp(t, tc.expectedErr, err)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, Timestamp(ctx, "2025-01-01T00:00:00.000+0000"))
	assert.NoError(t, Timestamp(ctx, "2025-06-15T13:45:30.123+0530"))
	assert.Regexp(t, "VL010102", Timestamp(ctx, "2025-01-01"))
	assert.Regexp(t, "VL010102", Timestamp(ctx, "2025-01-01T00:00:00+0000"))    // no millis
	assert.Regexp(t, "VL010102", Timestamp(ctx, "2025-01-01 00:00:00.000+0000")) // no T
	assert.Regexp(t, "VL010102", Timestamp(ctx, "not-a-timestamp"))
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	allowed := []string{"PENDING", "PROCESSED", "FAILED"}

	assert.NoError(t, Status(ctx, "PROCESSED", allowed))
	assert.Regexp(t, "VL010103", Status(ctx, "processed", allowed)) // case-sensitive
	assert.Regexp(t, "VL010103", Status(ctx, "UNKNOWN", allowed))
	assert.Regexp(t, "VL010103", Status(ctx, "", allowed))
}
