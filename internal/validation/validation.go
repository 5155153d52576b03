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

// Package validation holds the pure input checks applied before any world
// state is touched. None of these functions read or write state.
package validation

import (
	"context"
	"strings"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/gridforge-io/voltledger/internal/msgs"
)

const (
	// DateFormat is the calendar date layout for agreement terms
	DateFormat = "2006-01-02"
	// TimestampFormat is the meter reading timestamp layout, with
	// milliseconds and a numeric zone offset
	TimestampFormat = "2006-01-02T15:04:05.000-0700"
)

// Range checks an inclusive numeric range. The two failure messages are
// distinct so callers can tell "negative" from "exceeds maximum".
func Range(ctx context.Context, name string, value, min, max float64) error {
	if value < min {
		return i18n.NewError(ctx, msgs.MsgValueNegative, name, value)
	}
	if value > max {
		return i18n.NewError(ctx, msgs.MsgValueExceedsMaximum, name, value, max)
	}
	return nil
}

// RequiredString rejects empty and whitespace-only values.
func RequiredString(ctx context.Context, name, value string) error {
	if strings.TrimSpace(value) == "" {
		return i18n.NewError(ctx, msgs.MsgParameterRequired, name)
	}
	return nil
}

// DateRange parses both dates strictly (no lenient rollover: month 13
// fails rather than wrapping) and rejects ranges where start > end.
func DateRange(ctx context.Context, startDate, endDate string) error {
	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgInvalidDateFormat, startDate, DateFormat)
	}
	end, err := time.Parse(DateFormat, endDate)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgInvalidDateFormat, endDate, DateFormat)
	}
	if start.After(end) {
		return i18n.NewError(ctx, msgs.MsgEndDateBeforeStart, endDate, startDate)
	}
	return nil
}

// Timestamp checks the strict meter timestamp format.
func Timestamp(ctx context.Context, value string) error {
	if _, err := time.Parse(TimestampFormat, value); err != nil {
		return i18n.NewError(ctx, msgs.MsgInvalidTimestamp, value, TimestampFormat)
	}
	return nil
}

// Status checks membership of an allowed enum set, case-sensitively.
func Status(ctx context.Context, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return i18n.NewError(ctx, msgs.MsgInvalidStatus, value, strings.Join(allowed, ", "))
}
