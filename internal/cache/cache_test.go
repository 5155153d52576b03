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

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridforge-io/voltledger/internal/confutil"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := NewCache[string, string](&Config{}, &Config{Capacity: confutil.P(2)})

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", "agreement-1")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "agreement-1", v)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCacheEviction(t *testing.T) {
	c := NewCache[string, int](&Config{Capacity: confutil.P(2)}, &Config{Capacity: confutil.P(100)})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
