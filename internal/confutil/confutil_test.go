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

package confutil

import (
	"context"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	assert.Equal(t, 12345, Int(nil, 12345))
	assert.Equal(t, 23456, Int(P(23456), 12345))
	assert.Equal(t, 10, IntMin(P(0), 1, 10))
	assert.Equal(t, 5, IntMin(P(5), 1, 10))
}

func TestInt64(t *testing.T) {
	assert.Equal(t, int64(12345), Int64(nil, 12345))
	assert.Equal(t, int64(23456), Int64(P(int64(23456)), 12345))
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 4.5, Float64(nil, 4.5))
	assert.Equal(t, 1.25, Float64(P(1.25), 4.5))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(nil, false))
	assert.True(t, Bool(P(true), false))
}

func TestStringNotEmpty(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(nil, "def"))
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "set", StringNotEmpty(P("set"), "def"))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 50*time.Second, Duration(nil, 50*time.Second))
	assert.Equal(t, 50*time.Second, Duration(P("wrong"), 50*time.Second))
	assert.Equal(t, 100*time.Millisecond, Duration(P("100ms"), 50*time.Second))
}

func TestReadAndParseYAMLFile(t *testing.T) {
	ctx := context.Background()

	type testConfigType struct {
		Foo *string `yaml:"foo"`
		Bar *int    `yaml:"bar"`
		Baz *int    `yaml:"baz"`
	}

	confFile := path.Join(t.TempDir(), "conf.yaml")
	err := os.WriteFile(confFile, []byte(`
foo: value1
bar: 123
`), 0644)
	require.NoError(t, err)

	var conf testConfigType
	err = ReadAndParseYAMLFile(ctx, confFile, &conf)
	require.NoError(t, err)
	assert.Equal(t, "value1", *conf.Foo)
	assert.Equal(t, 123, *conf.Bar)
	assert.Nil(t, conf.Baz)
}

func TestReadAndParseYAMLFileMissing(t *testing.T) {
	var conf map[string]interface{}
	err := ReadAndParseYAMLFile(context.Background(), path.Join(t.TempDir(), "missing.yaml"), &conf)
	assert.Regexp(t, "VL010105", err)
}

func TestReadAndParseYAMLFileBadSyntax(t *testing.T) {
	confFile := path.Join(t.TempDir(), "conf.yaml")
	err := os.WriteFile(confFile, []byte(`{!!!!`), 0644)
	require.NoError(t, err)

	var conf map[string]interface{}
	err = ReadAndParseYAMLFile(context.Background(), confFile, &conf)
	assert.Regexp(t, "VL010105", err)
}
