/*
 * Copyright 2023 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package warcparquet

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaV1_0(t *testing.T) {
	want := []struct {
		name     string
		typeID   arrow.Type
		nullable bool
	}{
		{"id", arrow.STRING, false},
		{"content_length", arrow.UINT32, false},
		{"date", arrow.TIMESTAMP, false},
		{"type", arrow.STRING, false},
		{"content_type", arrow.STRING, true},
		{"concurrent_to", arrow.STRING, true},
		{"block_digest", arrow.STRING, true},
		{"payload_digest", arrow.STRING, true},
		{"ip_address", arrow.STRING, true},
		{"refers_to", arrow.STRING, true},
		{"target_uri", arrow.STRING, true},
		{"truncated", arrow.STRING, true},
		{"warc_info_id", arrow.STRING, true},
		{"filename", arrow.STRING, true},
		{"profile", arrow.STRING, true},
		{"identified_payload_type", arrow.STRING, true},
		{"segment_number", arrow.UINT32, true},
		{"segment_origin_id", arrow.STRING, true},
		{"segment_total_length", arrow.UINT32, true},
		{"body", arrow.BINARY, true},
	}

	require.Equal(t, len(want), SchemaV1_0.NumFields())
	for i, w := range want {
		field := SchemaV1_0.Field(i)
		assert.Equal(t, w.name, field.Name, "field %d", i)
		assert.Equal(t, w.typeID, field.Type.ID(), "field %s", w.name)
		assert.Equal(t, w.nullable, field.Nullable, "field %s", w.name)
	}
}

func TestSchemaV1_0_dateUnit(t *testing.T) {
	dateType, ok := SchemaV1_0.Field(2).Type.(*arrow.TimestampType)
	require.True(t, ok)
	assert.Equal(t, arrow.Millisecond, dateType.Unit)
}

func TestSchemaV1_0_coveredByColumnAppenders(t *testing.T) {
	// Every schema column must have an extraction entry and vice versa.
	for _, field := range SchemaV1_0.Fields() {
		assert.Contains(t, columnAppenders, field.Name)
	}
	assert.Equal(t, SchemaV1_0.NumFields(), len(columnAppenders))
}
