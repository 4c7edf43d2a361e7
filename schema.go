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

import "github.com/apache/arrow-go/v18/arrow"

// Timestamps are stored as milliseconds since epoch without a time zone.
// WARC-Date values are always UTC.
var timestampMillis = &arrow.TimestampType{Unit: arrow.Millisecond}

// SchemaV1_0 is the Arrow schema for WARC Format 1.0 records.
//
// The field set is drawn from the standard document:
// https://iipc.github.io/warc-specifications/specifications/warc-format/warc-1.0/
//
// Column order is significant and determines the column order of every
// record batch produced by a RecordBatchReader. The schema is created once
// and must never be mutated.
var SchemaV1_0 = arrow.NewSchema([]arrow.Field{
	// Mandatory fields.
	{Name: "id", Type: arrow.BinaryTypes.String},
	{Name: "content_length", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "date", Type: timestampMillis},
	{Name: "type", Type: arrow.BinaryTypes.String},

	// Optional fields.
	{Name: "content_type", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "concurrent_to", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "block_digest", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "payload_digest", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "ip_address", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "refers_to", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "target_uri", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "truncated", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "warc_info_id", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "filename", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "profile", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "identified_payload_type", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "segment_number", Type: arrow.PrimitiveTypes.Uint32, Nullable: true},
	{Name: "segment_origin_id", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "segment_total_length", Type: arrow.PrimitiveTypes.Uint32, Nullable: true},
	{Name: "body", Type: arrow.BinaryTypes.Binary, Nullable: true},
}, nil)
