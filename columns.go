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
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/nlnwa/gowarc"
)

// appendFunc appends one record's value for a single column to the column's
// array builder.
type appendFunc func(b array.Builder, rec Record) error

// columnAppenders maps column name to the function which extracts and
// converts the column's value from a record. Adding a column is one entry
// here plus a field in the schema.
var columnAppenders = map[string]appendFunc{
	"id":                      mandatoryString(gowarc.WarcRecordID),
	"content_length":          mandatoryUint32(gowarc.ContentLength),
	"date":                    mandatoryTimestamp(gowarc.WarcDate),
	"type":                    mandatoryString(gowarc.WarcType),
	"content_type":            optionalString(gowarc.ContentType),
	"concurrent_to":           optionalString(gowarc.WarcConcurrentTo),
	"block_digest":            optionalString(gowarc.WarcBlockDigest),
	"payload_digest":          optionalString(gowarc.WarcPayloadDigest),
	"ip_address":              optionalString(gowarc.WarcIPAddress),
	"refers_to":               optionalString(gowarc.WarcRefersTo),
	"target_uri":              optionalString(gowarc.WarcTargetURI),
	"truncated":               optionalString(gowarc.WarcTruncated),
	"warc_info_id":            optionalString(gowarc.WarcWarcinfoID),
	"filename":                optionalString(gowarc.WarcFilename),
	"profile":                 optionalString(gowarc.WarcProfile),
	"identified_payload_type": optionalString(gowarc.WarcIdentifiedPayloadType),
	"segment_number":          optionalUint32(gowarc.WarcSegmentNumber),
	"segment_origin_id":       optionalString(gowarc.WarcSegmentOriginID),
	"segment_total_length":    optionalUint32(gowarc.WarcSegmentTotalLength),
	"body":                    appendBody,
}

// recordID returns the record's id for use in error messages. Might be
// empty if the record lacks the WARC-Record-ID field.
func recordID(rec Record) string {
	id, _ := rec.Header(gowarc.WarcRecordID)
	return id
}

func mandatoryString(name string) appendFunc {
	return func(b array.Builder, rec Record) error {
		v, ok := rec.Header(name)
		if !ok {
			return newMissingFieldError(recordID(rec), name)
		}
		b.(*array.StringBuilder).Append(v)
		return nil
	}
}

func optionalString(name string) appendFunc {
	return func(b array.Builder, rec Record) error {
		sb := b.(*array.StringBuilder)
		if v, ok := rec.Header(name); ok {
			sb.Append(v)
		} else {
			sb.AppendNull()
		}
		return nil
	}
}

func mandatoryUint32(name string) appendFunc {
	return func(b array.Builder, rec Record) error {
		v, ok := rec.Header(name)
		if !ok {
			return newMissingFieldError(recordID(rec), name)
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return newMalformedFieldError(recordID(rec), name, v)
		}
		b.(*array.Uint32Builder).Append(uint32(n))
		return nil
	}
}

// optionalUint32 appends null for an absent field, but a present value
// which does not parse as an unsigned 32 bit integer is an error.
func optionalUint32(name string) appendFunc {
	return func(b array.Builder, rec Record) error {
		ub := b.(*array.Uint32Builder)
		v, ok := rec.Header(name)
		if !ok {
			ub.AppendNull()
			return nil
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return newMalformedFieldError(recordID(rec), name, v)
		}
		ub.Append(uint32(n))
		return nil
	}
}

// mandatoryTimestamp converts a WARC-Date value to milliseconds since
// epoch. WARC 1.0 mandates the form YYYY-MM-DDTHH:MM:SSZ which is a subset
// of RFC 3339.
func mandatoryTimestamp(name string) appendFunc {
	return func(b array.Builder, rec Record) error {
		v, ok := rec.Header(name)
		if !ok {
			return newMissingFieldError(recordID(rec), name)
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return newMalformedFieldError(recordID(rec), name, v)
		}
		b.(*array.TimestampBuilder).Append(arrow.Timestamp(t.UTC().UnixMilli()))
		return nil
	}
}

func appendBody(b array.Builder, rec Record) error {
	body := rec.Body()
	if body == nil {
		body = []byte{}
	}
	b.(*array.BinaryBuilder).Append(body)
	return nil
}
