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
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// RecordBatchReader translates a stream of WARC records into Arrow record
// batches. Each call to Read consumes up to the configured batch size of
// records from the source and assembles one batch, so memory usage is
// bounded regardless of input size.
//
// A RecordBatchReader owns its RecordSource and consumes it destructively.
// It is not safe for concurrent use.
type RecordBatchReader struct {
	source    RecordSource
	schema    *arrow.Schema
	batchSize int
	mem       memory.Allocator
	done      bool
}

// NewRecordBatchReader returns a RecordBatchReader reading from source.
//
// The returned reader takes ownership of the source; closing the reader
// closes the source. A batch size less than one is a configuration error.
func NewRecordBatchReader(source RecordSource, opts ...ReaderOption) (*RecordBatchReader, error) {
	o := defaultReaderOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	if o.batchSize < 1 {
		return nil, fmt.Errorf("warcparquet: batch size must be positive, got %d", o.batchSize)
	}
	for _, field := range o.schema.Fields() {
		if _, ok := columnAppenders[field.Name]; !ok {
			return nil, fmt.Errorf("warcparquet: unknown column '%s' in schema", field.Name)
		}
	}
	return &RecordBatchReader{
		source:    source,
		schema:    o.schema,
		batchSize: o.batchSize,
		mem:       o.mem,
	}, nil
}

// Schema returns the schema of the record batches produced by Read.
func (r *RecordBatchReader) Schema() *arrow.Schema {
	return r.schema
}

// Read returns the next record batch. The caller owns the returned record
// and must call Release on it when done.
//
// A record batch holds up to the configured batch size of records; only the
// last batch of a stream may be smaller. When the source is exhausted, Read
// returns io.EOF. An exhausted reader keeps returning io.EOF.
//
// If the source fails while pulling records, the error is returned
// immediately and records already pulled in the same call are discarded. A
// failed call does not poison the reader; the next call to Read starts
// fresh from the source's current position.
func (r *RecordBatchReader) Read() (arrow.Record, error) {
	records := make([]Record, 0, r.batchSize)
	for len(records) < r.batchSize && !r.done {
		rec, err := r.source.Next()
		if err == io.EOF {
			r.done = true
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, io.EOF
	}
	return r.buildBatch(records)
}

// buildBatch transposes the pulled records into one column array per schema
// field and assembles the arrays into a record batch.
func (r *RecordBatchReader) buildBatch(records []Record) (arrow.Record, error) {
	bld := array.NewRecordBuilder(r.mem, r.schema)
	defer bld.Release()

	for i, field := range r.schema.Fields() {
		appendValue := columnAppenders[field.Name]
		fb := bld.Field(i)
		fb.Reserve(len(records))
		for _, rec := range records {
			if err := appendValue(fb, rec); err != nil {
				return nil, err
			}
		}
	}
	return bld.NewRecord(), nil
}

// Close closes the underlying record source.
func (r *RecordBatchReader) Close() error {
	return r.source.Close()
}
