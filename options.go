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
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// defaultBatchSize is the maximum number of records per batch if not
// overridden with WithBatchSize.
const defaultBatchSize = 8192

type readerOptions struct {
	schema    *arrow.Schema
	batchSize int
	mem       memory.Allocator
}

// ReaderOption configures a RecordBatchReader.
type ReaderOption interface {
	apply(*readerOptions)
}

// funcReaderOption wraps a function that modifies readerOptions into an
// implementation of the ReaderOption interface.
type funcReaderOption struct {
	f func(*readerOptions)
}

func (fo *funcReaderOption) apply(o *readerOptions) {
	fo.f(o)
}

func newFuncReaderOption(f func(*readerOptions)) *funcReaderOption {
	return &funcReaderOption{
		f: f,
	}
}

func defaultReaderOptions() readerOptions {
	return readerOptions{
		schema:    SchemaV1_0,
		batchSize: defaultBatchSize,
		mem:       memory.DefaultAllocator,
	}
}

// WithBatchSize sets the maximum number of records collected into each
// record batch.
// defaults to 8192
func WithBatchSize(batchSize int) ReaderOption {
	return newFuncReaderOption(func(o *readerOptions) {
		o.batchSize = batchSize
	})
}

// WithSchema sets the schema used for produced record batches. Every column
// name in the schema must be a WARC 1.0 column known to this package.
// defaults to SchemaV1_0
func WithSchema(schema *arrow.Schema) ReaderOption {
	return newFuncReaderOption(func(o *readerOptions) {
		o.schema = schema
	})
}

// WithAllocator sets the memory allocator used for building record batches.
// defaults to memory.DefaultAllocator
func WithAllocator(mem memory.Allocator) ReaderOption {
	return newFuncReaderOption(func(o *readerOptions) {
		o.mem = mem
	})
}
