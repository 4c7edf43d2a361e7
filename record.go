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
	"bufio"
	"io"

	"github.com/nlnwa/gowarc"
)

// Record is the narrow view of a WARC record needed for translation to
// column values.
type Record interface {
	// Header returns the value of the named WARC header field and whether
	// the field is present on the record.
	Header(name string) (string, bool)
	// Body returns the record's content block. The result may be empty for
	// records without a body.
	Body() []byte
}

// RecordSource is a forward-only cursor over WARC records.
//
// Next returns the next record or an error describing why a record could
// not be parsed. At end of input, Next returns io.EOF. Once io.EOF has been
// returned all subsequent calls must also return io.EOF.
type RecordSource interface {
	Next() (Record, error)
	io.Closer
}

// bufferedRecord holds a record's headers together with its fully read
// content block, detached from the source's cursor.
type bufferedRecord struct {
	header *gowarc.WarcFields
	body   []byte
}

func (r *bufferedRecord) Header(name string) (string, bool) {
	if !r.header.Has(name) {
		return "", false
	}
	return r.header.Get(name), true
}

func (r *bufferedRecord) Body() []byte {
	return r.body
}

// bufferRecord reads the record's content block into memory. The underlying
// reader is only valid until the next record is read, so this must happen
// before another record is pulled from the source.
func bufferRecord(wr gowarc.WarcRecord) (Record, error) {
	defer func() { _ = wr.Close() }()

	rb, err := wr.Block().RawBytes()
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(rb)
	if err != nil {
		return nil, err
	}
	return &bufferedRecord{header: wr.WarcHeader(), body: body}, nil
}

type fileSource struct {
	reader *gowarc.WarcFileReader
	done   bool
}

// NewFileSource returns a RecordSource reading records from the WARC file
// at filename. Gzip compressed records are decompressed transparently.
func NewFileSource(filename string, opts ...gowarc.WarcRecordOption) (RecordSource, error) {
	reader, err := gowarc.NewWarcFileReader(filename, 0, opts...)
	if err != nil {
		return nil, err
	}
	return &fileSource{reader: reader}, nil
}

func (s *fileSource) Next() (Record, error) {
	if s.done {
		return nil, io.EOF
	}
	wr, _, _, err := s.reader.Next()
	if err == io.EOF {
		s.done = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return bufferRecord(wr)
}

func (s *fileSource) Close() error {
	return s.reader.Close()
}

type streamSource struct {
	unmarshaler gowarc.Unmarshaler
	reader      *bufio.Reader
	closer      io.Closer
	done        bool
}

// NewStreamSource returns a RecordSource reading records from r, which
// might be os.Stdin or any other stream of WARC formatted data.
func NewStreamSource(r io.Reader, opts ...gowarc.WarcRecordOption) RecordSource {
	var closer io.Closer
	if c, ok := r.(io.Closer); ok {
		closer = c
	}
	return &streamSource{
		unmarshaler: gowarc.NewUnmarshaler(opts...),
		reader:      bufio.NewReaderSize(r, 64*1024),
		closer:      closer,
	}
}

func (s *streamSource) Next() (Record, error) {
	if s.done {
		return nil, io.EOF
	}
	wr, _, _, err := s.unmarshaler.Unmarshal(s.reader)
	if err == io.EOF {
		s.done = true
		return nil, io.EOF
	}
	// A stream ending mid-record is a malformed record, not end of input.
	if err != nil {
		return nil, err
	}
	return bufferRecord(wr)
}

func (s *streamSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
