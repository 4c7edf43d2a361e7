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

/*
Package warcparquet translates WARC records into Apache Arrow record batches.

# Reading

The [RecordBatchReader] pulls records from a [RecordSource] and converts them
into record batches of a configurable size. It is initialized with
[NewRecordBatchReader]. The streaming interface allows consuming very large or
indefinite inputs with bounded memory; only one batch of records is held at a
time.

Two record sources are provided, both backed by the gowarc parser:
[NewFileSource] reads from a WARC file and [NewStreamSource] reads from an
arbitrary stream such as stdin. Any type implementing [RecordSource] can be
used instead.

# Schema

The produced record batches conform to [SchemaV1_0], covering the WARC
Format 1.0 field set: four mandatory fields, fifteen optional header fields
and the record's content block as a binary column. Optional fields missing
from a record become null column entries.

# Writing Parquet

Record batches can be handed to any Arrow consumer. For writing Parquet
files the warcparquet command line tool is provided under cmd/warcparquet,
using the parquet support of the arrow module.
*/
package warcparquet
