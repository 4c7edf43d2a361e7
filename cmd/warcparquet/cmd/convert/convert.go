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

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/nlnwa/gowarc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlnwa/warcparquet"
)

type conf struct {
	warcInput         string
	parquetOutput     string
	batchSize         int
	compression       string
	maxRowGroupLength int64
	strict            bool
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "convert <warcInput> <parquetOutput>",
		Short: "Convert a WARC file to a Parquet file",
		Long: `Convert a WARC file to a Parquet file.

Use '-' as input to read WARC data from stdin. Gzip compressed records are
decompressed transparently. Existing data at the output path WILL be
overwritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.warcInput = args[0]
			c.parquetOutput = args[1]
			c.batchSize = viper.GetInt("batch-size")
			c.compression = viper.GetString("compression")
			c.maxRowGroupLength = viper.GetInt64("max-row-group-length")
			c.strict = viper.GetBool("strict")
			return runE(c)
		},
	}

	cmd.Flags().IntP("batch-size", "b", 8192, "maximum number of records per record batch")
	cmd.Flags().StringP("compression", "c", "snappy", "parquet compression, one of: uncompressed, snappy, gzip, brotli, lz4 or zstd")
	cmd.Flags().Int64P("max-row-group-length", "g", parquet.DefaultMaxRowGroupLen, "maximum number of rows per parquet row group")
	cmd.Flags().BoolP("strict", "s", false, "abort on malformed records instead of skipping them")
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.Fatalf("Failed to bind convert flags: %v", err)
	}

	return cmd
}

func runE(c *conf) error {
	codec, err := compressionCodec(c.compression)
	if err != nil {
		return err
	}

	source, err := newSource(c)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	reader, err := warcparquet.NewRecordBatchReader(source, warcparquet.WithBatchSize(c.batchSize))
	if err != nil {
		return err
	}

	out, err := os.Create(c.parquetOutput)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(codec),
		parquet.WithMaxRowGroupLength(c.maxRowGroupLength),
	)
	writer, err := pqarrow.NewFileWriter(reader.Schema(), out, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return err
	}

	var rows, batches int64
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if c.strict {
				_ = writer.Close()
				return err
			}
			log.WithError(err).Warn("Skipping records of failed batch")
			continue
		}

		n := rec.NumRows()
		err = writer.Write(rec)
		rec.Release()
		if err != nil {
			_ = writer.Close()
			return err
		}
		rows += n
		batches++
		log.Debugf("Wrote batch %d with %d records", batches, n)
	}

	if err := writer.Close(); err != nil {
		return err
	}
	log.Infof("Wrote %d records in %d batches to %s", rows, batches, c.parquetOutput)
	return nil
}

// newSource opens the WARC input. In strict mode the parser fails on
// syntax errors, otherwise it repairs what it can and carries on.
func newSource(c *conf) (warcparquet.RecordSource, error) {
	syntaxPolicy := gowarc.ErrWarn
	if c.strict {
		syntaxPolicy = gowarc.ErrFail
	}
	opts := []gowarc.WarcRecordOption{
		gowarc.WithSyntaxErrorPolicy(syntaxPolicy),
		gowarc.WithSpecViolationPolicy(gowarc.ErrIgnore),
	}

	if c.warcInput == "-" {
		return warcparquet.NewStreamSource(os.Stdin, opts...), nil
	}
	return warcparquet.NewFileSource(c.warcInput, opts...)
}

func compressionCodec(name string) (compress.Compression, error) {
	switch name {
	case "uncompressed":
		return compress.Codecs.Uncompressed, nil
	case "snappy":
		return compress.Codecs.Snappy, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "brotli":
		return compress.Codecs.Brotli, nil
	case "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	default:
		return compress.Codecs.Uncompressed, fmt.Errorf("unknown compression %v", name)
	}
}
