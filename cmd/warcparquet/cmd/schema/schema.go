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

package schema

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nlnwa/warcparquet"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the WARC 1.0 column schema",
		Long: `Print the columns of the WARC 1.0 schema as written to Parquet,
in output column order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runE(cmd.OutOrStdout())
		},
	}
}

func runE(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tTYPE\tNULLABLE")
	for _, field := range warcparquet.SchemaV1_0.Fields() {
		fmt.Fprintf(w, "%s\t%s\t%v\n", field.Name, field.Type, field.Nullable)
	}
	return w.Flush()
}
