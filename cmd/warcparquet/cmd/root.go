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

package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlnwa/warcparquet/cmd/warcparquet/cmd/convert"
	"github.com/nlnwa/warcparquet/cmd/warcparquet/cmd/schema"
)

type conf struct {
	cfgFile  string
	logLevel string
}

// NewCommand returns a new cobra.Command implementing the root command for warcparquet
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "warcparquet",
		Short: "Convert WARC files to Parquet",
		Long: `warcparquet translates WARC captures into Apache Arrow record batches
and writes them as Parquet files suitable for analytical processing.

Records are read one at a time, so arbitrarily large or unbounded inputs can
be converted with bounded memory.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() { c.initConfig() })

	// Flags
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.warcparquet.yaml)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level, one of panic, fatal, error, warn, info, debug or trace")

	// Subcommands
	cmd.AddCommand(convert.NewCommand())
	cmd.AddCommand(schema.NewCommand())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (c *conf) initConfig() {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log.SetLevel(level)

	if c.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(c.cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".warcparquet" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".warcparquet")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}
