/*
Copyright © 2023 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package wktprojutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/wktproj"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// stdin and logOut are where commands read WKT from when no other
// source is given and where they write log messages.
var (
	stdin  io.Reader = os.Stdin
	logOut io.Writer = os.Stderr
)

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to wktproj.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug logging, including a message for
              every conversion made by the convert and batch commands.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "wkt",
			usage: `
              wkt is a WKT definition to convert. If it is empty, definitions
              are read from the files given as arguments or from standard input.`,
			shorthand:  "w",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), treeCmd.Flags()},
		},
		{
			name: "check",
			usage: `
              check specifies whether each proj string should be parsed
              after it is created to make sure it is a usable definition.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Definitions",
			usage: `
              Definitions maps names to the WKT definitions to be converted
              by the batch command. When given on the command line it is a
              JSON object, e.g. {"EPSG:4326":"GEOGCS[...]"}.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the batch results are written to. If it
              is empty the results are written to standard output. It can
              contain environment variables.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "OutputFormat",
			usage: `
              OutputFormat is the format of the batch results. Options are
              text, json, yaml and toml.`,
			defaultVal: FormatText,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "CacheSize",
			usage: `
              CacheSize is the number of conversion results kept in memory.`,
			defaultVal: wktproj.DefaultCacheSize,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "Workers",
			usage: `
              Workers is the number of conversions to run at the same time.
              Zero means one per processor.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("WKTPROJ")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(batchCmd)
	Root.AddCommand(treeCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("wktproj: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "wktproj",
	Short: "Convert WKT coordinate reference systems to proj strings.",
	Long: `wktproj converts coordinate reference system definitions written as
OGC Well-Known Text (WKT1 or WKT2) into proj strings.
Use the subcommands specified below to access the conversion functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'WKTPROJ_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of wktproj.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wktproj v%s\n", wktproj.Version)
	},
	DisableAutoGenTag: true,
}

// convertCmd converts one or more definitions and prints the results.
var convertCmd = &cobra.Command{
	Use:   "convert [file ...]",
	Short: "Convert WKT definitions to proj strings.",
	Long: `convert converts the WKT definition given with the --wkt flag, or
the definition in each of the given files, or the definition read from
standard input, and prints one proj string per definition.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcs, err := readSources(Cfg.GetString("wkt"), expandStringSlice(args), stdin)
		if err != nil {
			return err
		}
		c := wktproj.NewConverter(wktproj.WithLogger(newLogger(logOut, Cfg.GetBool("verbose"))))
		return Convert(context.Background(), cmd.OutOrStdout(), c, srcs, Cfg.GetBool("check"))
	},
	DisableAutoGenTag: true,
}

// batchCmd converts a named set of definitions concurrently.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a set of named WKT definitions.",
	Long: `batch converts every definition in the Definitions configuration
variable at the same time and writes the results, keyed by definition name,
to OutputFile in OutputFormat. Definitions that cannot be converted are
reported in the output along with the reason.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := GetStringMapString("Definitions", Cfg)
		if err != nil {
			return err
		}
		format, err := checkOutputFormat(Cfg.GetString("OutputFormat"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}

		log := newLogger(logOut, Cfg.GetBool("verbose"))
		opts := []wktproj.ConverterOption{
			wktproj.WithLogger(log),
			wktproj.WithCacheSize(Cfg.GetInt("CacheSize")),
		}
		if n := Cfg.GetInt("Workers"); n > 0 {
			opts = append(opts, wktproj.WithWorkers(n))
		}
		c := wktproj.NewConverter(opts...)

		w, closeOutput, err := openOutput(outputFile, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		err = Batch(context.Background(), w, c, defs, format)
		logRequests(log, c)
		if cerr := closeOutput(); err == nil {
			err = cerr
		}
		return err
	},
	DisableAutoGenTag: true,
}

// treeCmd prints the parsed form of a definition.
var treeCmd = &cobra.Command{
	Use:   "tree [file ...]",
	Short: "Print the parsed coordinate reference system.",
	Long: `tree parses WKT definitions in the same way as convert and prints
the resulting coordinate reference system objects, which is useful for
finding out why a definition does not convert as expected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcs, err := readSources(Cfg.GetString("wkt"), expandStringSlice(args), stdin)
		if err != nil {
			return err
		}
		return Tree(cmd.OutOrStdout(), srcs)
	},
	DisableAutoGenTag: true,
}
