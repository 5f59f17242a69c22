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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return i.(map[string]string), nil
	case map[string]interface{}:
		return cast.ToStringMapString(i), nil
	case string:
		if strings.TrimSpace(i.(string)) == "" {
			return nil, nil
		}
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("wktproj: parsing %s as JSON: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i)
	}
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// checkOutputFile expands any environment variables in the output file
// name and makes sure its directory exists. An empty name means standard
// output.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	dir := filepath.Dir(f)
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("wktproj: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// openOutput returns a writer for the output file f, or stdout if f is
// empty. The returned function closes the file.
func openOutput(f string, stdout io.Writer) (io.Writer, func() error, error) {
	if f == "" {
		return stdout, func() error { return nil }, nil
	}
	w, err := os.Create(f)
	if err != nil {
		return nil, nil, fmt.Errorf("wktproj: creating output file: %v", err)
	}
	return w, w.Close, nil
}

// newLogger returns the logger commands report to. It writes to w at
// info level, or at debug level if verbose is true, using the formatter
// of the standard logger.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = logrus.StandardLogger().Formatter
	log.Level = logrus.InfoLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}
