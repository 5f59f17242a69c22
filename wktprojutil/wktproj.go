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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom/proj"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wktproj"
	"github.com/spatialmodel/wktproj/crs"
	yaml "gopkg.in/yaml.v2"
)

// readSources returns the WKT definitions to convert: wkt itself if it
// is not empty, otherwise the contents of each file, otherwise
// everything on stdin. A file name of "-" also stands for stdin.
func readSources(wkt string, files []string, stdin io.Reader) ([]string, error) {
	if wkt != "" {
		return []string{wkt}, nil
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	srcs := make([]string, 0, len(files))
	for _, file := range files {
		var b []byte
		var err error
		if file == "-" {
			b, err = ioutil.ReadAll(bufio.NewReader(stdin))
		} else {
			b, err = ioutil.ReadFile(os.ExpandEnv(file))
		}
		if err != nil {
			return nil, fmt.Errorf("wktproj: reading WKT: %v", err)
		}
		srcs = append(srcs, strings.TrimSpace(string(b)))
	}
	return srcs, nil
}

// Convert uses c to write to w the proj string for each of the
// definitions in srcs, one per line. If check is true, each result is
// also parsed as a proj definition to make sure it can be used.
func Convert(ctx context.Context, w io.Writer, c *wktproj.Converter, srcs []string, check bool) error {
	for _, src := range srcs {
		p, err := c.Convert(ctx, src)
		if err != nil {
			return err
		}
		if check {
			if _, err := proj.Parse(p); err != nil {
				return fmt.Errorf("wktproj: checking %q: %v", p, err)
			}
		}
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Tree writes to w the parsed CRS tree of each definition in srcs.
func Tree(w io.Writer, srcs []string) error {
	for _, src := range srcs {
		n, err := crs.Parse(src)
		if err != nil {
			return err
		}
		if _, err := pretty.Fprintf(w, "%# v\n", n); err != nil {
			return err
		}
	}
	return nil
}

// BatchResult is the output record for one definition of a batch.
type BatchResult struct {
	Proj  string `json:"proj,omitempty" yaml:"proj,omitempty" toml:"proj,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// The output formats understood by Batch.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// checkOutputFormat makes sure the output format is one Batch can write.
func checkOutputFormat(f string) (string, error) {
	f = strings.ToLower(f)
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("wktproj: invalid output format %q; valid formats are %s, %s, %s and %s",
		f, FormatText, FormatJSON, FormatYAML, FormatTOML)
}

// Batch converts all of defs, which maps names to WKT definitions, using
// c and writes the results to w in the given format. Failed definitions
// are reported in the output rather than stopping the batch; the
// returned error counts them.
func Batch(ctx context.Context, w io.Writer, c *wktproj.Converter, defs map[string]string, format string) error {
	format, err := checkOutputFormat(format)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("wktproj: there are no definitions to convert. Please fill in " +
			"the Definitions configuration and try again.")
	}

	results := c.ConvertAll(ctx, defs)
	out := make(map[string]BatchResult, len(results))
	var failed int
	for name, r := range results {
		if r.Err != nil {
			failed++
			out[name] = BatchResult{Error: r.Err.Error()}
			continue
		}
		out[name] = BatchResult{Proj: r.Proj}
	}

	if err := writeResults(w, out, format); err != nil {
		return fmt.Errorf("wktproj: writing batch output: %v", err)
	}
	if failed > 0 {
		return fmt.Errorf("wktproj: %d of %d definitions could not be converted", failed, len(defs))
	}
	return nil
}

func writeResults(w io.Writer, out map[string]BatchResult, format string) error {
	switch format {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(out)
	case FormatYAML:
		b, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatTOML:
		return toml.NewEncoder(w).Encode(out)
	}
	names := make([]string, 0, len(out))
	for name := range out {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := out[name]
		var err error
		if r.Error != "" {
			_, err = fmt.Fprintf(w, "%s\terror: %s\n", name, r.Error)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\n", name, r.Proj)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// logRequests reports how many requests were answered at each level of
// the converter's cache.
func logRequests(log logrus.FieldLogger, c *wktproj.Converter) {
	r := c.Requests()
	if len(r) != 3 {
		return
	}
	log.WithFields(logrus.Fields{
		"requests":     r[0],
		"deduplicated": r[0] - r[1],
		"memory hits":  r[1] - r[2],
		"converted":    r[2],
	}).Info("wktproj: batch complete")
}
