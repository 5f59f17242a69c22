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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/wktproj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

const (
	wkt4326 = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,
  AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,
  AUTHORITY["EPSG","8901"]],UNIT["degree",0.0174532925199433,
  AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4326"]]`
	proj4326 = "+proj=longlat +a=6378137 +rf=298.257223563 +towgs84=0,0,0,0,0,0,0"

	wkt3857 = `PROJCS["WGS 84 / Pseudo-Mercator",GEOGCS["WGS 84",DATUM["WGS_1984",
  SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],
  UNIT["degree",0.0174532925199433]],PROJECTION["Mercator_1SP"],
  PARAMETER["central_meridian",0],PARAMETER["scale_factor",1],
  PARAMETER["false_easting",0],PARAMETER["false_northing",0],UNIT["metre",1]]`
	proj3857 = "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +units=m +a=6378137 +rf=298.257223563 +towgs84=0,0,0,0,0,0,0"

	wktBad = `PROJCS["x",GEOGCS["g",DATUM["d",SPHEROID["s",1,2]]],PROJECTION["Hotine_Oblique_Mercator"]]`
)

// resetCfg restores the options a test changed.
func resetCfg() {
	Cfg.Set("config", "")
	Cfg.Set("wkt", "")
	Cfg.Set("check", false)
	Cfg.Set("Definitions", "")
	Cfg.Set("OutputFile", "")
	Cfg.Set("OutputFormat", FormatText)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	Root.SetOutput(&b)
	Root.SetArgs(args)
	err := Root.Execute()
	return b.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wktproj v"+wktproj.Version+"\n", out)
}

func TestConvertCmd(t *testing.T) {
	defer resetCfg()
	logOut = ioutil.Discard
	defer func() { logOut = os.Stderr }()

	t.Run("flag", func(t *testing.T) {
		Cfg.Set("wkt", wkt4326)
		Cfg.Set("check", true)
		out, err := execute(t, "convert")
		require.NoError(t, err)
		assert.Equal(t, proj4326+"\n", out)
	})
	t.Run("files", func(t *testing.T) {
		resetCfg()
		dir := t.TempDir()
		f1 := filepath.Join(dir, "4326.wkt")
		f2 := filepath.Join(dir, "3857.wkt")
		require.NoError(t, ioutil.WriteFile(f1, []byte(wkt4326+"\n"), 0644))
		require.NoError(t, ioutil.WriteFile(f2, []byte(wkt3857), 0644))
		out, err := execute(t, "convert", f1, f2)
		require.NoError(t, err)
		assert.Equal(t, proj4326+"\n"+proj3857+"\n", out)
	})
	t.Run("stdin", func(t *testing.T) {
		resetCfg()
		stdin = strings.NewReader(wkt3857)
		defer func() { stdin = os.Stdin }()
		out, err := execute(t, "convert")
		require.NoError(t, err)
		assert.Equal(t, proj3857+"\n", out)
	})
	t.Run("missing file", func(t *testing.T) {
		resetCfg()
		_, err := execute(t, "convert", filepath.Join(t.TempDir(), "nothere.wkt"))
		assert.Error(t, err)
	})
	t.Run("bad", func(t *testing.T) {
		resetCfg()
		Cfg.Set("wkt", wktBad)
		_, err := execute(t, "convert")
		assert.True(t, wktproj.ErrNoMethodMapping.Is(err), "%v", err)
	})
}

func TestConvertCmdVerbose(t *testing.T) {
	defer resetCfg()
	defer Cfg.Set("verbose", false)
	var log bytes.Buffer
	logOut = &log
	defer func() { logOut = os.Stderr }()

	Cfg.Set("wkt", wkt3857)
	out, err := execute(t, "convert")
	require.NoError(t, err)
	assert.Equal(t, proj3857+"\n", out)
	assert.NotContains(t, log.String(), "wktproj: converted")

	Cfg.Set("verbose", true)
	_, err = execute(t, "convert")
	require.NoError(t, err)
	assert.Contains(t, log.String(), "wktproj: converted")
	assert.Contains(t, log.String(), "method=Mercator_1SP")
}

func TestTreeCmd(t *testing.T) {
	defer resetCfg()
	Cfg.Set("wkt", wkt4326)
	out, err := execute(t, "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "crs.Geogcs")
	assert.Contains(t, out, `"WGS_1984"`)
	assert.Contains(t, out, `"298.257223563"`)
}

func TestBatchCmd(t *testing.T) {
	defer resetCfg()
	logOut = ioutil.Discard
	defer func() { logOut = os.Stderr }()

	defs, err := json.Marshal(map[string]string{"EPSG:4326": wkt4326, "EPSG:3857": wkt3857})
	require.NoError(t, err)

	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			resetCfg()
			outputFile := filepath.Join(t.TempDir(), "out."+format)
			Cfg.Set("Definitions", string(defs))
			Cfg.Set("OutputFormat", format)
			Cfg.Set("OutputFile", outputFile)
			_, err := execute(t, "batch")
			require.NoError(t, err)

			b, err := ioutil.ReadFile(outputFile)
			require.NoError(t, err)
			results := make(map[string]BatchResult)
			switch format {
			case FormatJSON:
				err = json.Unmarshal(b, &results)
			case FormatYAML:
				err = yaml.Unmarshal(b, &results)
			case FormatTOML:
				_, err = toml.Decode(string(b), &results)
			}
			require.NoError(t, err)
			assert.Equal(t, map[string]BatchResult{
				"EPSG:4326": {Proj: proj4326},
				"EPSG:3857": {Proj: proj3857},
			}, results)
		})
	}
}

func TestBatchCmdConfigFile(t *testing.T) {
	logOut = ioutil.Discard
	defer func() { logOut = os.Stderr }()

	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	var b bytes.Buffer
	require.NoError(t, toml.NewEncoder(&b).Encode(map[string]interface{}{
		"OutputFormat": FormatText,
		"Definitions":  map[string]string{"web": wkt3857},
	}))
	require.NoError(t, ioutil.WriteFile(config, b.Bytes(), 0644))

	// Values set directly take priority over the configuration file, so
	// use a configuration without any.
	oldCfg := Cfg
	Cfg = viper.New()
	defer func() { Cfg = oldCfg }()
	Cfg.Set("config", config)
	out, err := execute(t, "batch")
	require.NoError(t, err)
	assert.Equal(t, "web\t"+proj3857+"\n", out)
}

func TestBatch(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := wktproj.NewConverter(wktproj.WithLogger(log))
	var b bytes.Buffer
	err := Batch(context.Background(), &b, c, map[string]string{
		"b": wkt4326,
		"a": wktBad,
	}, "TEXT")
	require.EqualError(t, err, "wktproj: 1 of 2 definitions could not be converted")
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a\terror: wktproj: no projection mapping"), lines[0])
	assert.Equal(t, "b\t"+proj4326, lines[1])

	err = Batch(context.Background(), &b, c, nil, FormatJSON)
	assert.Error(t, err)

	err = Batch(context.Background(), &b, c, map[string]string{"b": wkt4326}, "xml")
	assert.EqualError(t, err, `wktproj: invalid output format "xml"; valid formats are text, json, yaml and toml`)
}

func TestGetStringMapString(t *testing.T) {
	defer Cfg.Set("Definitions", "")
	tests := []struct {
		name string
		val  interface{}
		want map[string]string
	}{
		{name: "json", val: `{"a":"b"}`, want: map[string]string{"a": "b"}},
		{name: "empty", val: "", want: nil},
		{name: "map", val: map[string]string{"a": "b"}, want: map[string]string{"a": "b"}},
		{name: "interface map", val: map[string]interface{}{"a": "b"}, want: map[string]string{"a": "b"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			Cfg.Set("Definitions", test.val)
			have, err := GetStringMapString("Definitions", Cfg)
			require.NoError(t, err)
			assert.Equal(t, test.want, have)
		})
	}
	t.Run("bad json", func(t *testing.T) {
		Cfg.Set("Definitions", `{"a":`)
		_, err := GetStringMapString("Definitions", Cfg)
		assert.Error(t, err)
	})
	t.Run("bad type", func(t *testing.T) {
		Cfg.Set("Definitions", 4)
		_, err := GetStringMapString("Definitions", Cfg)
		assert.Error(t, err)
	})
}

func TestCheckOutputFile(t *testing.T) {
	f, err := checkOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, "", f)

	dir := t.TempDir()
	os.Setenv("WKTPROJ_TEST_DIR", dir)
	defer os.Unsetenv("WKTPROJ_TEST_DIR")
	f, err = checkOutputFile("${WKTPROJ_TEST_DIR}/out.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.json"), f)

	_, err = checkOutputFile(filepath.Join(dir, "missing", "out.json"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	log := newLogger(&b, false)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")

	log = newLogger(&b, true)
	log.Debug("detail")
	assert.Contains(t, b.String(), "detail")
}
