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

package wktproj

import (
	"context"
	"fmt"
	"sync"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/wktproj/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterCache(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.Level = logrus.DebugLevel
	tracer := mocktracer.New()
	c := NewConverter(WithLogger(log), WithTracer(tracer), WithCacheSize(10), WithWorkers(2))
	ctx := context.Background()

	want, err := Convert(wktNAD83)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		have, err := c.Convert(ctx, wktNAD83)
		require.NoError(t, err)
		assert.Equal(t, want, have)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, false, entries[0].Data["cached"])
	assert.Equal(t, true, entries[1].Data["cached"])
	assert.Equal(t, "Lambert_Conformal_Conic_2SP", entries[1].Data["method"])
	assert.Equal(t, entries[0].Data["key"], entries[1].Data["key"])
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "wktproj.Convert", spans[0].OperationName)
	assert.Equal(t, true, spans[1].Tag("cached"))
}

func TestConverterErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	c := NewConverter(WithLogger(log))
	ctx := context.Background()
	const bad = `PROJCS["x",GEOGCS["g",DATUM["d",SPHEROID["s",1,2]]],PROJECTION["Hotine_Oblique_Mercator"]]`

	// Failures are remembered like successes.
	for i := 0; i < 2; i++ {
		_, err := c.Convert(ctx, bad)
		assert.True(t, ErrNoMethodMapping.Is(err), "%v", err)
	}
	_, err := c.Convert(ctx, `GEOGCS[`)
	assert.True(t, ErrParse.Is(err), "%v", err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, logrus.WarnLevel, e.Level)
		assert.NotNil(t, e.Data[logrus.ErrorKey])
	}
	assert.Equal(t, true, entries[1].Data["cached"])
}

func TestConverterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewConverter().Convert(ctx, wkt4326)
	assert.Equal(t, context.Canceled, err)
}

func TestConvertAll(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := NewConverter(WithLogger(log), WithWorkers(3))

	defs := map[string]string{
		"EPSG:4326":   wkt4326,
		"EPSG:3857":   wkt3857,
		"EPSG:900913": wkt900913,
		"EPSG:26986":  wktNAD83,
		"copy":        wktNAD83,
		"bad":         `DATUM["d",SPHEROID["s",1,2]]`,
	}
	parent := opentracing.StartSpan("batch")
	ctx := opentracing.ContextWithSpan(context.Background(), parent)
	results := c.ConvertAll(ctx, defs)
	parent.Finish()

	require.Len(t, results, len(defs))
	for name, src := range defs {
		want, wantErr := Convert(src)
		have := results[name]
		assert.Equal(t, want, have.Proj, name)
		if wantErr == nil {
			assert.NoError(t, have.Err, name)
		} else {
			assert.EqualError(t, have.Err, wantErr.Error(), name)
		}
	}
	assert.True(t, ErrUnsupportedCRS.Is(results["bad"].Err))
}

func TestConverterConcurrent(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := NewConverter(WithLogger(log), WithCacheSize(2))
	srcs := []string{wkt4326, wkt3857, wkt900913, wktNAD83, wkt2LCC}
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()
			want, _ := Convert(src)
			have, err := c.Convert(context.Background(), src)
			if err != nil {
				errs <- err
				return
			}
			if have != want {
				errs <- fmt.Errorf("have %q, want %q", have, want)
			}
		}(srcs[i%len(srcs)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestConverterRequests(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := NewConverter(WithLogger(log))
	assert.Nil(t, c.Requests())
	for i := 0; i < 3; i++ {
		_, err := c.Convert(context.Background(), wkt4326)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{3, 3, 1}, c.Requests())
}

func TestConverterKey(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.Level = logrus.DebugLevel
	c := NewConverter(WithLogger(log))
	for _, src := range []string{wkt4326, wkt3857} {
		_, err := c.Convert(context.Background(), src)
		require.NoError(t, err)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	// Keys come from the gob encoding of the request, not the bare text.
	want := hash.Hash(&request{WKT: wkt4326})
	assert.Equal(t, want, entries[0].Data["key"])
	assert.NotEqual(t, hash.Hash(wkt4326), want)
	assert.Equal(t, want, hash.Hash(&request{WKT: wkt4326, processed: true}))
	assert.NotEqual(t, entries[0].Data["key"], entries[1].Data["key"])
}

func TestConverterRequestsDuringConvert(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := NewConverter(WithLogger(log))
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := c.Convert(context.Background(), wkt4326)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			if r := c.Requests(); r != nil {
				assert.Len(t, r, 3)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, c.Requests()[0])
}
