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
	"runtime"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wktproj/crs"
	"github.com/spatialmodel/wktproj/internal/hash"
)

// DefaultCacheSize is the number of conversions a Converter remembers
// unless WithCacheSize is given.
const DefaultCacheSize = 1000

// Converter converts WKT to proj strings for many concurrent callers.
// Identical requests in flight at the same time are processed once and
// recent results are kept in memory. It is safe for concurrent use.
type Converter struct {
	cacheSize int
	workers   int
	log       logrus.FieldLogger
	tracer    opentracing.Tracer

	mu    sync.Mutex
	cache *requestcache.Cache
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithCacheSize sets the number of results kept in memory.
func WithCacheSize(n int) ConverterOption {
	return func(c *Converter) {
		c.cacheSize = n
	}
}

// WithWorkers sets the number of conversions run in parallel. The
// default is GOMAXPROCS.
func WithWorkers(n int) ConverterOption {
	return func(c *Converter) {
		c.workers = n
	}
}

// WithLogger sets the logger conversions are reported to.
func WithLogger(log logrus.FieldLogger) ConverterOption {
	return func(c *Converter) {
		c.log = log
	}
}

// WithTracer sets the tracer conversion spans are started with. The
// default tracer discards spans.
func WithTracer(t opentracing.Tracer) ConverterOption {
	return func(c *Converter) {
		c.tracer = t
	}
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		cacheSize: DefaultCacheSize,
		workers:   runtime.GOMAXPROCS(-1),
		log:       logrus.StandardLogger(),
		tracer:    opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	if c.cacheSize < 1 {
		c.cacheSize = 1
	}
	return c
}

// Result is the outcome of one conversion.
type Result struct {
	Proj string
	Err  error
}

// request is the payload handed to the cache and the value its key is
// computed from. processed is set by the worker that actually runs the
// conversion, so requests answered from the cache or by a duplicate
// leave it unset. It is unexported and so never part of the key.
type request struct {
	WKT       string
	processed bool
}

// conversion is the cached result. Errors are cached along with
// successes: the cache only passes on results whose processing
// succeeded, and a conversion always gives the same answer for the same
// input.
type conversion struct {
	proj   string
	method string
	err    error
}

func (c *Converter) process(ctx context.Context, payload interface{}) (interface{}, error) {
	r := payload.(*request)
	r.processed = true
	n, err := crs.Parse(r.WKT)
	if err != nil {
		return &conversion{err: err}, nil
	}
	var b strings.Builder
	if err := NewFormatter(&b).Format(n); err != nil {
		return &conversion{method: methodName(n), err: err}, nil
	}
	return &conversion{proj: b.String(), method: methodName(n)}, nil
}

// methodName describes the projection of a CRS for logging.
func methodName(n crs.Node) string {
	switch n := n.(type) {
	case *crs.Projcs:
		return n.Projection.Method.Name
	case *crs.Geogcs:
		return "geographic"
	case *crs.Geoccs:
		return "geocentric"
	case *crs.Compoundcrs:
		return methodName(n.Horizontal)
	}
	return kindName(n)
}

// span starts a span as a child of the span in ctx, if any, and returns
// a context carrying the new span.
func (c *Converter) span(ctx context.Context, name string, opts ...opentracing.StartSpanOption) (opentracing.Span, context.Context) {
	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}
	span := c.tracer.StartSpan(name, opts...)
	return span, opentracing.ContextWithSpan(ctx, span)
}

// requestCache returns the cache, creating it first if create is true.
func (c *Converter) requestCache(create bool) *requestcache.Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache == nil && create {
		c.cache = requestcache.NewCache(c.process, c.workers,
			requestcache.Deduplicate(), requestcache.Memory(c.cacheSize))
	}
	return c.cache
}

// Convert returns the proj string for src, as the package-level Convert
// does.
func (c *Converter) Convert(ctx context.Context, src string) (string, error) {
	cache := c.requestCache(true)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := &request{WKT: src}
	key := hash.Hash(r)
	span, ctx := c.span(ctx, "wktproj.Convert")
	defer span.Finish()

	result, err := cache.NewRequest(ctx, r, key).Result()
	if err != nil {
		span.SetTag("error", true)
		return "", err
	}
	conv := result.(*conversion)

	log := c.log.WithFields(logrus.Fields{
		"key":    key,
		"method": conv.method,
		"cached": !r.processed,
	})
	span.SetTag("method", conv.method)
	span.SetTag("cached", !r.processed)
	if conv.err != nil {
		span.SetTag("error", true)
		log.WithError(conv.err).Warn("wktproj: conversion failed")
		return "", conv.err
	}
	log.Debug("wktproj: converted")
	return conv.proj, nil
}

// ConvertAll converts every definition in defs concurrently and returns
// the results under the same names.
func (c *Converter) ConvertAll(ctx context.Context, defs map[string]string) map[string]Result {
	span, ctx := c.span(ctx, "wktproj.ConvertAll", opentracing.Tag{Key: "definitions", Value: len(defs)})
	defer span.Finish()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]Result, len(defs))
	)
	for name, src := range defs {
		wg.Add(1)
		go func(name, src string) {
			defer wg.Done()
			proj, err := c.Convert(ctx, src)
			mu.Lock()
			results[name] = Result{Proj: proj, Err: err}
			mu.Unlock()
		}(name, src)
	}
	wg.Wait()
	return results
}

// Requests returns the number of requests received by the deduplicator,
// the memory cache and the converter itself, in that order. It returns
// nil before the first conversion.
func (c *Converter) Requests() []int {
	cache := c.requestCache(false)
	if cache == nil {
		return nil
	}
	return cache.Requests()
}
