// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Instrument decorates a store with tracing spans and debug logs.
//
// A nil tracer falls back on the global tracer, a nil logger on a no-op logger.
func Instrument(tr opentracing.Tracer, logger *zap.Logger, store Store) Store {
	if tr == nil {
		tr = opentracing.GlobalTracer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &instrumentedStore{
		tr:     tr,
		store:  store,
		logger: logger.With(zap.String("store", store.String())),
	}
}

type instrumentedStore struct {
	store  Store
	tr     opentracing.Tracer
	logger *zap.Logger
}

func (i *instrumentedStore) opName(name string) string {
	return strings.Join([]string{"storage", i.String(), name}, ".")
}

func (i *instrumentedStore) spanFromContext(ctx context.Context, name string) opentracing.Span {
	parent := opentracing.SpanFromContext(ctx)
	var span opentracing.Span
	if parent != nil {
		span = i.tr.StartSpan(name, opentracing.ChildOf(parent.Context()))
	} else {
		span = i.tr.StartSpan(name)
	}
	return span
}

func (i *instrumentedStore) finish(span opentracing.Span, err error) {
	if err != nil {
		span.SetTag("error", true)
		span.LogKV("message", err.Error())
	}
	span.Finish()
}

func (i *instrumentedStore) Has(ctx context.Context, key string) (has bool, err error) {
	span := i.spanFromContext(ctx, i.opName("Has"))
	defer func() { i.finish(span, err) }()
	i.logger.Debug("storage has", zap.String("key", key))

	return i.store.Has(opentracing.ContextWithSpan(ctx, span), key)
}

func (i *instrumentedStore) Get(ctx context.Context, key string) (rdr io.ReadCloser, err error) {
	span := i.spanFromContext(ctx, i.opName("Get"))
	defer func() { i.finish(span, err) }()

	i.logger.Debug("storage get", zap.String("key", key))
	return i.store.Get(opentracing.ContextWithSpan(ctx, span), key)
}

func (i *instrumentedStore) Put(ctx context.Context, key string, rdr io.Reader) (err error) {
	span := i.spanFromContext(ctx, i.opName("Put"))
	defer func() { i.finish(span, err) }()

	i.logger.Debug("storage put", zap.String("key", key))
	return i.store.Put(opentracing.ContextWithSpan(ctx, span), key, rdr)
}

func (i *instrumentedStore) Delete(ctx context.Context, key string) (err error) {
	span := i.spanFromContext(ctx, i.opName("Delete"))
	defer func() { i.finish(span, err) }()

	i.logger.Debug("storage delete", zap.String("key", key))
	return i.store.Delete(opentracing.ContextWithSpan(ctx, span), key)
}

func (i *instrumentedStore) Keys(ctx context.Context) (keys []string, err error) {
	span := i.spanFromContext(ctx, i.opName("Keys"))
	defer func() { i.finish(span, err) }()
	i.logger.Debug("storage keys")

	return i.store.Keys(opentracing.ContextWithSpan(ctx, span))
}

// Location delegates to the decorated store
func (i *instrumentedStore) Location(key string) string {
	return Location(i.store, key)
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}
