// Copyright © 2018 One Concern

package storage_test

import (
	"bytes"
	"context"
	"io/ioutil"
	"testing"

	"github.com/oneconcern/s3web/pkg/storage"
	"github.com/oneconcern/s3web/pkg/storage/localfs"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInstrument(t *testing.T) {
	tracer := mocktracer.New()
	core, logs := observer.New(zapcore.DebugLevel)
	store := storage.Instrument(tracer, zap.New(core), localfs.New(afero.NewMemMapFs()))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "commit/volume.tar.gz", bytes.NewBufferString("archive")))

	has, err := store.Has(ctx, "commit/volume.tar.gz")
	require.NoError(t, err)
	assert.True(t, has)

	rdr, err := store.Get(ctx, "commit/volume.tar.gz")
	require.NoError(t, err)
	b, err := ioutil.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "archive", string(b))

	_, err = store.Get(ctx, "titan")
	require.Error(t, err)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	require.NoError(t, store.Delete(ctx, "commit/volume.tar.gz"))

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 6)
	assert.Equal(t, "storage.localfs.Put", spans[0].OperationName)
	assert.Equal(t, true, spans[3].Tag("error"), "failed get is tagged")

	assert.Equal(t, 6, logs.Len())
	assert.Equal(t, "localfs", logs.All()[0].ContextMap()["store"])
	assert.Equal(t, "localfs/titan", storage.Location(store, "titan"))
}

func TestInstrumentDefaults(t *testing.T) {
	store := storage.Instrument(nil, nil, localfs.New(afero.NewMemMapFs()))
	has, err := store.Has(context.Background(), "titan")
	require.NoError(t, err)
	assert.False(t, has)
}
