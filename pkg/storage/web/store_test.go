package web

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oneconcern/s3web/pkg/errors"
	"github.com/oneconcern/s3web/pkg/storage"
	"github.com/oneconcern/s3web/pkg/storage/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t testing.TB) (storage.Store, string, func()) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/path/sixteentons", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is the text"))
	})
	mux.HandleFunc("/path/locked", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/path/private", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/path/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)

	return New(server.URL+"/path", HTTPClient(server.Client())), server.URL + "/path", server.Close
}

func TestGet(t *testing.T) {
	bs, _, cleanup := setupStore(t)
	defer cleanup()

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := ioutil.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))
}

func TestGetErrors(t *testing.T) {
	bs, base, cleanup := setupStore(t)
	defer cleanup()

	for _, toPin := range []struct {
		key      string
		code     int
		sentinel error
	}{
		{key: "fifteentons", code: http.StatusNotFound, sentinel: status.ErrNotExists},
		{key: "locked", code: http.StatusForbidden, sentinel: status.ErrForbidden},
		{key: "private", code: http.StatusUnauthorized, sentinel: status.ErrUnauthorized},
		{key: "broken", code: http.StatusInternalServerError, sentinel: status.ErrStorageAPI},
	} {
		fixture := toPin
		t.Run(fixture.key, func(t *testing.T) {
			_, err := bs.Get(context.Background(), fixture.key)
			require.Error(t, err)
			assert.True(t, errors.Is(err, fixture.sentinel))

			var rerr *ResponseError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, base+"/"+fixture.key, rerr.URL)
			assert.Equal(t, fixture.code, rerr.StatusCode)
		})
	}
}

func TestHas(t *testing.T) {
	bs, _, cleanup := setupStore(t)
	defer cleanup()

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)

	_, err = bs.Has(context.Background(), "locked")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrForbidden))
}

func TestReadOnly(t *testing.T) {
	bs, _, cleanup := setupStore(t)
	defer cleanup()

	err := bs.Put(context.Background(), "eighteentons", nil)
	assert.True(t, errors.Is(err, status.ErrNotSupported))

	err = bs.Delete(context.Background(), "sixteentons")
	assert.True(t, errors.Is(err, status.ErrNotSupported))

	_, err = bs.Keys(context.Background())
	assert.True(t, errors.Is(err, status.ErrNotSupported))
}

func TestLocation(t *testing.T) {
	bs := New("http://host/path")
	assert.Equal(t, "http://host/path/titan", storage.Location(bs, "titan"))
	assert.Equal(t, "http://host/path/commit/volume.tar.gz", storage.Location(bs, "commit/volume.tar.gz"))
	assert.Equal(t, "web@http://host/path", bs.String())
}

func TestCanceledContext(t *testing.T) {
	bs, _, cleanup := setupStore(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bs.Get(ctx, "sixteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrStorageAPI))
}
