// Package web implements a read-only storage.Store over plain HTTP.
//
// Keys are resolved by appending "/<key>" to the base URL, without any escaping
// or normalization. Only Get and Has reach the network: the write path always
// fails with status.ErrNotSupported.
package web

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/oneconcern/s3web/pkg/errors"
	"github.com/oneconcern/s3web/pkg/metrics"
	"github.com/oneconcern/s3web/pkg/storage"
	"github.com/oneconcern/s3web/pkg/storage/status"
)

// Option configures a web store
type Option func(*webFS)

// HTTPClient sets the client used to issue requests. Timeouts are the client's concern.
func HTTPClient(client *http.Client) Option {
	return func(fs *webFS) {
		if client != nil {
			fs.client = client
		}
	}
}

// New builds a read-only store rooted at some base URL
func New(baseURL string, options ...Option) storage.Store {
	fs := &webFS{
		base:   baseURL,
		client: http.DefaultClient,
	}
	for _, apply := range options {
		apply(fs)
	}
	return fs
}

type webFS struct {
	base   string
	client *http.Client
}

func (w *webFS) Location(key string) string {
	return w.base + "/" + key
}

func (w *webFS) do(ctx context.Context, method, key string) (*http.Response, error) {
	location := w.Location(key)
	req, err := http.NewRequest(method, location, nil)
	if err != nil {
		return nil, status.ErrStorageAPI.Wrap(err)
	}
	resp, err := w.client.Do(req.WithContext(ctx))
	if err != nil {
		metrics.Fetches.WithLabelValues(w.String(), "error").Inc()
		return nil, status.ErrStorageAPI.Wrap(err)
	}
	metrics.Fetches.WithLabelValues(w.String(), strconv.Itoa(resp.StatusCode)).Inc()
	if isSuccess(resp.StatusCode) {
		return resp, nil
	}
	// drain so the connection may be reused
	_, _ = io.Copy(ioutil.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil, toSentinelErrors(&ResponseError{URL: location, StatusCode: resp.StatusCode})
}

func (w *webFS) Has(ctx context.Context, key string) (bool, error) {
	resp, err := w.do(ctx, http.MethodHead, key)
	if err != nil {
		if errors.Is(err, status.ErrNotExists) {
			return false, nil
		}
		return false, err
	}
	_ = resp.Body.Close()
	return true, nil
}

// Get streams the object body. The caller must close the returned reader.
func (w *webFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := w.do(ctx, http.MethodGet, key)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (w *webFS) Put(_ context.Context, key string, _ io.Reader) error {
	return status.ErrNotSupported.Wrapf("cannot put %q: %v is read-only", key, w)
}

func (w *webFS) Delete(_ context.Context, key string) error {
	return status.ErrNotSupported.Wrapf("cannot delete %q: %v is read-only", key, w)
}

func (w *webFS) Keys(_ context.Context) ([]string, error) {
	return nil, status.ErrNotSupported.Wrapf("%v cannot enumerate keys", w)
}

func (w *webFS) String() string {
	return "web@" + w.base
}
