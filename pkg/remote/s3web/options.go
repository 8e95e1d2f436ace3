package s3web

import (
	"net/http"

	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/oneconcern/s3web/pkg/storage"
	"github.com/oneconcern/s3web/pkg/storage/web"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StoreFactory resolves the store serving a remote
type StoreFactory func(remote.Remote) (storage.Store, error)

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger. The default logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHTTPClient sets the HTTP client used by the default store factory
func WithHTTPClient(client *http.Client) Option {
	return func(s *Server) {
		s.client = client
	}
}

// WithTracer sets the tracer used to instrument stores. Defaults to the global tracer.
func WithTracer(tr opentracing.Tracer) Option {
	return func(s *Server) {
		s.tracer = tr
	}
}

// WithFs sets the file system where archives are written. Defaults to the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(s *Server) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithStoreFactory overrides how remotes are resolved into stores, e.g. to read a local mirror
func WithStoreFactory(factory StoreFactory) Option {
	return func(s *Server) {
		s.factory = factory
	}
}

func (s *Server) webStore(r remote.Remote) (storage.Store, error) {
	return web.New(r.URL, web.HTTPClient(s.client)), nil
}
