package s3web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/oneconcern/s3web/pkg/errors"
	"github.com/oneconcern/s3web/pkg/metrics"
	"github.com/oneconcern/s3web/pkg/model"
	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/oneconcern/s3web/pkg/remote/status"
	"github.com/oneconcern/s3web/pkg/storage"
	storagestatus "github.com/oneconcern/s3web/pkg/storage/status"
	"github.com/oneconcern/s3web/pkg/storage/web"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var _ remote.Server = &Server{}

// Server reads commits and archives from a web remote.
//
// The manifest is fetched again on every call: listings always reflect the current state of the
// remote. A Server holds no state besides its configuration and may be shared by concurrent operations.
type Server struct {
	logger  *zap.Logger
	tracer  opentracing.Tracer
	client  *http.Client
	fs      afero.Fs
	factory StoreFactory
}

// NewServer builds a web remote server
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger: zap.NewNop(),
		fs:     afero.NewOsFs(),
	}
	for _, apply := range opts {
		apply(s)
	}
	if s.factory == nil {
		s.factory = s.webStore
	}
	return s
}

// ProviderName returns "s3web"
func (s *Server) ProviderName() string {
	return Provider
}

// ValidateRemote accepts a single "url" property
func (s *Server) ValidateRemote(properties map[string]interface{}) (remote.Remote, error) {
	return remote.ValidateRemote(properties)
}

// ValidateParameters accepts no parameters
func (s *Server) ValidateParameters(parameters map[string]interface{}) (remote.Parameters, error) {
	return remote.ValidateParameters(parameters)
}

func (s *Server) store(r remote.Remote) (storage.Store, error) {
	store, err := s.factory(r)
	if err != nil {
		return nil, err
	}
	return storage.Instrument(s.tracer, s.logger, store), nil
}

// getFile opens an object of the remote. Errors from the store are qualified as remote I/O errors,
// save for missing objects which are reported as status.ErrNotExists from the storage package.
func (s *Server) getFile(ctx context.Context, r remote.Remote, path string) (io.ReadCloser, error) {
	store, err := s.store(r)
	if err != nil {
		return nil, err
	}
	rdr, err := store.Get(ctx, path)
	if err == nil {
		return rdr, nil
	}

	location := storage.Location(store, path)
	var rerr *web.ResponseError
	switch {
	case errors.As(err, &rerr):
		return nil, status.NewRemoteIOError(rerr.URL, rerr.StatusCode, err)
	case errors.Is(err, storagestatus.ErrNotExists):
		return nil, status.NewRemoteIOError(location, http.StatusNotFound, err)
	default:
		return nil, status.NewRemoteIOError(location, 0, err)
	}
}

func isNotFound(err error) bool {
	var rerr *status.RemoteIOError
	return errors.As(err, &rerr) && rerr.StatusCode == http.StatusNotFound
}

// FetchManifest returns all commits described by the manifest of a remote, in manifest order.
//
// A remote without a manifest has no commits.
func (s *Server) FetchManifest(ctx context.Context, r remote.Remote) (model.Commits, error) {
	rdr, err := s.getFile(ctx, r, model.ManifestPath)
	if err != nil {
		if isNotFound(err) {
			s.logger.Debug("no manifest found on remote", zap.String("url", r.URL))
			return model.Commits{}, nil
		}
		return nil, err
	}
	defer func() {
		_ = rdr.Close()
	}()

	commits, err := model.DecodeManifest(rdr, model.OnSkip(func(skipped model.SkippedLine) {
		metrics.SkippedLines.Inc()
		s.logger.Debug("skipped manifest line",
			zap.String("url", r.URL),
			zap.Int("line", skipped.Line),
			zap.String("reason", skipped.Reason),
		)
	}))
	if err != nil {
		return nil, status.NewRemoteIOError(r.URL+"/"+model.ManifestPath, 0, err)
	}
	s.logger.Debug("fetched manifest", zap.String("url", r.URL), zap.Int("commits", len(commits)))
	return commits, nil
}

// ListCommits returns the commits matching all tag filters, most recent first
func (s *Server) ListCommits(ctx context.Context, r remote.Remote, _ remote.Parameters, tags []remote.TagFilter) (model.Commits, error) {
	commits, err := s.FetchManifest(ctx, r)
	if err != nil {
		return nil, err
	}
	matching := remote.FilterCommits(commits, tags)
	remote.SortDescending(matching)
	return matching, nil
}

// GetCommit returns the properties of a commit, and false if the remote does not know about it
func (s *Server) GetCommit(ctx context.Context, r remote.Remote, _ remote.Parameters, commitID string) (model.Properties, bool, error) {
	commits, err := s.FetchManifest(ctx, r)
	if err != nil {
		return nil, false, err
	}
	commit, found := commits.Find(commitID)
	if !found {
		return nil, false, nil
	}
	return commit.Properties, true, nil
}

// StartOperation refuses push operations and starts pull operations
func (s *Server) StartOperation(_ context.Context, op *remote.Operation) error {
	if op.Type != remote.Pull {
		return status.ErrNotSupported.Wrapf(pushNotSupported)
	}
	op.SetState(remote.Started)
	return nil
}

// EndOperation has nothing to release
func (s *Server) EndOperation(_ context.Context, op *remote.Operation, isSuccessful bool) error {
	s.logger.Debug("operation ended",
		zap.String("operation", op.OperationID),
		zap.Stringer("type", op.Type),
		zap.Bool("success", isSuccessful),
	)
	op.SetState(remote.Ended)
	return nil
}

// PullArchive downloads the archive of a volume for the commit of a started pull operation
// into the file archive. The archive is streamed to the file as it is received.
func (s *Server) PullArchive(ctx context.Context, op *remote.Operation, volume, archive string) (err error) {
	if op.Type != remote.Pull {
		return status.ErrNotSupported.Wrapf(pushNotSupported)
	}
	if op.State() != remote.Started {
		return status.ErrInvalidArgument.Wrapf("operation %q is %v: pull requires a started operation", op.OperationID, op.State())
	}

	archivePath := model.GetArchivePathToVolume(op.CommitID, volume)
	rdr, err := s.getFile(ctx, op.Remote, archivePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = rdr.Close()
	}()

	target, err := s.fs.OpenFile(archive, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create archive %q: %w", archive, err)
	}
	defer func() {
		if cerr := target.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close archive %q: %w", archive, cerr)
		}
	}()

	n, err := io.Copy(target, rdr)
	metrics.PulledBytes.Add(float64(n))
	if err != nil {
		return status.NewRemoteIOError(op.Remote.URL+"/"+archivePath, 0, err)
	}

	s.logger.Debug("pulled archive",
		zap.String("operation", op.OperationID),
		zap.String("commit", op.CommitID),
		zap.String("volume", volume),
		zap.Int64("bytes", n),
	)
	return nil
}

// PushArchive is not supported
func (s *Server) PushArchive(_ context.Context, _ *remote.Operation, _, _ string) error {
	return status.ErrNotSupported.Wrapf(pushNotSupported)
}

// PushMetadata is not supported
func (s *Server) PushMetadata(_ context.Context, _ *remote.Operation, _ model.Properties, _ bool) error {
	return status.ErrNotSupported.Wrapf(pushNotSupported)
}
