package remote

import (
	"context"

	"github.com/oneconcern/s3web/pkg/model"
)

// Remote holds the connection properties of a web remote
type Remote struct {
	URL string `mapstructure:"url" json:"url" yaml:"url"`
}

// Map returns the properties as persisted by hosts
func (r Remote) Map() map[string]interface{} {
	return map[string]interface{}{"url": r.URL}
}

// Parameters are per-operation parameters. Web remotes take none.
type Parameters struct{}

// Client translates locators into connection properties, and back
type Client interface {
	ProviderName() string
	ParseLocator(locator string, additional map[string]string) (Remote, error)
	ToLocator(Remote) (string, map[string]string)
	Parameters(Remote) map[string]interface{}
}

// Server answers catalog queries and takes part in operations
type Server interface {
	ProviderName() string

	ValidateRemote(map[string]interface{}) (Remote, error)
	ValidateParameters(map[string]interface{}) (Parameters, error)

	ListCommits(context.Context, Remote, Parameters, []TagFilter) (model.Commits, error)
	GetCommit(context.Context, Remote, Parameters, string) (model.Properties, bool, error)

	StartOperation(context.Context, *Operation) error
	PullArchive(ctx context.Context, op *Operation, volume, archive string) error
	PushArchive(ctx context.Context, op *Operation, volume, archive string) error
	PushMetadata(ctx context.Context, op *Operation, commit model.Properties, isUpdate bool) error
	EndOperation(ctx context.Context, op *Operation, isSuccessful bool) error
}
