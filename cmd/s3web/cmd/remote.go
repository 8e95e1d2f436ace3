package cmd

import (
	"errors"
	"sort"
	"strings"

	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/oneconcern/s3web/pkg/remote/s3web"
	"github.com/oneconcern/s3web/pkg/storage"
	"github.com/oneconcern/s3web/pkg/storage/localfs"
	"github.com/spf13/afero"
)

var client = s3web.NewClient()

func newServer() *s3web.Server {
	opts := []s3web.Option{s3web.WithLogger(newLogger())}
	if config.Mirror != "" {
		mirror := config.Mirror
		opts = append(opts, s3web.WithStoreFactory(func(remote.Remote) (storage.Store, error) {
			return localfs.New(afero.NewBasePathFs(afero.NewOsFs(), mirror)), nil
		}))
	}
	return s3web.NewServer(opts...)
}

// locator from the first positional argument, or from the configured remote
func locator(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if config.Remote != "" {
		return config.Remote, nil
	}
	return "", errors.New("no remote specified: pass a locator, the --remote flag or set S3WEB_REMOTE")
}

func parseProperties(properties []string) (map[string]string, error) {
	additional := make(map[string]string, len(properties))
	for _, property := range properties {
		key, value, ok := strings.Cut(property, "=")
		if !ok || key == "" {
			return nil, errors.New("invalid property '" + property + "': expected key=value")
		}
		additional[key] = value
	}
	return additional, nil
}

func parseRemote(args []string) (remote.Remote, error) {
	loc, err := locator(args)
	if err != nil {
		return remote.Remote{}, err
	}
	additional, err := parseProperties(s3webFlags.remote.properties)
	if err != nil {
		return remote.Remote{}, err
	}
	return client.ParseLocator(loc, additional)
}

func parseTags(specs []string) ([]remote.TagFilter, error) {
	filters := make([]remote.TagFilter, 0, len(specs))
	for _, spec := range specs {
		filter, err := remote.ParseTagFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

func formatTags(tags map[string]interface{}) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := tags[k].(string); ok {
			pairs = append(pairs, k+"="+v)
			continue
		}
		pairs = append(pairs, k)
	}
	return strings.Join(pairs, ",")
}
