package s3web

import (
	"net/url"
	"sort"
	"strings"

	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/oneconcern/s3web/pkg/remote/status"
	"go.uber.org/multierr"
)

var _ remote.Client = &Client{}

// Client translates s3web locators into connection properties.
//
// Resources are always accessed over plain HTTP.
type Client struct{}

// NewClient builds a locator translator
func NewClient() *Client {
	return &Client{}
}

// ProviderName returns "s3web"
func (*Client) ProviderName() string {
	return Provider
}

// ParseLocator parses s3web://host[:port][/path] into connection properties.
//
// Credentials and additional properties are refused. The path is copied from the locator as is:
// it is neither decoded nor escaped.
func (*Client) ParseLocator(locator string, additional map[string]string) (remote.Remote, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return remote.Remote{}, status.ErrInvalidArgument.Wrap(err)
	}

	if u.Scheme != Scheme {
		return remote.Remote{}, status.ErrInvalidArgument.Wrapf("invalid scheme %q for s3web remote", u.Scheme)
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return remote.Remote{}, status.ErrInvalidArgument.Wrapf("username and password cannot be specified for s3web remote")
		}
		return remote.Remote{}, status.ErrInvalidArgument.Wrapf("username cannot be specified for s3web remote")
	}

	host := u.Hostname()
	if host == "" {
		return remote.Remote{}, status.ErrInvalidArgument.Wrapf("missing host in s3web remote")
	}

	if err := refuseProperties(additional); err != nil {
		return remote.Remote{}, err
	}

	var b strings.Builder
	b.WriteString("http://")
	if strings.Contains(host, ":") {
		// IPv6 literal
		b.WriteString("[" + host + "]")
	} else {
		b.WriteString(host)
	}
	if port := u.Port(); port != "" {
		b.WriteString(":" + port)
	}
	b.WriteString(rawPath(locator))

	return remote.Remote{URL: b.String()}, nil
}

// rawPath returns the path of a locator as written, neither decoded nor re-encoded
func rawPath(locator string) string {
	_, rest, _ := strings.Cut(locator, "://")
	i := strings.IndexAny(rest, "/?#")
	if i < 0 || rest[i] != '/' {
		return ""
	}
	path := rest[i:]
	if j := strings.IndexAny(path, "?#"); j >= 0 {
		path = path[:j]
	}
	return path
}

func refuseProperties(additional map[string]string) error {
	if len(additional) == 0 {
		return nil
	}
	keys := make([]string, 0, len(additional))
	for k := range additional {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs error
	for _, k := range keys {
		errs = multierr.Append(errs, status.ErrInvalidArgument.Wrapf("invalid remote property '%s'", k))
	}
	return errs
}

// ToLocator returns the locator for some connection properties.
//
// The first occurrence of "http" in the URL is replaced by the s3web scheme.
// There are no additional properties.
func (*Client) ToLocator(r remote.Remote) (string, map[string]string) {
	return strings.Replace(r.URL, "http", Scheme, 1), map[string]string{}
}

// Parameters returns the per-operation parameters, which are always empty
func (*Client) Parameters(remote.Remote) map[string]interface{} {
	return map[string]interface{}{}
}
