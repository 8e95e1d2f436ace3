// Package s3web implements a read-only remote provider for commits published on the web.
//
// The provider reads the layout produced by the S3 provider, through plain HTTP: any URL
// to the bucket works, even behind a CDN. Its purpose is to make public demo data available
// without requiring any credentials. It is not a general purpose remote.
//
// Locators look like:
//
//	s3web://demo.titan-data.io/hello-world/postgres
//
// and resolve to the base URL http://demo.titan-data.io/hello-world/postgres, under which
// the provider expects:
//
//	titan                         the commit metadata, one JSON object per line
//	<commit>/<volume>.tar.gz      the archive of each volume of a commit
package s3web

// Provider is the name under which hosts register this provider
const Provider = "s3web"

// Scheme of locators handled by this provider
const Scheme = "s3web"

const pushNotSupported = "push operations are not supported with s3web remotes"
