// Package model describes the commits published by remotes, and how they are
// decoded from a remote metadata manifest.
//
// The manifest is a newline-delimited JSON file, one commit per line:
//
//	{"id": "<commit id>", "properties": {"timestamp": "2019-09-20T13:45:36Z", "tags": {"k": "v"}}}
package model
