// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
)

// Store implementations know how to read and write objects in a K/V model.
//
// Typically this is something file system-like. Examples are a web server, local FS, ...
// Read-only implementations return status.ErrNotSupported from the write path.
//
// Get returns status.ErrNotExists (possibly wrapped) when the key is absent.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
}

// Locator is implemented by stores able to resolve a key into a fully qualified location,
// such as a URL. It is used to report where an object was looked up.
type Locator interface {
	Location(key string) string
}

// Location resolves a key against a store, falling back on "<store>/<key>"
func Location(store Store, key string) string {
	if l, ok := store.(Locator); ok {
		return l.Location(key)
	}
	return store.String() + "/" + key
}

// PipeIO copies a reader into a writer, preferring io.WriterTo when available
func PipeIO(writer io.Writer, reader io.Reader) (int64, error) {
	if wt, ok := reader.(io.WriterTo); ok {
		return wt.WriteTo(writer)
	}
	return io.Copy(writer, reader)
}
