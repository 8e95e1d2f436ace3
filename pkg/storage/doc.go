// Copyright © 2018 One Concern

// Package storage provides interface to handle backend storage objects.
//
// This package supports the following backends:
//   - web: read-only objects served over plain HTTP
//   - local file system (afero)
//
// Stores are addressed by slash-separated keys relative to the store root.
package storage
