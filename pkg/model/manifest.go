package model

import (
	"io"
	"io/ioutil"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	// ManifestPath is the location of the manifest, relative to the remote root
	ManifestPath = "titan"

	archiveExt = ".tar.gz"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetArchivePathToVolume returns the location of the archive of a volume, relative to the remote root
func GetArchivePathToVolume(commitID, volume string) string {
	return commitID + "/" + volume + archiveExt
}

// SkippedLine describes a manifest line that did not yield a commit
type SkippedLine struct {
	Line   int // 1-based
	Reason string
}

// ManifestOption alters how a manifest is decoded
type ManifestOption func(*manifestOpts)

type manifestOpts struct {
	onSkip func(SkippedLine)
}

// OnSkip registers a callback invoked for each skipped line
func OnSkip(fn func(SkippedLine)) ManifestOption {
	return func(o *manifestOpts) {
		o.onSkip = fn
	}
}

type manifestLine struct {
	ID         *string                 `json:"id"`
	Properties *map[string]interface{} `json:"properties"`
}

// DecodeManifest reads a whole manifest and returns its commits in line order.
//
// Blank lines are ignored. Lines which are not JSON objects, or which lack a string "id"
// or an object "properties", are skipped. Only errors from the reader are reported.
func DecodeManifest(r io.Reader, opts ...ManifestOption) (Commits, error) {
	var o manifestOpts
	for _, apply := range opts {
		apply(&o)
	}
	skip := func(line int, reason string) {
		if o.onSkip != nil {
			o.onSkip(SkippedLine{Line: line, Reason: reason})
		}
	}

	body, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	commits := make(Commits, 0)
	for i, line := range strings.Split(string(body), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry manifestLine
		if err := json.UnmarshalFromString(line, &entry); err != nil {
			skip(i+1, err.Error())
			continue
		}
		if entry.ID == nil || entry.Properties == nil || *entry.Properties == nil {
			skip(i+1, "missing id or properties")
			continue
		}
		commits = append(commits, Commit{ID: *entry.ID, Properties: *entry.Properties})
	}
	return commits, nil
}
