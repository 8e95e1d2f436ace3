package remote

import (
	"sort"
	"strings"

	"github.com/oneconcern/s3web/pkg/model"
	"github.com/oneconcern/s3web/pkg/remote/status"
)

// TagFilter selects commits carrying a tag. When Value is nil, the presence of the tag is enough.
type TagFilter struct {
	Key   string
	Value *string
}

// HasTag builds a filter on the presence of a tag
func HasTag(key string) TagFilter {
	return TagFilter{Key: key}
}

// TagEquals builds a filter on the value of a tag
func TagEquals(key, value string) TagFilter {
	return TagFilter{Key: key, Value: &value}
}

// ParseTagFilter parses "key=value" or "key"
func ParseTagFilter(spec string) (TagFilter, error) {
	key, value, hasValue := strings.Cut(spec, "=")
	if key == "" {
		return TagFilter{}, status.ErrInvalidArgument.Wrapf("invalid tag filter %q", spec)
	}
	if !hasValue {
		return HasTag(key), nil
	}
	return TagEquals(key, value), nil
}

func (f TagFilter) String() string {
	if f.Value == nil {
		return f.Key
	}
	return f.Key + "=" + *f.Value
}

// Match tells if some commit properties satisfy the filter
func (f TagFilter) Match(props model.Properties) bool {
	v, ok := props.Tag(f.Key)
	if !ok {
		return false
	}
	if f.Value == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == *f.Value
}

// MatchTags tells if some commit properties satisfy all filters
func MatchTags(props model.Properties, filters []TagFilter) bool {
	for _, f := range filters {
		if !f.Match(props) {
			return false
		}
	}
	return true
}

// FilterCommits keeps the commits matching all filters, in order
func FilterCommits(commits model.Commits, filters []TagFilter) model.Commits {
	matching := make(model.Commits, 0, len(commits))
	for _, c := range commits {
		if MatchTags(c.Properties, filters) {
			matching = append(matching, c)
		}
	}
	return matching
}

// SortDescending orders commits from the most recent timestamp to the oldest.
//
// Timestamps are compared as ISO-8601 strings. Commits sharing a timestamp keep their
// relative order. Commits without a timestamp come last.
func SortDescending(commits model.Commits) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Properties.Timestamp() > commits[j].Properties.Timestamp()
	})
}
