package model

const (
	// TimestampProperty holds the ISO-8601 creation time of a commit
	TimestampProperty = "timestamp"

	// TagsProperty holds a string to string mapping of tags
	TagsProperty = "tags"
)

// Properties of a commit, as found in the manifest. Values are arbitrary JSON values.
type Properties map[string]interface{}

// Timestamp of the commit, or the empty string when missing or not a string
func (p Properties) Timestamp() string {
	ts, _ := p[TimestampProperty].(string)
	return ts
}

// Tags of the commit. Returns nil when there are no tags, or they are not a JSON object.
func (p Properties) Tags() map[string]interface{} {
	tags, _ := p[TagsProperty].(map[string]interface{})
	return tags
}

// Tag returns the value of a tag and whether it is present
func (p Properties) Tag(key string) (interface{}, bool) {
	tags := p.Tags()
	if tags == nil {
		return nil, false
	}
	v, ok := tags[key]
	return v, ok
}

// Commit represents an immutable snapshot published on a remote, identified by its ID.
type Commit struct {
	ID         string     `json:"id" yaml:"id"`
	Properties Properties `json:"properties" yaml:"properties"`
	_          struct{}
}

// Commits is a list of commits
type Commits []Commit

// IDs of the commits, in order
func (c Commits) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, commit := range c {
		ids = append(ids, commit.ID)
	}
	return ids
}

// Find the first commit with a given ID
func (c Commits) Find(id string) (Commit, bool) {
	for _, commit := range c {
		if commit.ID == id {
			return commit, true
		}
	}
	return Commit{}, false
}
