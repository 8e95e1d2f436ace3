package remote

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/oneconcern/s3web/pkg/remote/status"
)

// ValidateRemote decodes host-provided properties into a Remote.
//
// Exactly one property is accepted: a non-empty "url" string.
func ValidateRemote(properties map[string]interface{}) (Remote, error) {
	var r Remote
	if err := decodeStrict(properties, &r); err != nil {
		return Remote{}, status.ErrInvalidArgument.Wrap(err)
	}
	if r.URL == "" {
		return Remote{}, status.ErrInvalidArgument.Wrapf("missing required remote property 'url'")
	}
	return r, nil
}

// ValidateParameters decodes host-provided parameters. Only the empty mapping is accepted.
func ValidateParameters(parameters map[string]interface{}) (Parameters, error) {
	if len(parameters) > 0 {
		keys := make([]string, 0, len(parameters))
		for k := range parameters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return Parameters{}, status.ErrInvalidArgument.Wrapf("invalid parameter '%s'", keys[0])
	}
	return Parameters{}, nil
}

func decodeStrict(input map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
		Result: target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
