package remote

import (
	"testing"

	"github.com/oneconcern/s3web/pkg/remote/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRemote(t *testing.T) {
	r, err := ValidateRemote(map[string]interface{}{"url": "url"})
	require.NoError(t, err)
	assert.Equal(t, "url", r.URL)
	assert.Equal(t, map[string]interface{}{"url": "url"}, r.Map())

	for _, toPin := range []struct {
		name  string
		props map[string]interface{}
	}{
		{name: "nil", props: nil},
		{name: "empty", props: map[string]interface{}{}},
		{name: "extra property", props: map[string]interface{}{"url": "url", "foo": "bar"}},
		{name: "only unknown", props: map[string]interface{}{"foo": "bar"}},
		{name: "wrong type", props: map[string]interface{}{"url": 42}},
		{name: "empty url", props: map[string]interface{}{"url": ""}},
		{name: "upper-case key", props: map[string]interface{}{"URL": "http://host/path"}},
		{name: "mixed-case key", props: map[string]interface{}{"Url": "http://host/path"}},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			_, err := ValidateRemote(fixture.props)
			require.Error(t, err)
			assert.Equal(t, status.KindInvalidArgument, status.KindOf(err))
		})
	}
}

func TestValidateParameters(t *testing.T) {
	_, err := ValidateParameters(map[string]interface{}{})
	require.NoError(t, err)

	_, err = ValidateParameters(nil)
	require.NoError(t, err)

	_, err = ValidateParameters(map[string]interface{}{"foo": "bar"})
	require.Error(t, err)
	assert.Equal(t, status.KindInvalidArgument, status.KindOf(err))
	assert.Contains(t, err.Error(), "'foo'")
}

func TestOperationType(t *testing.T) {
	var typ OperationType
	require.NoError(t, typ.UnmarshalText([]byte("PUSH")))
	assert.Equal(t, Push, typ)

	b, err := Pull.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pull", string(b))

	err = typ.UnmarshalText([]byte("sync"))
	assert.Equal(t, status.KindInvalidArgument, status.KindOf(err))
}

func TestOperationState(t *testing.T) {
	op := NewOperation(Pull, Remote{URL: "http://host/path"}, "operation", "commit")
	assert.Equal(t, Created, op.State())
	op.SetState(Started)
	assert.Equal(t, "started", op.State().String())
}
