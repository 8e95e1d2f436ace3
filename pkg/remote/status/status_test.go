package status

import (
	"fmt"
	"testing"

	"github.com/oneconcern/s3web/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")

	for _, toPin := range []struct {
		name string
		err  error
		kind Kind
	}{
		{name: "nil", err: nil, kind: KindOK},
		{name: "invalid", err: ErrInvalidArgument.Wrapf("invalid remote property 'foo'"), kind: KindInvalidArgument},
		{name: "wrapped invalid", err: fmt.Errorf("parse: %w", ErrInvalidArgument), kind: KindInvalidArgument},
		{name: "unsupported", err: ErrNotSupported.Wrapf("push"), kind: KindNotSupported},
		{name: "remote io", err: NewRemoteIOError("http://host/titan", 403, nil), kind: KindRemoteIO},
		{name: "unreachable", err: NewRemoteIOError("http://host/titan", 0, cause), kind: KindRemoteIO},
		{name: "other", err: cause, kind: KindUnknown},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			assert.Equal(t, fixture.kind, KindOf(fixture.err))
		})
	}
}

func TestRemoteIOError(t *testing.T) {
	err := fmt.Errorf("list commits: %w", NewRemoteIOError("http://host/titan", 403, nil))

	var rerr *RemoteIOError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "http://host/titan", rerr.URL)
	assert.Equal(t, 403, rerr.StatusCode)
	assert.Equal(t, "list commits: failed to get http://host/titan, error code 403", err.Error())

	cause := errors.New("connection refused")
	unreachable := NewRemoteIOError("http://host/titan", 0, cause)
	assert.True(t, errors.Is(unreachable, cause))
	assert.True(t, errors.Is(unreachable, ErrRemoteIO))
	assert.Equal(t, "failed to get http://host/titan: connection refused", unreachable.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not supported", KindNotSupported.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
