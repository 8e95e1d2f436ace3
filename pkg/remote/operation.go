package remote

import (
	"strings"

	"github.com/oneconcern/s3web/pkg/remote/status"
)

// OperationType tells a pull from a push
type OperationType uint8

// Operation types
const (
	Pull OperationType = iota
	Push
)

func (t OperationType) String() string {
	switch t {
	case Pull:
		return "pull"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (t OperationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *OperationType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "pull":
		*t = Pull
	case "push":
		*t = Push
	default:
		return status.ErrInvalidArgument.Wrapf("unknown operation type %q", string(text))
	}
	return nil
}

// OperationState tracks where an operation stands in its lifecycle
type OperationState uint8

// Operation states
const (
	Created OperationState = iota
	Started
	Ended
)

func (s OperationState) String() string {
	switch s {
	case Created:
		return "created"
	case Started:
		return "started"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Operation is a unit of work driven by a host against a remote.
//
// Hosts build operations and pass the same value to every call of the operation.
// Providers only record the lifecycle state on it.
type Operation struct {
	Type        OperationType
	Remote      Remote
	Parameters  Parameters
	OperationID string
	CommitID    string
	Commit      map[string]interface{}

	state OperationState
}

// NewOperation builds an operation for some commit
func NewOperation(typ OperationType, r Remote, operationID, commitID string) *Operation {
	return &Operation{
		Type:        typ,
		Remote:      r,
		OperationID: operationID,
		CommitID:    commitID,
	}
}

// State of the operation
func (o *Operation) State() OperationState {
	return o.state
}

// SetState is reserved to providers
func (o *Operation) SetState(s OperationState) {
	o.state = s
}
