package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedNode is matched by every *UnsupportedNodeError.
	ErrUnsupportedNode = errors.New("unsupported node")
	// ErrMalformedNode is matched by every *MalformedNodeError.
	ErrMalformedNode = errors.New("malformed node")
)

// UnsupportedNodeError is returned when no registered converter accepts a
// node.
type UnsupportedNodeError struct {
	Tag string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("no converter for %s node", e.Tag)
}

func (e *UnsupportedNodeError) Unwrap() error { return ErrUnsupportedNode }

// MalformedNodeError is returned when a converter is handed a node it does
// not accept. It means the registry routed a node incorrectly.
type MalformedNodeError struct {
	Converter string
	Tag       string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("%s converter cannot convert %s node", e.Converter, e.Tag)
}

func (e *MalformedNodeError) Unwrap() error { return ErrMalformedNode }

// NodeError records a top-level node that was skipped during document
// assembly.
type NodeError struct {
	Index int
	Tag   string
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index, e.Tag, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
