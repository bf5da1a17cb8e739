package repositories

import (
	"fmt"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
)

// FetchError is a network or transport failure while reaching the remote
// source. Message carries the server-provided message when one was present.
type FetchError struct {
	Kind    content.Kind
	Op      string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s", e.Kind, e.Op, e.Message)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError is a non-JSON or malformed-envelope response.
type DecodeError struct {
	Kind content.Kind
	Op   string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: malformed response: %v", e.Kind, e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EmptyConfigError means the level-configuration endpoint answered with an
// empty mapping. Empty is invalid, not "no levels".
type EmptyConfigError struct{}

func (e *EmptyConfigError) Error() string {
	return "level configuration returned an empty mapping"
}

// NotFoundError means a detail lookup yielded neither a cached summary nor an
// authoritative record.
type NotFoundError struct {
	Kind content.Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
