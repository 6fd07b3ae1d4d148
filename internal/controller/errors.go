// Package controller orchestrates the multi-step entity operations and
// translates GraphQL-shaped results into domain outcomes. Every mutating
// operation runs an existence read first and short-circuits with NotFound
// before any mutation is issued.
package controller

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
)

// NotFoundError means the target entity does not exist (or the id could
// never address one). Msg is the user-facing detail.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// BackendError wraps the backend's GraphQL errors array. The array itself
// is passed through to the client as the response detail.
type BackendError struct {
	Errors []graphql.Error
}

func (e *BackendError) Error() string {
	if len(e.Errors) == 0 {
		return "backend error"
	}
	return fmt.Sprintf("backend error: %s", e.Errors[0].Message)
}

// Domain-specific login/registration outcomes.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// decode unmarshals the envelope's data into v. An absent data field is a
// malformed envelope at this point, since callers check Errors first.
func decode(resp *graphql.Response, v interface{}) error {
	if resp == nil || len(resp.Data) == 0 {
		return errors.New("backend envelope has no data")
	}
	if err := json.Unmarshal(resp.Data, v); err != nil {
		return errors.Wrap(err, "decode backend data")
	}
	return nil
}
