// Package token generates the opaque api tokens bound to a user's
// identity. A token is regenerated whenever the owning email changes.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces a fresh api token. Injectable so tests can pin the
// value.
type Generator func() string

// New returns a 32-character lowercase hex token.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
