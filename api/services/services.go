package services

import (
	"github.com/grouphub/user-group-services/db"
	"github.com/grouphub/user-group-services/internal/appconfig"
	"github.com/grouphub/user-group-services/internal/password"
	"github.com/grouphub/user-group-services/internal/token"
)

// Service contains all shared dependencies for handlers: the store, the
// injected password hasher and the api-token generator.
type Service struct {
	Config   *appconfig.Config
	DB       *db.MembershipDB
	Hasher   password.Hasher
	NewToken token.Generator
}
