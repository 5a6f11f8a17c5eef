package services

import (
	"strconv"

	"github.com/grouphub/user-group-services/internal/apperrors"
	"github.com/grouphub/user-group-services/models"
)

// The transform layer resolves opaque numeric identifiers from requests
// into entity references. An empty raw id resolves to no reference at all
// (an optional association, not an error); a non-empty id that matches
// nothing fails with NotFound naming the offending id, aborting the
// enclosing operation before any mutation.

func (s *Service) resolveUser(rawID string) (*models.User, *apperrors.Error) {
	if rawID == "" {
		return nil, nil
	}

	userID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apperrors.NotFound("An user with number %q does not exist!", rawID)
	}

	user, err := s.DB.GetUser(userID)
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("An user with number %q does not exist!", rawID)
	}
	return user, nil
}

func (s *Service) resolveGroup(rawID string) (*models.Group, *apperrors.Error) {
	if rawID == "" {
		return nil, nil
	}

	groupID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apperrors.NotFound("A group with number %q does not exist!", rawID)
	}

	group, err := s.DB.GetGroup(groupID)
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	if group == nil {
		return nil, apperrors.NotFound("A group with number %q does not exist!", rawID)
	}
	return group, nil
}
