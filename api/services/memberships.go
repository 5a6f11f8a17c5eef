package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/grouphub/user-group-services/internal/apperrors"
	"github.com/grouphub/user-group-services/internal/validation"
	"github.com/grouphub/user-group-services/models"
)

// AddMembershipService joins a user to a group.
// Sequence: validate → resolve both sides → persist → project. There is
// no duplicate pre-check; the store's composite uniqueness constraint
// rejects a second insert of the same pair and surfaces as a conflict.
func AddMembershipService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validation.ValidateUserGroupData(req.UserID, req.GroupID); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	user, appErr := svc.resolveUser(req.UserID)
	if appErr != nil {
		logger.Warn().Str("user_id", req.UserID).Msg("Could not resolve user")
		WriteError(w, appErr)
		return
	}
	group, appErr := svc.resolveGroup(req.GroupID)
	if appErr != nil {
		logger.Warn().Str("group_id", req.GroupID).Msg("Could not resolve group")
		WriteError(w, appErr)
		return
	}

	if _, err := svc.DB.CreateMembership(user.ID, group.ID); err != nil {
		logger.Error().Err(err).
			Str("user_id", req.UserID).
			Str("group_id", req.GroupID).
			Msg("Database error creating membership")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().
		Str("user_id", req.UserID).
		Str("group_id", req.GroupID).
		Msg("User added to group successfully")
	WriteSuccess(w, http.StatusCreated, models.ProjectMembership(*user, *group))
}

// RemoveMembershipService removes a user from a group.
// Sequence: validate → look up the exact (user, group) pair → delete.
func RemoveMembershipService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validation.ValidateUserGroupData(req.UserID, req.GroupID); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	membership, appErr := findMembership(svc, req.UserID, req.GroupID)
	if appErr != nil {
		logger.Warn().
			Str("user_id", req.UserID).
			Str("group_id", req.GroupID).
			Msg("Membership not found")
		WriteError(w, appErr)
		return
	}

	if err := svc.DB.DeleteMembership(membership.ID); err != nil {
		logger.Error().Err(err).
			Str("user_id", req.UserID).
			Str("group_id", req.GroupID).
			Msg("Database error deleting membership")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().
		Str("user_id", req.UserID).
		Str("group_id", req.GroupID).
		Msg("User removed from group successfully")
	WriteSuccess(w, http.StatusOK,
		fmt.Sprintf("User id: %s removed from Group id: %s", req.UserID, req.GroupID))
}

// findMembership looks up the join record for a raw (user, group) pair.
// A pair with no record, including unparseable ids, is "not a member".
func findMembership(svc *Service, rawUserID, rawGroupID string) (*models.UserGroup, *apperrors.Error) {
	notMember := apperrors.NotFound("User id: %s is not member of Group id: %s", rawUserID, rawGroupID)

	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		return nil, notMember
	}
	groupID, err := strconv.Atoi(rawGroupID)
	if err != nil {
		return nil, notMember
	}

	membership, dbErr := svc.DB.GetMembership(userID, groupID)
	if dbErr != nil {
		return nil, apperrors.FromStore(dbErr)
	}
	if membership == nil {
		return nil, notMember
	}
	return membership, nil
}
