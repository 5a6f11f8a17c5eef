package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/grouphub/user-group-services/internal/apperrors"
	"github.com/grouphub/user-group-services/internal/validation"
	"github.com/grouphub/user-group-services/models"
)

// GetGroupsService retrieves all groups with their members.
func GetGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groups, err := svc.DB.GetGroups()
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving groups")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Int("group_count", len(groups)).Msg("Successfully retrieved groups")
	WriteSuccess(w, http.StatusOK, models.ProjectGroups(groups))
}

// GetGroupService retrieves a single group by id.
func GetGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID := mux.Vars(r)["groupId"]
	group, appErr := findGroupByPathID(svc, groupID)
	if appErr != nil {
		logger.Warn().Str("group_id", groupID).Msg("Group not found")
		WriteError(w, appErr)
		return
	}

	WriteSuccess(w, http.StatusOK, models.ProjectGroup(*group))
}

// CreateGroupService creates a new group.
// Sequence: validate → persist (uniqueness constraint) → project.
func CreateGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validation.ValidateGroupData(req.Fullname); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	group, err := svc.DB.CreateGroup(req.Fullname)
	if err != nil {
		logger.Error().Err(err).Str("fullname", req.Fullname).Msg("Database error creating group")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Int("group_id", group.ID).Msg("Group created successfully")
	location := fmt.Sprintf("%s/%d", r.URL.Path, group.ID)
	WriteSuccess(w, http.StatusCreated, models.ProjectGroup(*group), location)
}

// UpdateGroupService renames an existing group.
// Sequence: resolve → validate → mutate → persist → project.
func UpdateGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID := mux.Vars(r)["groupId"]
	group, appErr := findGroupByPathID(svc, groupID)
	if appErr != nil {
		WriteError(w, appErr)
		return
	}

	var req models.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validation.ValidateGroupData(req.Fullname); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	group.Fullname = req.Fullname
	if err := svc.DB.UpdateGroup(group); err != nil {
		logger.Error().Err(err).Str("group_id", groupID).Msg("Database error updating group")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Str("group_id", groupID).Msg("Group updated successfully")
	WriteSuccess(w, http.StatusOK, models.ProjectGroup(*group))
}

// DeleteGroupService deletes a group. Memberships referencing the group
// are removed by the store's cascade; its users remain.
func DeleteGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID := mux.Vars(r)["groupId"]
	group, appErr := findGroupByPathID(svc, groupID)
	if appErr != nil {
		WriteError(w, appErr)
		return
	}

	if err := svc.DB.DeleteGroup(group.ID); err != nil {
		logger.Error().Err(err).Str("group_id", groupID).Msg("Database error deleting group")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Str("group_id", groupID).Msg("Group deleted successfully")
	WriteSuccess(w, http.StatusOK, fmt.Sprintf("Group id:%d deleted", group.ID))
}

// findGroupByPathID looks up the group addressed by a path parameter, failing
// with the NotFound message callers expect.
func findGroupByPathID(svc *Service, rawID string) (*models.Group, *apperrors.Error) {
	groupID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apperrors.NotFound("Group with id: %s not found", rawID)
	}

	group, dbErr := svc.DB.GetGroup(groupID)
	if dbErr != nil {
		return nil, apperrors.FromStore(dbErr)
	}
	if group == nil {
		return nil, apperrors.NotFound("Group with id: %s not found", rawID)
	}
	return group, nil
}
