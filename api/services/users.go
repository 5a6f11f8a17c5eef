package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/grouphub/user-group-services/api/middleware"
	"github.com/grouphub/user-group-services/internal/apperrors"
	"github.com/grouphub/user-group-services/internal/validation"
	"github.com/grouphub/user-group-services/models"
)

// GetUsersService retrieves all users.
func GetUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	users, err := svc.DB.GetUsers()
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving users")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Int("user_count", len(users)).Msg("Successfully retrieved users")
	WriteSuccess(w, http.StatusOK, models.ProjectUsers(users))
}

// GetUserService retrieves a single user by id.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID := mux.Vars(r)["userId"]
	user, appErr := findUserByPathID(svc, userID)
	if appErr != nil {
		logger.Warn().Str("user_id", userID).Msg("User not found")
		WriteError(w, appErr)
		return
	}

	WriteSuccess(w, http.StatusOK, models.ProjectUser(*user))
}

// WhoAmIService projects the caller resolved from the request api token.
func WhoAmIService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing caller identity")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	WriteSuccess(w, http.StatusOK, models.ProjectUser(*caller))
}

// CreateUserService registers a new user. The password is hashed by the
// injected hasher and a fresh api token is generated.
// Sequence: validate → mutate → persist (email uniqueness) → project.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validateNewUser(req); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	hashed, err := svc.Hasher.Hash(*req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		WriteError(w, apperrors.Internal(err))
		return
	}

	user := &models.User{
		Name:     *req.Name,
		Email:    *req.Email,
		Password: hashed,
		APIToken: svc.NewToken(),
		Roles:    req.Role,
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}

	user, err = svc.DB.CreateUser(user)
	if err != nil {
		logger.Error().Err(err).Str("email", *req.Email).Msg("Database error creating user")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Int("user_id", user.ID).Msg("User created successfully")
	location := fmt.Sprintf("%s/%d", r.URL.Path, user.ID)
	WriteSuccess(w, http.StatusCreated, models.ProjectUser(*user), location)
}

// UpdateUserService partially updates a user. A changed email invalidates
// the identity-bound api token, so a fresh one is generated alongside it.
// Sequence: resolve → validate → mutate → persist → project.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID := mux.Vars(r)["userId"]
	user, appErr := findUserByPathID(svc, userID)
	if appErr != nil {
		WriteError(w, appErr)
		return
	}

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, apperrors.Validation(map[string]string{"body_error": "invalid request payload"}))
		return
	}

	if errs := validateUserData(req); len(errs) > 0 {
		WriteError(w, apperrors.Validation(errs))
		return
	}

	if req.Email != nil {
		user.Email = *req.Email
		user.APIToken = svc.NewToken()
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Roles = req.Role
	}
	if req.Password != nil {
		hashed, err := svc.Hasher.Hash(*req.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash password")
			WriteError(w, apperrors.Internal(err))
			return
		}
		user.Password = hashed
	}

	if err := svc.DB.UpdateUser(user); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Database error updating user")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Str("user_id", userID).Msg("User updated successfully")
	WriteSuccess(w, http.StatusOK, models.ProjectUser(*user))
}

// DeleteUserService deletes a user. Memberships referencing the user are
// removed by the store's cascade; groups remain.
func DeleteUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID := mux.Vars(r)["userId"]
	user, appErr := findUserByPathID(svc, userID)
	if appErr != nil {
		WriteError(w, appErr)
		return
	}

	if err := svc.DB.DeleteUser(user.ID); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Database error deleting user")
		WriteError(w, apperrors.FromStore(err))
		return
	}

	logger.Info().Str("user_id", userID).Msg("User deleted successfully")
	WriteSuccess(w, http.StatusOK, fmt.Sprintf("User id:%d deleted", user.ID))
}

// validateUserData checks only the fields present in a partial update.
func validateUserData(req models.UserRequest) map[string]string {
	errs := map[string]string{}
	if req.Email != nil {
		if msg := validation.ValidateEmail(*req.Email); msg != "" {
			errs["email_error"] = msg
		}
	}
	if req.Role != nil {
		if msg := validation.ValidateRole(req.Role); msg != "" {
			errs["role_error"] = msg
		}
	}
	return errs
}

// validateNewUser additionally requires the registration fields.
func validateNewUser(req models.UserRequest) map[string]string {
	errs := validateUserData(req)
	if req.Email == nil {
		errs["email_error"] = "email is a required parameter"
	}
	if req.Password == nil || *req.Password == "" {
		errs["password_error"] = "password is a required parameter"
	}
	if req.Name == nil || *req.Name == "" {
		errs["name_error"] = "name is a required parameter"
	}
	return errs
}

// findUserByPathID looks up the user addressed by a path parameter.
func findUserByPathID(svc *Service, rawID string) (*models.User, *apperrors.Error) {
	userID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apperrors.NotFound("No user with id %s", rawID)
	}

	user, dbErr := svc.DB.GetUser(userID)
	if dbErr != nil {
		return nil, apperrors.FromStore(dbErr)
	}
	if user == nil {
		return nil, apperrors.NotFound("No user with id %s", rawID)
	}
	return user, nil
}
