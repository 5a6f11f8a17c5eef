package handlers

import (
	"net/http"

	"github.com/grouphub/user-group-services/api/services"
)

func GetUsers(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUsersService(svc, w, r)
	}
}

func GetUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUserService(svc, w, r)
	}
}

func WhoAmI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.WhoAmIService(svc, w, r)
	}
}

func CreateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateUserService(svc, w, r)
	}
}

func UpdateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateUserService(svc, w, r)
	}
}

func DeleteUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteUserService(svc, w, r)
	}
}
