package handlers

import (
	"net/http"

	"github.com/grouphub/user-group-services/api/services"
)

func GetGroups(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetGroupsService(svc, w, r)
	}
}

func GetGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetGroupService(svc, w, r)
	}
}

func CreateGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateGroupService(svc, w, r)
	}
}

func UpdateGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateGroupService(svc, w, r)
	}
}

func DeleteGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteGroupService(svc, w, r)
	}
}
