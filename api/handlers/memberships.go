package handlers

import (
	"net/http"

	"github.com/grouphub/user-group-services/api/services"
)

func AddMembership(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.AddMembershipService(svc, w, r)
	}
}

func RemoveMembership(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RemoveMembershipService(svc, w, r)
	}
}
