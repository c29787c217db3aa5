// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/domain-marketplace/internal/service"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoActor, "no actor in context")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, r, err, "error getting current user")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.UserService.ListUsers(r.Context(), userFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}
	if list.Users == nil {
		list.Users = []models.User{}
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())
	if actor.UserID != id && actor.Role != models.RoleAdmin {
		writeError(w, r, service.ErrForbidden, "foreign profile requested")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error getting user")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	var upd models.UserUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid user update body")
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())
	updated, err := h.services.UserService.UpdateUser(r.Context(), actor, id, upd)
	if err != nil {
		writeError(w, r, err, "error updating user")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())
	if err = h.services.UserService.DeleteUser(r.Context(), actor, id); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "user deleted"}, http.StatusOK)
}
