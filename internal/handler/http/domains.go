// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
)

func (h *Handler) createDomain(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoActor, "no actor in context")
		return
	}

	var input models.DomainInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "invalid domain body")
		return
	}
	input.OwnerID = &actor.UserID

	created, err := h.services.DomainService.CreateDomain(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "error creating domain")
		return
	}

	logger.FromRequest(r).Info().Int64("id", created.ID).Str("name", created.Name).Msg("domain created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listDomains(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.DomainService.ListDomains(r.Context(), domainFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, "error listing domains")
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) searchDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.services.DomainService.SearchDomains(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err, "error searching domains")
		return
	}

	utils.WriteJSON(w, domains, http.StatusOK)
}

func (h *Handler) getDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	domain, err := h.services.DomainService.GetDomain(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error getting domain")
		return
	}

	utils.WriteJSON(w, domain, http.StatusOK)
}

func (h *Handler) recommendDomains(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	domains, err := h.services.DomainService.RecommendDomains(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error recommending domains")
		return
	}

	utils.WriteJSON(w, domains, http.StatusOK)
}

func (h *Handler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	availability, err := h.services.AvailabilityService.CheckAvailability(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error checking availability")
		return
	}

	utils.WriteJSON(w, availability, http.StatusOK)
}

func (h *Handler) recordInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	domain, err := h.services.DomainService.RecordInquiry(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error recording inquiry")
		return
	}

	utils.WriteJSON(w, domain, http.StatusOK)
}

func (h *Handler) updateDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	var upd models.DomainUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid domain update body")
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())
	updated, err := h.services.DomainService.UpdateDomain(r.Context(), actor, id, upd)
	if err != nil {
		writeError(w, r, err, "error updating domain")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid domain id")
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())
	if err = h.services.DomainService.DeleteDomain(r.Context(), actor, id); err != nil {
		writeError(w, r, err, "error deleting domain")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "domain deleted"}, http.StatusOK)
}
