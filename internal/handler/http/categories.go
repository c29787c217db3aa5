// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "invalid category body")
		return
	}

	created, err := h.services.CategoryService.CreateCategory(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "error creating category")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.CategoryService.ListCategories(r.Context(), categoryFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, "error listing categories")
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid category id")
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error getting category")
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) getCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.services.CategoryService.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err, "error getting category by slug")
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) listCategoryDomains(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid category id")
		return
	}

	list, err := h.services.DomainService.ListCategoryDomains(r.Context(), id, domainFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, "error listing category domains")
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid category id")
		return
	}

	var upd models.CategoryUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid category update body")
		return
	}

	updated, err := h.services.CategoryService.UpdateCategory(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err, "error updating category")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteCategory removes a category. ?force=true also removes its domains.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid category id")
		return
	}

	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))

	deletion, err := h.services.CategoryService.DeleteCategory(r.Context(), id, force)
	if err != nil {
		writeError(w, r, err, "error deleting category")
		return
	}

	utils.WriteJSON(w, deletion, http.StatusOK)
}
