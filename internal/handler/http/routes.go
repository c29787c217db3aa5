// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	staff := requireRoles(models.RoleAdmin, models.RoleModerator)
	admin := requireRoles(models.RoleAdmin)

	router.Route("/api", func(r chi.Router) {
		// credential endpoints, throttled per client IP
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/register", h.register)
			r.Post("/users", h.register)
			r.Post("/login", h.login)
			r.Post("/auth/refresh", h.refresh)
			r.Post("/auth/google/login", h.googleLogin)
			r.Get("/auth/google/callback", h.googleCallback)
		})

		// public catalogue
		r.Group(func(r chi.Router) {
			r.Get("/version/", h.getServerVersion)

			r.Get("/domains", h.listDomains)
			r.Get("/domains/search", h.searchDomains)
			r.Get("/domains/{id}", h.getDomain)
			r.Get("/domains/{id}/recommend", h.recommendDomains)
			r.Get("/domains/{id}/availability", h.checkAvailability)
			r.Post("/domains/{id}/inquiries", h.recordInquiry)

			r.Get("/categories", h.listCategories)
			r.Get("/categories/slug/{slug}", h.getCategoryBySlug)
			r.Get("/categories/{id}", h.getCategory)
			r.Get("/categories/{id}/domains", h.listCategoryDomains)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)

			r.Get("/users/me", h.me)
			r.With(admin).Get("/users", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Put("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)

			r.Post("/domains", h.createDomain)
			r.Patch("/domains/{id}", h.updateDomain)
			r.Delete("/domains/{id}", h.deleteDomain)

			r.With(staff).Post("/categories", h.createCategory)
			r.With(staff).Patch("/categories/{id}", h.updateCategory)
			r.With(staff).Delete("/categories/{id}", h.deleteCategory)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
