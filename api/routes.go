package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the read-only catalog routes
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/resources", handlers.resourceHandler.getAllResources())
		r.Get("/profile", handlers.profileHandler.getProfile())
	})
}

// setupAdminRoutes sets up the login route and the token protected edit routes
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/login", handlers.adminHandler.login())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/refresh", handlers.adminHandler.refresh())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/resources", handlers.resourceHandler.createResource())
			r.Put("/resources/{resourceID}", handlers.resourceHandler.updateResource())
			r.Delete("/resources/{resourceID}", handlers.resourceHandler.deleteResource())

			r.Put("/profile", handlers.profileHandler.saveProfile())
			r.Patch("/profile/layout", handlers.profileHandler.patchLayout())
			r.Patch("/profile/theme", handlers.profileHandler.patchTheme())
		})
	})
}
