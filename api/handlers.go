package api

import (
	"time"

	"github.com/eduproject/catalog/admin"
	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/display"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, gate admin.Gate, tokens tokenSigner, startupTime time.Time) *routeHandlers {
	catalog := display.CatalogFromDatabase(database)

	return &routeHandlers{
		projectHandler:  newProjectHandler(database.ProjectRepo(), catalog),
		resourceHandler: newResourceHandler(database.ResourceRepo(), catalog),
		profileHandler:  newProfileHandler(database.ProfileRepo(), catalog),
		adminHandler:    newAdminHandler(database, gate, tokens),
		healthHandler:   newHealthHandler(startupTime),
	}
}
