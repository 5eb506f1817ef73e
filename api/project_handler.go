package api

import (
	"net/http"

	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/display"
	"github.com/eduproject/catalog/errs"
	"github.com/eduproject/catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	catalog     *display.Catalog
}

func newProjectHandler(projectRepo *database.ProjectRepo, catalog *display.Catalog) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		catalog:     catalog,
	}
}

// ProjectCollection is the home listing
type ProjectCollection struct {
	Projects []display.ProjectCard `json:"projects"`
	Total    int                   `json:"total"`
	Grid     display.Grid          `json:"grid"`
	Theme    display.Theme         `json:"theme"`
}

// getAllProjects lists the catalog, optionally filtered
// @Summary Get all projects
// @Description Retrieves all projects sorted by order. A fetch failure yields an empty list.
// @Tags Projects
// @Produce json
// @Param q query string false "Case-insensitive filter on title and category"
// @Success 200 {object} ProjectCollection "Projects with grid and theme"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home := h.catalog.Home(r.Context())
		cards := home.Filter(r.URL.Query().Get("q"))

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: cards,
			Total:    len(cards),
			Grid:     home.Grid,
			Theme:    home.Theme,
		})
	}
}

// getProject retrieves a project's detail view
// @Summary Get project
// @Description Retrieves the detail view of a project. Unknown ids answer 404 with the not-found view.
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} display.DetailView "Project detail"
// @Failure 404 {object} display.DetailView "Not Found - not-found view"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		view := h.catalog.Detail(r.Context(), projectID)
		if !view.Found {
			h.responder.WriteJSONStatus(w, http.StatusNotFound, view)
			return
		}
		h.responder.WriteJSON(w, view)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Validates and inserts a project. The store assigns the id.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Schema mismatch"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := h.responder.decodeBody(r, &project, "project"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.ID = ""
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Upsert(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Str("id", project.ID).Str("by", ctxGetAdminSubject(r.Context())).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject replaces an existing project
// @Summary Update project
// @Description Validates and writes a project under the id from the path. An unknown id is inserted.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Param project body models.Project true "Project data"
// @Success 200 {object} models.Project "Saved project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var project models.Project
		if err := h.responder.decodeBody(r, &project, "project"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches
		project.ID = projectID
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Upsert(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.logger.Info().Str("id", project.ID).Str("by", ctxGetAdminSubject(r.Context())).Msg("project updated")
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project. Deleting an unknown id succeeds.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
