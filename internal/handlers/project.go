package handlers

import (
	"strconv"

	"charity/internal/models"
	"charity/internal/services/project"
	"charity/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	filter := models.ProjectFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "featured must be true or false")
		}
		filter.Featured = &featured
	}

	projects, err := h.projectService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Projects retrieved", projects)
}

// GetProject accepts either a numeric id or a slug.
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	p, err := h.projectService.Lookup(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project retrieved", p)
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input project.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	p, err := h.projectService.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Project created", p)
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	var patch project.Patch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	p, err := h.projectService.Update(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project updated", p)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.projectService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project deleted", nil)
}
