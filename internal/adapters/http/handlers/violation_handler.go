package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"vvms/internal/adapters/persistence/models"
	"vvms/internal/core/domain"
	"vvms/internal/core/services"
	"vvms/internal/pkg/pagination"
	"vvms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ViolationHandler handles violation record endpoints
type ViolationHandler struct {
	violationService *services.ViolationService
	exportService    *services.ExportService
}

// NewViolationHandler creates a new violation handler
func NewViolationHandler(violationService *services.ViolationService, exportService *services.ExportService) *ViolationHandler {
	return &ViolationHandler{
		violationService: violationService,
		exportService:    exportService,
	}
}

// toResponses maps violation models to response DTOs
func toResponses(violations []*models.Violation) []*models.ViolationResponse {
	out := make([]*models.ViolationResponse, len(violations))
	for i, v := range violations {
		out[i] = v.ToResponse()
	}
	return out
}

// Create handles violation creation
// @Summary Create violation
// @Description Create a new violation record
// @Tags Violations
// @Accept json
// @Produce json
// @Param body body services.ViolationInput true "Violation data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /violations [post]
func (h *ViolationHandler) Create(c *fiber.Ctx) error {
	var input services.ViolationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	violation, err := h.violationService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to create violation")
	}

	return response.Created(c, "Violation record created successfully", violation.ToResponse())
}

// List handles paginated listing of violations
// @Summary List violations
// @Description List violation records, newest first
// @Tags Violations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Envelope
// @Router /violations [get]
func (h *ViolationHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	violations, total, err := h.violationService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch violations")
	}

	return response.Success(c, "Violations fetched successfully",
		pagination.NewResponse(toResponses(violations), params, total))
}

// GetByID handles fetching a single violation with all fields
// @Summary Get violation
// @Description Get a violation record by ID
// @Tags Violations
// @Produce json
// @Param id path int true "Violation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id} [get]
func (h *ViolationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid violation ID")
	}

	violation, err := h.violationService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrViolationNotFound) {
			return response.NotFound(c, "Violation not found")
		}
		return response.InternalServerError(c, "Failed to fetch violation")
	}

	return response.Success(c, "Violation fetched successfully", violation.ToResponse())
}

// Search handles violation search
// @Summary Search violations
// @Description Search violations by plate, violation type, location or officer
// @Tags Violations
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Router /violations/search [get]
func (h *ViolationHandler) Search(c *fiber.Ctx) error {
	violations, err := h.violationService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return response.InternalServerError(c, "Failed to search violations")
	}

	return response.Success(c, "Search completed", toResponses(violations))
}

// GetByStatus handles filtering violations by status
// @Summary Filter by status
// @Description List violations with a given status
// @Tags Violations
// @Produce json
// @Param status path string true "Violation status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /violations/status/{status} [get]
func (h *ViolationHandler) GetByStatus(c *fiber.Ctx) error {
	// Statuses can contain spaces ("Under Review") so the segment arrives escaped
	status, err := url.PathUnescape(c.Params("status"))
	if err != nil {
		return response.BadRequest(c, "Invalid status")
	}

	violations, err := h.violationService.GetByStatus(c.Context(), status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to filter violations")
	}

	return response.Success(c, "Violations fetched successfully", toResponses(violations))
}

// Update handles full update of a violation
// @Summary Update violation
// @Description Replace all mutable fields of a violation record
// @Tags Violations
// @Accept json
// @Produce json
// @Param id path int true "Violation ID"
// @Param body body services.ViolationInput true "Violation data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id} [put]
func (h *ViolationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid violation ID")
	}

	var input services.ViolationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.violationService.Update(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update violation")
	}
	if !updated {
		return response.NotFound(c, "Violation not found")
	}

	return response.Success(c, "Violation record updated successfully", fiber.Map{"updated": true})
}

// UpdateStatusRequest represents a status-only update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles status-only update of a violation
// @Summary Update violation status
// @Description Change only the status of a violation record
// @Tags Violations
// @Accept json
// @Produce json
// @Param id path int true "Violation ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id}/status [patch]
func (h *ViolationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid violation ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.violationService.UpdateStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update status")
	}
	if !updated {
		return response.NotFound(c, "Violation not found")
	}

	return response.Success(c, "Status updated successfully", fiber.Map{"updated": true})
}

// Delete handles violation deletion
// @Summary Delete violation
// @Description Permanently delete a violation record (admin only)
// @Tags Violations
// @Produce json
// @Param id path int true "Violation ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id} [delete]
func (h *ViolationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid violation ID")
	}

	deleted, err := h.violationService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete violation")
	}
	if !deleted {
		return response.NotFound(c, "Violation not found")
	}

	return response.Success(c, "Violation record deleted successfully", fiber.Map{"deleted": true})
}

// Export streams all violations as a CSV attachment
// @Summary Export violations
// @Description Download all violation records as CSV
// @Tags Violations
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /violations/export [get]
func (h *ViolationHandler) Export(c *fiber.Ctx) error {
	filename := fmt.Sprintf("violations_export_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := h.exportService.WriteCSV(c.Context(), c.Response().BodyWriter()); err != nil {
		return response.InternalServerError(c, "Failed to export violations")
	}
	return nil
}
