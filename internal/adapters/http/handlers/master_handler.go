package handlers

import (
	"vvms/internal/core/domain"
	"vvms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MasterHandler serves the fixed enumerations the record forms are built from
type MasterHandler struct{}

// NewMasterHandler creates a new master data handler
func NewMasterHandler() *MasterHandler {
	return &MasterHandler{}
}

// ViolationTypeEntry is a violation type with its suggested fine
type ViolationTypeEntry struct {
	Name        string  `json:"name"`
	DefaultFine float64 `json:"default_fine"`
}

// ListVehicleTypes returns the accepted vehicle types
// @Summary Vehicle types
// @Tags Master
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /master/vehicle-types [get]
func (h *MasterHandler) ListVehicleTypes(c *fiber.Ctx) error {
	return response.Success(c, "Vehicle types fetched successfully", domain.VehicleTypes)
}

// ListViolationTypes returns the accepted violation types with default fines
// @Summary Violation types
// @Tags Master
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /master/violation-types [get]
func (h *MasterHandler) ListViolationTypes(c *fiber.Ctx) error {
	entries := make([]ViolationTypeEntry, 0, len(domain.ViolationTypes))
	for _, t := range domain.ViolationTypes {
		entries = append(entries, ViolationTypeEntry{
			Name:        t,
			DefaultFine: domain.DefaultFine(t),
		})
	}
	return response.Success(c, "Violation types fetched successfully", entries)
}

// ListStatuses returns the violation status enumeration
// @Summary Statuses
// @Tags Master
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /master/statuses [get]
func (h *MasterHandler) ListStatuses(c *fiber.Ctx) error {
	return response.Success(c, "Statuses fetched successfully", domain.Statuses)
}
