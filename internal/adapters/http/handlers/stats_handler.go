package handlers

import (
	"vvms/internal/core/domain"
	"vvms/internal/core/services"
	"vvms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles aggregate statistics endpoints
type StatsHandler struct {
	violationService *services.ViolationService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(violationService *services.ViolationService) *StatsHandler {
	return &StatsHandler{violationService: violationService}
}

// StatisticsResponse represents the statistics payload
type StatisticsResponse struct {
	Total         int64                `json:"total"`
	Pending       int64                `json:"pending"`
	Paid          int64                `json:"paid"`
	Cancelled     int64                `json:"cancelled"`
	UnderReview   int64                `json:"under_review"`
	Revenue       float64              `json:"revenue"`
	TopViolations []TypeCountResponse  `json:"top_violations"`
	TopViolators  []PlateCountResponse `json:"top_violators"`
}

// TypeCountResponse is a violation type frequency entry
type TypeCountResponse struct {
	ViolationType string `json:"violation_type"`
	Count         int64  `json:"count"`
}

// PlateCountResponse is a plate number frequency entry
type PlateCountResponse struct {
	PlateNumber string `json:"plate_number"`
	Count       int64  `json:"count"`
}

func toStatisticsResponse(stats *domain.Statistics) *StatisticsResponse {
	resp := &StatisticsResponse{
		Total:         stats.Total,
		Pending:       stats.Pending,
		Paid:          stats.Paid,
		Cancelled:     stats.Cancelled,
		UnderReview:   stats.UnderReview,
		Revenue:       stats.Revenue,
		TopViolations: make([]TypeCountResponse, 0, len(stats.TopViolations)),
		TopViolators:  make([]PlateCountResponse, 0, len(stats.TopViolators)),
	}
	for _, tv := range stats.TopViolations {
		resp.TopViolations = append(resp.TopViolations, TypeCountResponse{
			ViolationType: tv.ViolationType,
			Count:         tv.Count,
		})
	}
	for _, tp := range stats.TopViolators {
		resp.TopViolators = append(resp.TopViolators, PlateCountResponse{
			PlateNumber: tp.PlateNumber,
			Count:       tp.Count,
		})
	}
	return resp
}

// GetStatistics handles the aggregate statistics endpoint
// @Summary Violation statistics
// @Description Total counts, per-status counts, revenue and top-5 breakdowns
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /statistics [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.violationService.GetStatistics(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}

	return response.Success(c, "Statistics computed successfully", toStatisticsResponse(stats))
}
