package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"vvms/internal/adapters/persistence/models"
	"vvms/internal/adapters/persistence/repositories"
	"vvms/internal/core/domain"

	"gorm.io/gorm"
)

// ViolationService handles violation record business logic
type ViolationService struct {
	violationRepo repositories.ViolationRepository
}

// NewViolationService creates a new violation service
func NewViolationService(violationRepo repositories.ViolationRepository) *ViolationService {
	return &ViolationService{violationRepo: violationRepo}
}

// ViolationInput represents violation create/update input
type ViolationInput struct {
	PlateNumber   string  `json:"plate_number"`
	VehicleType   string  `json:"vehicle_type"`
	ViolationType string  `json:"violation_type"`
	Location      string  `json:"location"`
	FineAmount    float64 `json:"fine_amount"`
	OfficerName   string  `json:"officer_name"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

// normalize trims input fields and uppercases the plate number
func (in *ViolationInput) normalize() {
	in.PlateNumber = strings.ToUpper(strings.TrimSpace(in.PlateNumber))
	in.VehicleType = strings.TrimSpace(in.VehicleType)
	in.ViolationType = strings.TrimSpace(in.ViolationType)
	in.Location = strings.TrimSpace(in.Location)
	in.OfficerName = strings.TrimSpace(in.OfficerName)
	in.Status = strings.TrimSpace(in.Status)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Status == "" {
		in.Status = string(domain.StatusPending)
	}
	// Fines are persisted with two-decimal precision
	in.FineAmount = math.Round(in.FineAmount*100) / 100
}

// validate enforces the record contract before anything reaches the store
func (s *ViolationService) validate(in *ViolationInput) error {
	switch {
	case in.PlateNumber == "":
		return fmt.Errorf("%w: plate number is required", domain.ErrInvalidInput)
	case utf8.RuneCountInString(in.PlateNumber) > domain.MaxPlateLength:
		return fmt.Errorf("%w: plate number exceeds %d characters", domain.ErrInvalidInput, domain.MaxPlateLength)
	case in.VehicleType == "":
		return fmt.Errorf("%w: vehicle type is required", domain.ErrInvalidInput)
	case !domain.IsValidVehicleType(in.VehicleType):
		return fmt.Errorf("%w: unknown vehicle type %q", domain.ErrInvalidInput, in.VehicleType)
	case in.ViolationType == "":
		return fmt.Errorf("%w: violation type is required", domain.ErrInvalidInput)
	case !domain.IsValidViolationType(in.ViolationType):
		return fmt.Errorf("%w: unknown violation type %q", domain.ErrInvalidInput, in.ViolationType)
	case in.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	case utf8.RuneCountInString(in.Location) > domain.MaxLocationLength:
		return fmt.Errorf("%w: location exceeds %d characters", domain.ErrInvalidInput, domain.MaxLocationLength)
	case in.FineAmount <= 0:
		return fmt.Errorf("%w: fine amount must be greater than zero", domain.ErrInvalidInput)
	case in.FineAmount > domain.MaxFineAmount:
		return fmt.Errorf("%w: fine amount exceeds %.2f", domain.ErrInvalidInput, domain.MaxFineAmount)
	case in.OfficerName == "":
		return fmt.Errorf("%w: officer name is required", domain.ErrInvalidInput)
	case utf8.RuneCountInString(in.OfficerName) > domain.MaxOfficerLength:
		return fmt.Errorf("%w: officer name exceeds %d characters", domain.ErrInvalidInput, domain.MaxOfficerLength)
	case !domain.IsValidStatus(in.Status):
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	case utf8.RuneCountInString(in.Notes) > domain.MaxNotesLength:
		return fmt.Errorf("%w: notes exceed %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// Create inserts a new violation record and returns it with its assigned ID
func (s *ViolationService) Create(ctx context.Context, input *ViolationInput) (*models.Violation, error) {
	input.normalize()
	if err := s.validate(input); err != nil {
		return nil, err
	}

	violation := &models.Violation{
		PlateNumber:   input.PlateNumber,
		VehicleType:   input.VehicleType,
		ViolationType: input.ViolationType,
		Location:      input.Location,
		FineAmount:    input.FineAmount,
		DateTime:      time.Now(),
		OfficerName:   input.OfficerName,
		Status:        input.Status,
		Notes:         input.Notes,
	}

	if err := s.violationRepo.Create(ctx, violation); err != nil {
		return nil, err
	}

	log.Printf("✅ Violation created with ID: %d (plate: %s)", violation.ID, violation.PlateNumber)
	return violation, nil
}

// GetAll returns all violations, newest first
func (s *ViolationService) GetAll(ctx context.Context) ([]*models.Violation, error) {
	return s.violationRepo.GetAll(ctx)
}

// List returns a page of violations, newest first
func (s *ViolationService) List(ctx context.Context, offset, limit int) ([]*models.Violation, int64, error) {
	return s.violationRepo.List(ctx, offset, limit)
}

// GetByID returns a single violation with all persisted fields.
// Returns domain.ErrViolationNotFound when no such ID exists.
func (s *ViolationService) GetByID(ctx context.Context, id uint) (*models.Violation, error) {
	violation, err := s.violationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrViolationNotFound
		}
		return nil, err
	}
	return violation, nil
}

// Search matches term against plate number, violation type, location
// and officer name. An empty term is equivalent to GetAll.
func (s *ViolationService) Search(ctx context.Context, term string) ([]*models.Violation, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.violationRepo.GetAll(ctx)
	}
	return s.violationRepo.Search(ctx, term)
}

// GetByStatus returns violations with the given status
func (s *ViolationService) GetByStatus(ctx context.Context, status string) ([]*models.Violation, error) {
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.violationRepo.GetByStatus(ctx, status)
}

// Update replaces all mutable fields of an existing violation.
// Returns false (not an error) if no violation with that ID exists.
// ID, DateTime and CreatedAt are never touched.
func (s *ViolationService) Update(ctx context.Context, id uint, input *ViolationInput) (bool, error) {
	input.normalize()
	if err := s.validate(input); err != nil {
		return false, err
	}

	existing, err := s.violationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.PlateNumber = input.PlateNumber
	existing.VehicleType = input.VehicleType
	existing.ViolationType = input.ViolationType
	existing.Location = input.Location
	existing.FineAmount = input.FineAmount
	existing.OfficerName = input.OfficerName
	existing.Status = input.Status
	existing.Notes = input.Notes

	if err := s.violationRepo.Update(ctx, existing); err != nil {
		return false, err
	}

	log.Printf("✅ Violation %d updated", id)
	return true, nil
}

// UpdateStatus changes only the status of an existing violation.
// Returns false (not an error) if no violation with that ID exists.
func (s *ViolationService) UpdateStatus(ctx context.Context, id uint, status string) (bool, error) {
	status = strings.TrimSpace(status)
	if !domain.IsValidStatus(status) {
		return false, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	existing, err := s.violationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.Status = status

	if err := s.violationRepo.Update(ctx, existing); err != nil {
		return false, err
	}

	log.Printf("✅ Status updated for violation %d: %s", id, status)
	return true, nil
}

// Delete removes a violation permanently.
// Returns false (not an error) if no violation with that ID exists.
func (s *ViolationService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.violationRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("✅ Violation %d deleted", id)
	}
	return deleted, nil
}

// GetStatistics returns the aggregate snapshot over all violations
func (s *ViolationService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	return s.violationRepo.Statistics(ctx)
}
