package repositories

import (
	"context"
	"strings"

	"vvms/internal/adapters/persistence/models"
	"vvms/internal/core/domain"

	"gorm.io/gorm"
)

// violationRepository implements ViolationRepository interface
type violationRepository struct {
	db *gorm.DB
}

// NewViolationRepository creates a new violation repository
func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepository{db: db}
}

// Create inserts a new violation record
func (r *violationRepository) Create(ctx context.Context, violation *models.Violation) error {
	return r.db.WithContext(ctx).Create(violation).Error
}

// GetByID gets a violation by ID
func (r *violationRepository) GetByID(ctx context.Context, id uint) (*models.Violation, error) {
	var violation models.Violation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&violation).Error
	if err != nil {
		return nil, err
	}
	return &violation, nil
}

// GetAll returns all violations, newest first
func (r *violationRepository) GetAll(ctx context.Context) ([]*models.Violation, error) {
	var violations []*models.Violation
	err := r.db.WithContext(ctx).
		Order("date_time DESC, id DESC").
		Find(&violations).Error
	return violations, err
}

// List lists violations with pagination, newest first
func (r *violationRepository) List(ctx context.Context, offset, limit int) ([]*models.Violation, int64, error) {
	var violations []*models.Violation
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Violation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("date_time DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&violations).Error

	return violations, total, err
}

// Search matches term case-insensitively against plate number,
// violation type, location or officer name
func (r *violationRepository) Search(ctx context.Context, term string) ([]*models.Violation, error) {
	var violations []*models.Violation
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(plate_number) LIKE ? OR LOWER(violation_type) LIKE ? OR LOWER(location) LIKE ? OR LOWER(officer_name) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("date_time DESC, id DESC").
		Find(&violations).Error
	return violations, err
}

// GetByStatus returns violations with an exact status match, newest first
func (r *violationRepository) GetByStatus(ctx context.Context, status string) ([]*models.Violation, error) {
	var violations []*models.Violation
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("date_time DESC, id DESC").
		Find(&violations).Error
	return violations, err
}

// Update saves all fields of an existing violation
func (r *violationRepository) Update(ctx context.Context, violation *models.Violation) error {
	return r.db.WithContext(ctx).Save(violation).Error
}

// Delete removes a violation by ID. Returns true iff a row was removed.
func (r *violationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Violation{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Statistics computes the aggregate snapshot over all violations
func (r *violationRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	if err := r.db.WithContext(ctx).Model(&models.Violation{}).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		Status string
		Target *int64
	}{
		{string(domain.StatusPending), &stats.Pending},
		{string(domain.StatusPaid), &stats.Paid},
		{string(domain.StatusCancelled), &stats.Cancelled},
		{string(domain.StatusUnderReview), &stats.UnderReview},
	}
	for _, sc := range statusCounts {
		if err := r.db.WithContext(ctx).Model(&models.Violation{}).
			Where("status = ?", sc.Status).
			Count(sc.Target).Error; err != nil {
			return nil, err
		}
	}

	// Revenue = sum of fines already paid
	if err := r.db.WithContext(ctx).Model(&models.Violation{}).
		Where("status = ?", string(domain.StatusPaid)).
		Select("COALESCE(SUM(fine_amount), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		return nil, err
	}

	var topViolations []struct {
		ViolationType string
		Count         int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Violation{}).
		Select("violation_type, COUNT(*) as count").
		Group("violation_type").
		Order("count DESC").
		Limit(5).
		Scan(&topViolations).Error; err != nil {
		return nil, err
	}
	for _, tv := range topViolations {
		stats.TopViolations = append(stats.TopViolations, domain.TypeCount{
			ViolationType: tv.ViolationType,
			Count:         tv.Count,
		})
	}

	var topViolators []struct {
		PlateNumber string
		Count       int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Violation{}).
		Select("plate_number, COUNT(*) as count").
		Group("plate_number").
		Order("count DESC").
		Limit(5).
		Scan(&topViolators).Error; err != nil {
		return nil, err
	}
	for _, tp := range topViolators {
		stats.TopViolators = append(stats.TopViolators, domain.PlateCount{
			PlateNumber: tp.PlateNumber,
			Count:       tp.Count,
		})
	}

	return stats, nil
}
