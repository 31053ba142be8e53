package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"vvms/internal/adapters/persistence/repositories"
)

// DateFormat is the timestamp layout used in exported files
const DateFormat = "2006-01-02 15:04:05"

// csvHeader is the column order of exported violation files
var csvHeader = []string{
	"id", "plate_number", "vehicle_type", "violation_type", "location",
	"fine_amount", "date_time", "officer_name", "status", "notes",
}

// ExportService writes violation records as CSV
type ExportService struct {
	violationRepo repositories.ViolationRepository
}

// NewExportService creates a new export service
func NewExportService(violationRepo repositories.ViolationRepository) *ExportService {
	return &ExportService{violationRepo: violationRepo}
}

// WriteCSV streams all violations to w as CSV, newest first
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	violations, err := s.violationRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, v := range violations {
		record := []string{
			strconv.FormatUint(uint64(v.ID), 10),
			v.PlateNumber,
			v.VehicleType,
			v.ViolationType,
			v.Location,
			strconv.FormatFloat(v.FineAmount, 'f', 2, 64),
			v.DateTime.Format(DateFormat),
			v.OfficerName,
			v.Status,
			v.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
