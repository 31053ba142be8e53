package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vvms/internal/config"

	"github.com/robfig/cron/v3"
)

// BackupService writes periodic CSV snapshots of the violations table
type BackupService struct {
	exportService *ExportService
	cfg           config.BackupConfig
	cron          *cron.Cron
}

// NewBackupService creates a new backup service
func NewBackupService(exportService *ExportService, cfg config.BackupConfig) *BackupService {
	return &BackupService{
		exportService: exportService,
		cfg:           cfg,
		cron:          cron.New(),
	}
}

// Start schedules periodic backups
func (s *BackupService) Start() {
	if !s.cfg.Enabled {
		log.Println("ℹ️ Scheduled backups disabled")
		return
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.RunBackup(context.Background()); err != nil {
			log.Printf("⚠️ Scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("⚠️ Invalid backup schedule %q: %v", s.cfg.Schedule, err)
		return
	}

	s.cron.Start()
	log.Printf("✅ Backup scheduler started [%s → %s]", s.cfg.Schedule, s.cfg.Dir)
}

// Stop stops the backup scheduler
func (s *BackupService) Stop() {
	s.cron.Stop()
}

// RunBackup writes one CSV snapshot and prunes old ones
func (s *BackupService) RunBackup(ctx context.Context) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	name := fmt.Sprintf("violations_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.cfg.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}

	if err := s.exportService.WriteCSV(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("✅ Backup written: %s", path)
	return s.prune()
}

// prune keeps only the newest MaxBackups snapshot files
func (s *BackupService) prune() error {
	if s.cfg.MaxBackups <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "violations_") && strings.HasSuffix(e.Name(), ".csv") {
			snapshots = append(snapshots, e.Name())
		}
	}

	if len(snapshots) <= s.cfg.MaxBackups {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-s.cfg.MaxBackups] {
		if err := os.Remove(filepath.Join(s.cfg.Dir, name)); err != nil {
			return err
		}
	}
	return nil
}
