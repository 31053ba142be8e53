package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'officer'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Violations Table
// ============================================================

// Violation represents violations table
type Violation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PlateNumber   string    `gorm:"size:20;not null;index:idx_plate" json:"plate_number"`
	VehicleType   string    `gorm:"size:50;not null" json:"vehicle_type"`
	ViolationType string    `gorm:"size:100;not null" json:"violation_type"`
	Location      string    `gorm:"size:255;not null" json:"location"`
	FineAmount    float64   `gorm:"type:decimal(10,2);not null" json:"fine_amount"`
	DateTime      time.Time `gorm:"not null;index:idx_date" json:"date_time"`
	OfficerName   string    `gorm:"size:100;not null" json:"officer_name"`
	Status        string    `gorm:"size:20;default:'Pending';index:idx_status" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Violation) TableName() string {
	return "violations"
}

// ViolationResponse DTO
type ViolationResponse struct {
	ID            uint      `json:"id"`
	PlateNumber   string    `json:"plate_number"`
	VehicleType   string    `json:"vehicle_type"`
	ViolationType string    `json:"violation_type"`
	Location      string    `json:"location"`
	FineAmount    float64   `json:"fine_amount"`
	DateTime      time.Time `json:"date_time"`
	OfficerName   string    `json:"officer_name"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (v *Violation) ToResponse() *ViolationResponse {
	return &ViolationResponse{
		ID:            v.ID,
		PlateNumber:   v.PlateNumber,
		VehicleType:   v.VehicleType,
		ViolationType: v.ViolationType,
		Location:      v.Location,
		FineAmount:    v.FineAmount,
		DateTime:      v.DateTime,
		OfficerName:   v.OfficerName,
		Status:        v.Status,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Violation{},
	)
}
