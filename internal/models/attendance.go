package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance holds at most one row per user per calendar day.
type Attendance struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index:attendance_user_idx;uniqueIndex:attendance_unique_idx"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Date     time.Time  `json:"date" gorm:"not null;index:attendance_date_idx;uniqueIndex:attendance_unique_idx"`
	Status   string     `json:"status" gorm:"default:'absent';index:attendance_status_idx"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string { return "attendance" }

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
	AttendanceCheckin AttendanceStatus = "checkin"
)
