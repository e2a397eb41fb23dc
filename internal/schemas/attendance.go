package schemas

import (
	"time"

	"github.com/google/uuid"
)

type CreateAttendance struct {
	UserID   uuid.UUID  `json:"userId" validate:"required"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Date     time.Time  `json:"date" validate:"required"`
	Status   string     `json:"status,omitempty" validate:"omitempty,oneof=present absent leave checkin"`
}

type UpdateAttendance struct {
	ID       uuid.UUID  `json:"id" validate:"required"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Status   *string    `json:"status,omitempty" validate:"omitempty,oneof=present absent leave checkin"`
}

type CheckIn struct {
	UserID  uuid.UUID  `json:"userId" validate:"required"`
	CheckIn *time.Time `json:"checkIn,omitempty"`
}

type CheckOut struct {
	AttendanceID uuid.UUID  `json:"attendanceId" validate:"required"`
	CheckOut     *time.Time `json:"checkOut,omitempty"`
}

type MarkAttendance struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Date   time.Time `json:"date" validate:"required"`
}
