package repository

import (
	"time"

	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

type AttendanceRepository interface {
	GetAll() ([]schemas.AttendanceWithUser, error)
	GetByID(id uuid.UUID) (*models.Attendance, error)
	GetByUser(userID uuid.UUID) ([]models.Attendance, error)
	GetByDateRange(start, end time.Time, userID *uuid.UUID) ([]schemas.AttendanceWithUser, error)
	GetTodayAttendance() ([]schemas.AttendanceWithUser, error)
	GetMonthlyAttendance(userID uuid.UUID, month, year int) ([]models.Attendance, error)
	GetStats(userID uuid.UUID, start, end time.Time) (*schemas.AttendanceStats, error)
	Create(input schemas.CreateAttendance) (*models.Attendance, error)
	Update(input schemas.UpdateAttendance) (*models.Attendance, error)
	Delete(id uuid.UUID) error
	CheckIn(input schemas.CheckIn) (*models.Attendance, error)
	CheckOut(input schemas.CheckOut) (*models.Attendance, error)
	MarkAbsent(input schemas.MarkAttendance) (*models.Attendance, error)
	MarkLeave(input schemas.MarkAttendance) (*models.Attendance, error)
}

type attendanceRepository struct {
	provider providers.AttendanceProvider
	bus      *events.Bus
}

func NewAttendanceRepository(provider providers.AttendanceProvider, bus *events.Bus) AttendanceRepository {
	return &attendanceRepository{provider: provider, bus: bus}
}

func (r *attendanceRepository) GetAll() ([]schemas.AttendanceWithUser, error) {
	records, err := r.provider.GetAll()
	if err != nil {
		return nil, err
	}
	return toAttendanceWithUser(records), nil
}

func (r *attendanceRepository) GetByID(id uuid.UUID) (*models.Attendance, error) {
	return r.provider.GetByID(id)
}

func (r *attendanceRepository) GetByUser(userID uuid.UUID) ([]models.Attendance, error) {
	return r.provider.GetByUser(userID)
}

func (r *attendanceRepository) GetByDateRange(start, end time.Time, userID *uuid.UUID) ([]schemas.AttendanceWithUser, error) {
	records, err := r.provider.GetByDateRange(start, end, userID)
	if err != nil {
		return nil, err
	}
	return toAttendanceWithUser(records), nil
}

func (r *attendanceRepository) GetTodayAttendance() ([]schemas.AttendanceWithUser, error) {
	records, err := r.provider.GetTodayAttendance()
	if err != nil {
		return nil, err
	}
	return toAttendanceWithUser(records), nil
}

func (r *attendanceRepository) GetMonthlyAttendance(userID uuid.UUID, month, year int) ([]models.Attendance, error) {
	return r.provider.GetMonthlyAttendance(userID, month, year)
}

func (r *attendanceRepository) GetStats(userID uuid.UUID, start, end time.Time) (*schemas.AttendanceStats, error) {
	counts, err := r.provider.GetAttendanceStats(userID, start, end)
	if err != nil {
		return nil, err
	}
	return &schemas.AttendanceStats{
		Total:   counts.Total,
		Present: counts.Present,
		Absent:  counts.Absent,
		Leave:   counts.Leave,
		Checkin: counts.Checkin,
	}, nil
}

func (r *attendanceRepository) Create(input schemas.CreateAttendance) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	record, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, events.OpCreated, record))
	return record, nil
}

func (r *attendanceRepository) Update(input schemas.UpdateAttendance) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	record, err := r.provider.Update(input)
	if err != nil || record == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, events.OpUpdated, record))
	return record, nil
}

func (r *attendanceRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityAttendance, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

func (r *attendanceRepository) CheckIn(input schemas.CheckIn) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	op, err := r.upsertOp(input.UserID, time.Now())
	if err != nil {
		return nil, err
	}

	record, err := r.provider.CheckIn(input.UserID, input.CheckIn)
	if err != nil || record == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, op, record))
	return record, nil
}

func (r *attendanceRepository) CheckOut(input schemas.CheckOut) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	record, err := r.provider.CheckOut(input.AttendanceID, input.CheckOut)
	if err != nil || record == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, events.OpUpdated, record))
	return record, nil
}

func (r *attendanceRepository) MarkAbsent(input schemas.MarkAttendance) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	op, err := r.upsertOp(input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	record, err := r.provider.MarkAbsent(input.UserID, input.Date)
	if err != nil || record == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, op, record))
	return record, nil
}

func (r *attendanceRepository) MarkLeave(input schemas.MarkAttendance) (*models.Attendance, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	op, err := r.upsertOp(input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	record, err := r.provider.MarkLeave(input.UserID, input.Date)
	if err != nil || record == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAttendance, op, record))
	return record, nil
}

// upsertOp reports whether the day's row already exists, so the published
// event carries the op that actually happened.
func (r *attendanceRepository) upsertOp(userID uuid.UUID, date time.Time) (events.Op, error) {
	existing, err := r.provider.GetByUserAndDate(userID, date)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return events.OpUpdated, nil
	}
	return events.OpCreated, nil
}

func toAttendanceWithUser(records []models.Attendance) []schemas.AttendanceWithUser {
	out := make([]schemas.AttendanceWithUser, 0, len(records))
	for _, record := range records {
		out = append(out, schemas.NewAttendanceWithUser(record))
	}
	return out
}
