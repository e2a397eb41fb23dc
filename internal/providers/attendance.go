package providers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

// AttendanceCounts is the raw aggregate read for attendance statistics.
type AttendanceCounts struct {
	Total   int64
	Present int64
	Absent  int64
	Leave   int64
	Checkin int64
}

type AttendanceProvider interface {
	Crud[models.Attendance, schemas.CreateAttendance, schemas.UpdateAttendance]
	GetByUser(userID uuid.UUID) ([]models.Attendance, error)
	GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error)
	GetByDateRange(start, end time.Time, userID *uuid.UUID) ([]models.Attendance, error)
	GetTodayAttendance() ([]models.Attendance, error)
	GetMonthlyAttendance(userID uuid.UUID, month, year int) ([]models.Attendance, error)
	GetAttendanceStats(userID uuid.UUID, start, end time.Time) (*AttendanceCounts, error)
	CheckIn(userID uuid.UUID, checkInTime *time.Time) (*models.Attendance, error)
	CheckOut(attendanceID uuid.UUID, checkOutTime *time.Time) (*models.Attendance, error)
	MarkAbsent(userID uuid.UUID, date time.Time) (*models.Attendance, error)
	MarkLeave(userID uuid.UUID, date time.Time) (*models.Attendance, error)
}

type attendanceProvider struct {
	db *gorm.DB
}

func NewAttendanceProvider(db *gorm.DB) AttendanceProvider {
	return &attendanceProvider{db: db}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func (p *attendanceProvider) GetAll() ([]models.Attendance, error) {
	var records []models.Attendance
	err := p.db.Preload("User").Order("date DESC").Find(&records).Error
	return records, err
}

func (p *attendanceProvider) GetByID(id uuid.UUID) (*models.Attendance, error) {
	var record models.Attendance
	err := p.db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (p *attendanceProvider) GetByUser(userID uuid.UUID) ([]models.Attendance, error) {
	var records []models.Attendance
	err := p.db.Where("user_id = ?", userID).Order("date DESC").Find(&records).Error
	return records, err
}

func (p *attendanceProvider) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	var record models.Attendance
	err := p.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startOfDay(date), endOfDay(date)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (p *attendanceProvider) GetByDateRange(start, end time.Time, userID *uuid.UUID) ([]models.Attendance, error) {
	q := p.db.Preload("User").Where("date BETWEEN ? AND ?", start, end)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var records []models.Attendance
	err := q.Order("date DESC").Find(&records).Error
	return records, err
}

func (p *attendanceProvider) GetTodayAttendance() ([]models.Attendance, error) {
	today := startOfDay(time.Now())
	var records []models.Attendance
	err := p.db.Preload("User").
		Where("date BETWEEN ? AND ?", today, endOfDay(today)).
		Order("check_in DESC").
		Find(&records).Error
	return records, err
}

func (p *attendanceProvider) GetMonthlyAttendance(userID uuid.UUID, month, year int) ([]models.Attendance, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var records []models.Attendance
	err := p.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date").
		Find(&records).Error
	return records, err
}

func (p *attendanceProvider) GetAttendanceStats(userID uuid.UUID, start, end time.Time) (*AttendanceCounts, error) {
	var counts AttendanceCounts
	err := p.db.Model(&models.Attendance{}).
		Select(
			"count(*) as total, "+
				"count(case when status = 'present' then 1 end) as present, "+
				"count(case when status = 'absent' then 1 end) as absent, "+
				"count(case when status = 'leave' then 1 end) as leave, "+
				"count(case when status = 'checkin' then 1 end) as checkin").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (p *attendanceProvider) Create(input schemas.CreateAttendance) (*models.Attendance, error) {
	record := models.Attendance{
		UserID:   input.UserID,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Date:     input.Date,
		Status:   input.Status,
	}
	if record.Status == "" {
		record.Status = string(models.AttendanceAbsent)
	}
	if err := p.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (p *attendanceProvider) Update(input schemas.UpdateAttendance) (*models.Attendance, error) {
	updates := map[string]interface{}{}
	if input.CheckIn != nil {
		updates["check_in"] = *input.CheckIn
	}
	if input.CheckOut != nil {
		updates["check_out"] = *input.CheckOut
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.Attendance{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *attendanceProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.Attendance{}, "id = ?", id).Error
}

// CheckIn finds or creates today's row for the user and marks it checked in.
// Idempotent per (userId, date): a second call on the same day updates the
// existing row instead of inserting a duplicate.
func (p *attendanceProvider) CheckIn(userID uuid.UUID, checkInTime *time.Time) (*models.Attendance, error) {
	now := time.Now()
	if checkInTime != nil {
		now = *checkInTime
	}
	today := startOfDay(now)

	existing, err := p.GetByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}

	status := string(models.AttendanceCheckin)
	if existing != nil {
		return p.Update(schemas.UpdateAttendance{
			ID:      existing.ID,
			CheckIn: &now,
			Status:  &status,
		})
	}

	return p.Create(schemas.CreateAttendance{
		UserID:  userID,
		CheckIn: &now,
		Date:    today,
		Status:  status,
	})
}

func (p *attendanceProvider) CheckOut(attendanceID uuid.UUID, checkOutTime *time.Time) (*models.Attendance, error) {
	now := time.Now()
	if checkOutTime != nil {
		now = *checkOutTime
	}

	status := string(models.AttendancePresent)
	return p.Update(schemas.UpdateAttendance{
		ID:       attendanceID,
		CheckOut: &now,
		Status:   &status,
	})
}

func (p *attendanceProvider) MarkAbsent(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	return p.markStatus(userID, date, string(models.AttendanceAbsent))
}

func (p *attendanceProvider) MarkLeave(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	return p.markStatus(userID, date, string(models.AttendanceLeave))
}

func (p *attendanceProvider) markStatus(userID uuid.UUID, date time.Time, status string) (*models.Attendance, error) {
	day := startOfDay(date)

	existing, err := p.GetByUserAndDate(userID, day)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return p.Update(schemas.UpdateAttendance{ID: existing.ID, Status: &status})
	}

	return p.Create(schemas.CreateAttendance{
		UserID: userID,
		Date:   day,
		Status: status,
	})
}
