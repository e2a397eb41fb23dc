package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/models"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type AttendanceHandler struct {
	attendance repository.AttendanceRepository
}

func NewAttendanceHandler(attendance repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List supports a date-range filter (?start=&end=, RFC 3339 dates) with an
// optional ?userId=. Without filters it returns everything, newest first.
func (h *AttendanceHandler) List(c *gin.Context) {
	startParam, endParam := c.Query("start"), c.Query("end")
	if startParam != "" && endParam != "" {
		start, err := time.Parse(time.RFC3339, startParam)
		if err != nil {
			badRequest(c, "Invalid start date")
			return
		}
		end, err := time.Parse(time.RFC3339, endParam)
		if err != nil {
			badRequest(c, "Invalid end date")
			return
		}

		var userID *uuid.UUID
		if raw := c.Query("userId"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				badRequest(c, "Invalid userId")
				return
			}
			userID = &parsed
		}

		records, err := h.attendance.GetByDateRange(start, end, userID)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.attendance.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Today(c *gin.Context) {
	records, err := h.attendance.GetTodayAttendance()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Monthly returns one user's records for ?month=&year= (defaults to the
// current month).
func (h *AttendanceHandler) Monthly(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	now := time.Now()
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		badRequest(c, "Invalid month")
		return
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		badRequest(c, "Invalid year")
		return
	}

	records, err := h.attendance.GetMonthlyAttendance(userID, month, year)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Stats(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		badRequest(c, "Invalid start date")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		badRequest(c, "Invalid end date")
		return
	}

	stats, err := h.attendance.GetStats(userID, start, end)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.attendance.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if record == nil {
		notFound(c, "Attendance not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req schemas.CreateAttendance
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	record, err := h.attendance.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateAttendance
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	record, err := h.attendance.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if record == nil {
		notFound(c, "Attendance not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.attendance.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if record == nil {
		notFound(c, "Attendance not found")
		return
	}

	if err := h.attendance.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance deleted"})
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req schemas.CheckIn
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	record, err := h.attendance.CheckIn(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req schemas.CheckOut
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	record, err := h.attendance.CheckOut(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if record == nil {
		notFound(c, "Attendance not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) MarkAbsent(c *gin.Context) {
	h.mark(c, h.attendance.MarkAbsent)
}

func (h *AttendanceHandler) MarkLeave(c *gin.Context) {
	h.mark(c, h.attendance.MarkLeave)
}

func (h *AttendanceHandler) mark(c *gin.Context, op func(schemas.MarkAttendance) (*models.Attendance, error)) {
	var req schemas.MarkAttendance
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	record, err := op(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
