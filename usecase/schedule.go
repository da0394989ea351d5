package usecase

import (
	"time"

	"carediary/model"
)

// DosingIntervalDays is the fixed medication cadence
const DosingIntervalDays = 2

// IsDosingDay reports whether date falls on the every-other-day cadence that
// starts at start. Both are reduced to their calendar day in date's location,
// so the time of day never matters. Days before start are never dosing days.
func IsDosingDay(date, start time.Time) bool {
	days := DaysBetween(start, date)
	return days >= 0 && days%DosingIntervalDays == 0
}

// DaysBetween counts whole calendar days from a to b in b's location. It
// works on the civil date, so DST transitions do not shift the count.
func DaysBetween(a, b time.Time) int {
	loc := b.Location()
	a = a.In(loc)
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}

// MidnightIn strips the time of day in loc
func MidnightIn(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

type MedicationSchedule struct {
	Start    time.Time
	Location *time.Location
	TaskID   string
}

func NewMedicationSchedule(start time.Time, loc *time.Location, taskID string) MedicationSchedule {
	if loc == nil {
		loc = time.Local
	}
	if taskID == "" {
		taskID = model.MedicationTaskID
	}
	return MedicationSchedule{Start: MidnightIn(start, loc), Location: loc, TaskID: taskID}
}

func (s MedicationSchedule) IsDosingDay(date time.Time) bool {
	return IsDosingDay(date.In(s.Location), s.Start)
}

// IsDosingDateKey is IsDosingDay for a YYYY-MM-DD key
func (s MedicationSchedule) IsDosingDateKey(dateKey string) (bool, error) {
	date, err := model.ParseDateKey(dateKey, s.Location)
	if err != nil {
		return false, err
	}
	return s.IsDosingDay(date), nil
}

// NextDosingDay returns the first dosing day on or after from, at midnight
func (s MedicationSchedule) NextDosingDay(from time.Time) time.Time {
	day := MidnightIn(from, s.Location)
	if day.Before(s.Start) {
		return s.Start
	}
	if off := DaysBetween(s.Start, day) % DosingIntervalDays; off != 0 {
		day = day.AddDate(0, 0, DosingIntervalDays-off)
	}
	return day
}

// VisibleTasks is the catalog for a day: the medication task is hidden on
// non-dosing days.
func (s MedicationSchedule) VisibleTasks(dosingDay bool) []model.Task {
	var tasks []model.Task
	for _, task := range model.TaskCatalog() {
		if task.ID == s.TaskID && !dosingDay {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}
