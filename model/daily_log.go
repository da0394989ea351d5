package model

import "time"

// DateKeyLayout is the storage and URL form of a calendar day.
const DateKeyLayout = "2006-01-02"

type CompletedTask struct {
	ID          string `json:"id" bson:"id"`
	CompletedAt string `json:"completedAt" bson:"completedAt"` // short local time, e.g. "18:42"
}

// DailyLog is one calendar day of care activity. It is always written whole.
type DailyLog struct {
	Date           string          `json:"date" bson:"date"`
	CompletedTasks []CompletedTask `json:"completedTasks" bson:"completedTasks"`
	UrineCount     int             `json:"urineCount" bson:"urineCount"`
	StoolCount     int             `json:"stoolCount" bson:"stoolCount"`
	Notes          string          `json:"notes" bson:"notes"`
	Photos         []string        `json:"photos" bson:"photos"` // data URLs in upload order
}

// NewDailyLog returns the all-default log for a day with no stored record.
func NewDailyLog(dateKey string) *DailyLog {
	return &DailyLog{
		Date:           dateKey,
		CompletedTasks: []CompletedTask{},
		Photos:         []string{},
	}
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (l *DailyLog) Clone() *DailyLog {
	out := *l
	out.CompletedTasks = append([]CompletedTask{}, l.CompletedTasks...)
	out.Photos = append([]string{}, l.Photos...)
	return &out
}

func (l *DailyLog) IsCompleted(taskID string) bool {
	return l.CompletionOf(taskID) != nil
}

func (l *DailyLog) CompletionOf(taskID string) *CompletedTask {
	for i := range l.CompletedTasks {
		if l.CompletedTasks[i].ID == taskID {
			return &l.CompletedTasks[i]
		}
	}
	return nil
}

func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateKeyLayout, key, loc)
}

func IsValidDateKey(key string) bool {
	_, err := time.Parse(DateKeyLayout, key)
	return err == nil
}
