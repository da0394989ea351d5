package usecase

import (
	"time"

	"carediary/model"
)

// CompletionTimeLayout is the short hour:minute form stored in completedAt
const CompletionTimeLayout = "15:04"

// ToggleTaskCompletion un-completes taskID when it is present, otherwise
// appends it stamped with now. The input log is not modified.
func ToggleTaskCompletion(log *model.DailyLog, taskID string, now time.Time) *model.DailyLog {
	out := log.Clone()
	for i, task := range out.CompletedTasks {
		if task.ID == taskID {
			out.CompletedTasks = append(out.CompletedTasks[:i], out.CompletedTasks[i+1:]...)
			return out
		}
	}
	out.CompletedTasks = append(out.CompletedTasks, model.CompletedTask{
		ID:          taskID,
		CompletedAt: now.Format(CompletionTimeLayout),
	})
	return out
}

// AdjustCounter floors the result at zero
func AdjustCounter(current, delta int) int {
	if next := current + delta; next > 0 {
		return next
	}
	return 0
}

// AddPhoto appends encoded; an empty string is not a photo and is ignored
func AddPhoto(log *model.DailyLog, encoded string) *model.DailyLog {
	out := log.Clone()
	if encoded == "" {
		return out
	}
	out.Photos = append(out.Photos, encoded)
	return out
}

// RemovePhoto drops the photo at index; an out of range index is a no-op
func RemovePhoto(log *model.DailyLog, index int) *model.DailyLog {
	out := log.Clone()
	if index < 0 || index >= len(out.Photos) {
		return out
	}
	out.Photos = append(out.Photos[:index], out.Photos[index+1:]...)
	return out
}

func SetNotes(log *model.DailyLog, notes string) *model.DailyLog {
	out := log.Clone()
	out.Notes = notes
	return out
}
