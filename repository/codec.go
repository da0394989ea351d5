package repository

import (
	"encoding/json"
	"math"

	"carediary/model"
)

// EncodeDailyLog serializes every field of log. Nil slices are written as
// empty arrays so readers never see null.
func EncodeDailyLog(log *model.DailyLog) ([]byte, error) {
	out := log.Clone()
	return json.Marshal(out)
}

// DecodeDailyLog merges stored bytes over the defaults for dateKey. Each field
// is decoded on its own; a field that is missing or malformed keeps its
// default and is reported in repaired. The stored date is ignored in favour
// of dateKey. Decoding never fails.
func DecodeDailyLog(dateKey string, raw []byte) (log *model.DailyLog, repaired []string) {
	log = model.NewDailyLog(dateKey)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return log, []string{"*"}
	}

	fail := func(name string) { repaired = append(repaired, name) }

	if v, ok := fields["completedTasks"]; !ok {
		fail("completedTasks")
	} else if tasks, ok := decodeCompletedTasks(v); ok {
		log.CompletedTasks = tasks
	} else {
		fail("completedTasks")
	}

	if v, ok := fields["urineCount"]; !ok {
		fail("urineCount")
	} else if n, ok := decodeCount(v); ok {
		log.UrineCount = n
	} else {
		fail("urineCount")
	}

	if v, ok := fields["stoolCount"]; !ok {
		fail("stoolCount")
	} else if n, ok := decodeCount(v); ok {
		log.StoolCount = n
	} else {
		fail("stoolCount")
	}

	if v, ok := fields["notes"]; !ok {
		fail("notes")
	} else if s, ok := decodeString(v); ok {
		log.Notes = s
	} else {
		fail("notes")
	}

	if v, ok := fields["photos"]; !ok {
		fail("photos")
	} else if photos, ok := decodePhotos(v); ok {
		log.Photos = photos
	} else {
		fail("photos")
	}

	return log, repaired
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

// decodeCount accepts any JSON number; fractions are floored, negatives clamp to 0
func decodeCount(raw json.RawMessage) (int, bool) {
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	if *f <= 0 {
		return 0, true
	}
	if *f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(math.Floor(*f)), true
}

// decodeCompletedTasks drops entries without an id and keeps the first of any
// duplicate ids so the set invariant holds after a bad write.
func decodeCompletedTasks(raw json.RawMessage) ([]model.CompletedTask, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	tasks := make([]model.CompletedTask, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		var entry struct {
			ID          *string `json:"id"`
			CompletedAt *string `json:"completedAt"`
		}
		if err := json.Unmarshal(item, &entry); err != nil || entry.ID == nil || *entry.ID == "" {
			continue
		}
		if seen[*entry.ID] {
			continue
		}
		seen[*entry.ID] = true
		task := model.CompletedTask{ID: *entry.ID}
		if entry.CompletedAt != nil {
			task.CompletedAt = *entry.CompletedAt
		}
		tasks = append(tasks, task)
	}
	return tasks, true
}

func decodePhotos(raw json.RawMessage) ([]string, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	photos := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := decodeString(item); ok && s != "" {
			photos = append(photos, s)
		}
	}
	return photos, true
}
