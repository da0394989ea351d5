package repository

import (
	"reflect"
	"testing"

	"carediary/model"
)

func TestDecodeDailyLog(t *testing.T) {
	const day = "2025-12-20"

	tests := []struct {
		name         string
		raw          string
		check        func(t *testing.T, log *model.DailyLog)
		wantRepaired []string
	}{
		{
			name: "Complete record",
			raw:  `{"date":"2025-12-20","completedTasks":[{"id":"m-1","completedAt":"08:02"}],"urineCount":3,"stoolCount":1,"notes":"ate well","photos":["data:image/png;base64,AAAA"]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if len(log.CompletedTasks) != 1 || log.CompletedTasks[0].ID != "m-1" || log.CompletedTasks[0].CompletedAt != "08:02" {
					t.Errorf("unexpected completed tasks %+v", log.CompletedTasks)
				}
				if log.UrineCount != 3 || log.StoolCount != 1 {
					t.Errorf("unexpected counts %d/%d", log.UrineCount, log.StoolCount)
				}
				if log.Notes != "ate well" || len(log.Photos) != 1 {
					t.Errorf("unexpected notes/photos %q %v", log.Notes, log.Photos)
				}
			},
		},
		{
			name: "Malformed notes default to empty",
			raw:  `{"completedTasks":[],"urineCount":2,"stoolCount":0,"notes":{"oops":true},"photos":[]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if log.Notes != "" {
					t.Errorf("expected empty notes, got %q", log.Notes)
				}
				if log.UrineCount != 2 {
					t.Errorf("other fields must survive, urineCount = %d", log.UrineCount)
				}
			},
			wantRepaired: []string{"notes"},
		},
		{
			name: "Missing fields take defaults independently",
			raw:  `{"urineCount":5}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if log.UrineCount != 5 {
					t.Errorf("expected urineCount 5, got %d", log.UrineCount)
				}
				if log.CompletedTasks == nil || log.Photos == nil {
					t.Error("defaults must be empty slices, not nil")
				}
			},
			wantRepaired: []string{"completedTasks", "stoolCount", "notes", "photos"},
		},
		{
			name: "Negative and fractional counters",
			raw:  `{"completedTasks":[],"urineCount":-4,"stoolCount":2.7,"notes":"","photos":[]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if log.UrineCount != 0 || log.StoolCount != 2 {
					t.Errorf("expected 0/2, got %d/%d", log.UrineCount, log.StoolCount)
				}
			},
		},
		{
			name: "Wrongly typed counters",
			raw:  `{"completedTasks":[],"urineCount":"3","stoolCount":null,"notes":"","photos":[]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if log.UrineCount != 0 || log.StoolCount != 0 {
					t.Errorf("expected defaults, got %d/%d", log.UrineCount, log.StoolCount)
				}
			},
			wantRepaired: []string{"urineCount", "stoolCount"},
		},
		{
			name: "Bad task entries are dropped, duplicates keep first",
			raw:  `{"completedTasks":[{"id":"a-1","completedAt":"18:31"},{"completedAt":"x"},42,{"id":"a-1","completedAt":"19:00"},{"id":"n-1"}],"urineCount":0,"stoolCount":0,"notes":"","photos":[1,"data:image/jpeg;base64,BBBB",""]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				want := []model.CompletedTask{{ID: "a-1", CompletedAt: "18:31"}, {ID: "n-1"}}
				if !reflect.DeepEqual(log.CompletedTasks, want) {
					t.Errorf("expected %+v, got %+v", want, log.CompletedTasks)
				}
				if !reflect.DeepEqual(log.Photos, []string{"data:image/jpeg;base64,BBBB"}) {
					t.Errorf("unexpected photos %v", log.Photos)
				}
			},
		},
		{
			name: "Not JSON at all",
			raw:  `not json`,
			check: func(t *testing.T, log *model.DailyLog) {
				if !reflect.DeepEqual(log, model.NewDailyLog(day)) {
					t.Errorf("expected default log, got %+v", log)
				}
			},
			wantRepaired: []string{"*"},
		},
		{
			name: "Stored date is ignored and unknown fields are skipped",
			raw:  `{"date":"1999-01-01","mood":"sleepy","completedTasks":[],"urineCount":0,"stoolCount":0,"notes":"","photos":[]}`,
			check: func(t *testing.T, log *model.DailyLog) {
				if log.Date != day {
					t.Errorf("expected date %s, got %s", day, log.Date)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, repaired := DecodeDailyLog(day, []byte(tt.raw))
			tt.check(t, log)
			if !reflect.DeepEqual(repaired, tt.wantRepaired) {
				t.Errorf("repaired = %v, want %v", repaired, tt.wantRepaired)
			}
		})
	}
}

func TestEncodeDailyLogWritesEmptyArrays(t *testing.T) {
	log := &model.DailyLog{Date: "2025-12-20"}
	data, err := EncodeDailyLog(log)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := `{"date":"2025-12-20","completedTasks":[],"urineCount":0,"stoolCount":0,"notes":"","photos":[]}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}
