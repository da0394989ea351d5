package usecase

import "carediary/model"

type TaskView struct {
	model.Task
	Done        bool   `json:"done"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type CategoryView struct {
	Category model.TaskCategory `json:"category"`
	Tasks    []TaskView         `json:"tasks"`
}

// DiaryView is the render model of one day
type DiaryView struct {
	Date            string                `json:"date"`
	DateDisplay     string                `json:"date_display"`
	DosingDay       bool                  `json:"dosing_day"`
	MedicationTaken bool                  `json:"medication_taken"`
	NextDosingDay   string                `json:"next_dosing_day"`
	Categories      []CategoryView        `json:"categories"`
	Orphaned        []model.CompletedTask `json:"orphaned,omitempty"` // completions whose id left the catalog
	Log             *model.DailyLog       `json:"log"`
}

func (d *Diary) viewOf(dateKey string, log *model.DailyLog) DiaryView {
	date, _ := model.ParseDateKey(dateKey, d.schedule.Location)
	dosing := d.schedule.IsDosingDay(date)

	view := DiaryView{
		Date:            dateKey,
		DateDisplay:     date.Format(SummaryDateLayout),
		DosingDay:       dosing,
		MedicationTaken: log.IsCompleted(d.schedule.TaskID),
		NextDosingDay:   model.FormatDateKey(d.schedule.NextDosingDay(date)),
		Log:             log.Clone(),
	}

	byCategory := make(map[model.TaskCategory][]TaskView)
	for _, task := range d.schedule.VisibleTasks(dosing) {
		tv := TaskView{Task: task}
		if c := log.CompletionOf(task.ID); c != nil {
			tv.Done = true
			tv.CompletedAt = c.CompletedAt
		}
		byCategory[task.Category] = append(byCategory[task.Category], tv)
	}
	for _, category := range model.Categories {
		if tasks := byCategory[category]; len(tasks) > 0 {
			view.Categories = append(view.Categories, CategoryView{Category: category, Tasks: tasks})
		}
	}

	for _, c := range log.CompletedTasks {
		if _, ok := model.FindTask(c.ID); !ok {
			view.Orphaned = append(view.Orphaned, c)
		}
	}
	return view
}
