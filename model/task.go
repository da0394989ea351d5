package model

type TaskCategory string

const (
	CategoryMorning    TaskCategory = "Morning"
	CategoryAfternoon  TaskCategory = "Afternoon"
	CategoryNight      TaskCategory = "Night"
	CategorySafety     TaskCategory = "Safety"
	CategoryDailyCheck TaskCategory = "Daily Check"
)

// Categories lists the closed category set in display order.
var Categories = []TaskCategory{
	CategoryMorning,
	CategoryAfternoon,
	CategoryNight,
	CategorySafety,
	CategoryDailyCheck,
}

func (c TaskCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is a catalog entry. It is configuration, never persisted.
type Task struct {
	ID       string       `json:"id"`
	Category TaskCategory `json:"category"`
	Text     string       `json:"text"`
	Subtext  string       `json:"subtext,omitempty"`
	Time     string       `json:"time,omitempty"`
}

// MedicationTaskID is the catalog entry that is only shown on dosing days.
const MedicationTaskID = "a-2"

var taskCatalog = []Task{
	{ID: "m-1", Category: CategoryMorning, Text: "Royal Canin Wet Food", Subtext: "1 pouch", Time: "08:00"},
	{ID: "m-2", Category: CategoryMorning, Text: "Refresh Water", Subtext: "Use filtered water", Time: "08:00"},
	{ID: "m-3", Category: CategoryMorning, Text: "Morning Dry Food", Subtext: "Half of the daily bag", Time: "08:00"},
	{ID: "m-4", Category: CategoryMorning, Text: "Clean Litter Box", Subtext: "Tie bag and dispose"},

	{ID: "a-1", Category: CategoryAfternoon, Text: "Leonardo Wet Food", Subtext: "1 pouch", Time: "18:30-19:00"},
	{ID: MedicationTaskID, Category: CategoryAfternoon, Text: "Medication Check", Subtext: "Prednicortone 1/4 (Every 2 days)", Time: "18:30-19:00"},
	{ID: "a-3", Category: CategoryAfternoon, Text: "Urine Check", Subtext: "Confirm at least 1 urine today"},

	{ID: "n-1", Category: CategoryNight, Text: "Night Dry Food", Subtext: "Remaining half of bag", Time: "Before Sleep"},
	{ID: "n-2", Category: CategoryNight, Text: "Final Safety Check", Subtext: "Windows, Balcony, Trash"},

	{ID: "s-1", Category: CategorySafety, Text: "No Scents/Essential Oils", Subtext: "Keep air clear"},
	{ID: "s-2", Category: CategorySafety, Text: "No Toxic Plants", Subtext: "Check Lily, Tulip, Aloe etc."},
	{ID: "s-3", Category: CategorySafety, Text: "Clear Tables", Subtext: "No human food left out"},
}

// TaskCatalog returns a copy of the fixed task list in display order.
func TaskCatalog() []Task {
	return append([]Task{}, taskCatalog...)
}

func FindTask(id string) (Task, bool) {
	for _, t := range taskCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func TasksByCategory(category TaskCategory) []Task {
	var tasks []Task
	for _, t := range taskCatalog {
		if t.Category == category {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
