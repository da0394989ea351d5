package usecase

import (
	"fmt"
	"strings"
	"time"

	"carediary/model"
)

// SummaryDateLayout matches the diary header, e.g. "Mon, Dec 22"
const SummaryDateLayout = "Mon, Jan 2"

const summaryRule = "------------------------------"

type MedicationStatus string

const (
	MedicationTaken   MedicationStatus = "Taken ✅"
	MedicationPending MedicationStatus = "PENDING ⏳"
	MedicationNone    MedicationStatus = "N/A"
)

func MedicationStatusFor(dosingDay, taken bool) MedicationStatus {
	switch {
	case !dosingDay:
		return MedicationNone
	case taken:
		return MedicationTaken
	default:
		return MedicationPending
	}
}

type SummaryInput struct {
	PetName         string
	Date            time.Time
	Log             *model.DailyLog
	DosingDay       bool
	MedicationTaken bool // medication task is among the completed tasks
}

// FormatStatusSummary renders the fixed plain-text share template
func FormatStatusSummary(in SummaryInput) string {
	notes := in.Log.Notes
	if notes == "" {
		notes = "Doing great!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🐾 %s Diary (%s)\n", in.PetName, in.Date.Format(SummaryDateLayout))
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "✅ Completed: %d tasks\n", len(in.Log.CompletedTasks))
	fmt.Fprintf(&b, "🚽 Urine: %d\n", in.Log.UrineCount)
	fmt.Fprintf(&b, "💩 Stool: %d\n", in.Log.StoolCount)
	fmt.Fprintf(&b, "💊 Meds: %s\n", MedicationStatusFor(in.DosingDay, in.MedicationTaken))
	fmt.Fprintf(&b, "📸 Photos: %d uploaded\n", len(in.Log.Photos))
	fmt.Fprintf(&b, "📝 Notes: %s\n", notes)
	b.WriteString(summaryRule + "\n")
	b.WriteString("See you tomorrow!")
	return b.String()
}
