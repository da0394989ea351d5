package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"carediary/model"
	"carediary/utils"

	"go.uber.org/zap"
)

var (
	ErrUnknownTask    = errors.New("task is not in the catalog")
	ErrUnknownCounter = errors.New("counter must be urine or stool")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

// ErrTaskNotScheduled is returned when completing the medication task on a
// day that is not a dosing day
var ErrTaskNotScheduled = errors.New("task is not scheduled for this day")

// LogStore is the persistence the diary needs; repository.DailyLogRepo satisfies it
type LogStore interface {
	Load(ctx context.Context, dateKey string) (*model.DailyLog, error)
	Save(ctx context.Context, log *model.DailyLog) error
}

type Counter string

const (
	CounterUrine Counter = "urine"
	CounterStool Counter = "stool"
)

const (
	noticeSaveFailed = "Changes are kept on screen but could not be saved; they will be written with the next change."
	noticeLoadFailed = "Stored entry could not be read; showing an empty day. Edits are paused until it loads."
	noticeUnread     = "Stored entry still cannot be read; the change was not saved."
)

// Outcome is what every transition hands back. Notice is set when a
// peripheral failure happened that the user should see but that did not stop
// the transition.
type Outcome struct {
	View   DiaryView `json:"view"`
	Notice string    `json:"notice,omitempty"`
}

type DiaryOptions struct {
	Store    LogStore
	Schedule MedicationSchedule
	Clock    Clock
	PetName  string
	Logger   *zap.Logger
}

// Diary is the single application state container: the active date and its
// in-memory log. Every user action is one method; mutations persist the whole
// log before returning. Methods are safe to call from concurrent handlers.
type Diary struct {
	mu       sync.Mutex
	store    LogStore
	schedule MedicationSchedule
	clock    Clock
	petName  string
	logger   *zap.Logger

	dateKey string
	log     *model.DailyLog
	// unread is set while the active day's stored record could not be loaded.
	// Saving then would replace that record with the placeholder defaults.
	unread bool
}

// NewDiary opens the diary on today's date
func NewDiary(ctx context.Context, opts DiaryOptions) (*Diary, Outcome) {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Schedule.Location == nil {
		opts.Schedule = NewMedicationSchedule(opts.Schedule.Start, nil, opts.Schedule.TaskID)
	}
	d := &Diary{
		store:    opts.Store,
		schedule: opts.Schedule,
		clock:    opts.Clock,
		petName:  opts.PetName,
		logger:   opts.Logger,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	today := model.FormatDateKey(MidnightIn(d.clock.Now(), d.schedule.Location))
	return d, d.switchTo(ctx, today)
}

// ActiveDate returns the YYYY-MM-DD key currently shown
func (d *Diary) ActiveDate() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dateKey
}

func (d *Diary) Snapshot() DiaryView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewOf(d.dateKey, d.log)
}

// SelectDate loads dateKey and discards the in-memory state of the previous
// day, which is already persisted.
func (d *Diary) SelectDate(ctx context.Context, dateKey string) (Outcome, error) {
	if !model.IsValidDateKey(dateKey) {
		return Outcome{}, ErrInvalidDate
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	utils.TrackDiaryAction("select_date")
	return d.switchTo(ctx, dateKey), nil
}

// ShiftDate moves the active date by days (negative goes back). Shifts that
// leave years 0001-9999 are rejected with ErrInvalidDate.
func (d *Diary) ShiftDate(ctx context.Context, days int) (Outcome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, _ := model.ParseDateKey(d.dateKey, d.schedule.Location)
	shifted := current.AddDate(0, 0, days)
	target := model.FormatDateKey(shifted)
	if shifted.Year() < 1 || shifted.Year() > 9999 || !model.IsValidDateKey(target) {
		return Outcome{}, fmt.Errorf("%w: shift of %d days from %s", ErrInvalidDate, days, d.dateKey)
	}
	utils.TrackDiaryAction("shift_date")
	return d.switchTo(ctx, target), nil
}

// ToggleTask completes or un-completes a task. Ids outside the catalog can
// only be removed, never added; the same holds for the medication task on a
// day that is not a dosing day.
func (d *Diary) ToggleTask(ctx context.Context, taskID string) (Outcome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if out, ok := d.reloadIfUnread(ctx); !ok {
		return out, nil
	}
	completed := d.log.IsCompleted(taskID)
	if _, ok := model.FindTask(taskID); !ok && !completed {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if taskID == d.schedule.TaskID && !completed {
		if dosing, _ := d.schedule.IsDosingDateKey(d.dateKey); !dosing {
			return Outcome{}, fmt.Errorf("%w: %s on %s", ErrTaskNotScheduled, taskID, d.dateKey)
		}
	}
	next := ToggleTaskCompletion(d.log, taskID, d.clock.Now().In(d.schedule.Location))
	return d.commit(ctx, next, "toggle_task"), nil
}

func (d *Diary) AdjustCounter(ctx context.Context, counter Counter, delta int) (Outcome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch counter {
	case CounterUrine, CounterStool:
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}
	if out, ok := d.reloadIfUnread(ctx); !ok {
		return out, nil
	}
	next := d.log.Clone()
	switch counter {
	case CounterUrine:
		next.UrineCount = AdjustCounter(next.UrineCount, delta)
	case CounterStool:
		next.StoolCount = AdjustCounter(next.StoolCount, delta)
	}
	return d.commit(ctx, next, "adjust_counter"), nil
}

func (d *Diary) AdjustUrine(ctx context.Context, delta int) Outcome {
	outcome, _ := d.AdjustCounter(ctx, CounterUrine, delta)
	return outcome
}

func (d *Diary) AdjustStool(ctx context.Context, delta int) Outcome {
	outcome, _ := d.AdjustCounter(ctx, CounterStool, delta)
	return outcome
}

func (d *Diary) SetNotes(ctx context.Context, notes string) Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	if out, ok := d.reloadIfUnread(ctx); !ok {
		return out
	}
	return d.commit(ctx, SetNotes(d.log, notes), "set_notes")
}

// AddPhoto appends an already encoded photo to whichever day is active when
// the upload finished decoding.
func (d *Diary) AddPhoto(ctx context.Context, encoded string) Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	if out, ok := d.reloadIfUnread(ctx); !ok {
		return out
	}
	return d.commit(ctx, AddPhoto(d.log, encoded), "add_photo")
}

func (d *Diary) RemovePhoto(ctx context.Context, index int) Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	if out, ok := d.reloadIfUnread(ctx); !ok {
		return out
	}
	return d.commit(ctx, RemovePhoto(d.log, index), "remove_photo")
}

// Summary renders the share text for the active day
func (d *Diary) Summary() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summaryOf(d.dateKey, d.log)
}

// LoadDay reads any day without touching the active state
func (d *Diary) LoadDay(ctx context.Context, dateKey string) (DiaryView, error) {
	if !model.IsValidDateKey(dateKey) {
		return DiaryView{}, ErrInvalidDate
	}
	log, err := d.store.Load(ctx, dateKey)
	if err != nil {
		return DiaryView{}, err
	}
	return d.viewOf(dateKey, log), nil
}

// SummaryFor renders the share text of any stored day
func (d *Diary) SummaryFor(ctx context.Context, dateKey string) (string, error) {
	if !model.IsValidDateKey(dateKey) {
		return "", ErrInvalidDate
	}
	log, err := d.store.Load(ctx, dateKey)
	if err != nil {
		return "", err
	}
	return d.summaryOf(dateKey, log), nil
}

func (d *Diary) PetName() string {
	return d.petName
}

func (d *Diary) Schedule() MedicationSchedule {
	return d.schedule
}

// caller holds d.mu
func (d *Diary) switchTo(ctx context.Context, dateKey string) Outcome {
	var notice string
	log, err := d.store.Load(ctx, dateKey)
	if err != nil {
		utils.TrackError("storage", "load_failed")
		d.logger.Warn("Failed to load daily log, using defaults",
			zap.String("date", dateKey), zap.Error(err))
		log = model.NewDailyLog(dateKey)
		notice = noticeLoadFailed
	}
	d.dateKey = dateKey
	d.log = log
	d.unread = err != nil
	return Outcome{View: d.viewOf(dateKey, log), Notice: notice}
}

// reloadIfUnread retries the load of an unread active day before a mutation.
// ok is false when the record is still unreadable; the returned outcome then
// carries the unchanged view and a notice, and nothing is written.
// caller holds d.mu
func (d *Diary) reloadIfUnread(ctx context.Context) (Outcome, bool) {
	if !d.unread {
		return Outcome{}, true
	}
	log, err := d.store.Load(ctx, d.dateKey)
	if err != nil {
		utils.TrackError("storage", "load_retry_failed")
		d.logger.Warn("Daily log still unreadable, edit refused",
			zap.String("date", d.dateKey), zap.Error(err))
		return Outcome{View: d.viewOf(d.dateKey, d.log), Notice: noticeUnread}, false
	}
	d.log = log
	d.unread = false
	return Outcome{}, true
}

// commit installs next as the in-memory state and writes it. A failed write
// keeps next in memory; the following successful save carries it to storage.
// caller holds d.mu
func (d *Diary) commit(ctx context.Context, next *model.DailyLog, action string) Outcome {
	d.log = next
	utils.TrackDiaryAction(action)

	var notice string
	if err := d.store.Save(ctx, next); err != nil {
		utils.SaveFailuresTotal.Inc()
		d.logger.Warn("Failed to save daily log",
			zap.String("date", next.Date),
			zap.String("action", action),
			zap.Error(err))
		notice = noticeSaveFailed
	}
	return Outcome{View: d.viewOf(d.dateKey, next), Notice: notice}
}

func (d *Diary) summaryOf(dateKey string, log *model.DailyLog) string {
	date, _ := model.ParseDateKey(dateKey, d.schedule.Location)
	return FormatStatusSummary(SummaryInput{
		PetName:         d.petName,
		Date:            date,
		Log:             log,
		DosingDay:       d.schedule.IsDosingDay(date),
		MedicationTaken: log.IsCompleted(d.schedule.TaskID),
	})
}
