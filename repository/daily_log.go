package repository

import (
	"context"
	"errors"
	"fmt"

	"carediary/model"
	"carediary/utils"

	"go.uber.org/zap"
)

var ErrInvalidDateKey = errors.New("date key must be YYYY-MM-DD")

// DailyLogRepo stores one DailyLog per calendar day under
// "<namespace>-<YYYY-MM-DD>".
type DailyLogRepo struct {
	Store     KVStore
	Namespace string
	logger    *zap.Logger
}

func NewDailyLogRepo(store KVStore, namespace string, logger *zap.Logger) *DailyLogRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyLogRepo{Store: store, Namespace: namespace, logger: logger}
}

func (r *DailyLogRepo) Key(dateKey string) string {
	return r.Namespace + "-" + dateKey
}

// Load returns the stored log for dateKey or a fresh default log when none
// exists. It never writes. Only backend failures are returned as errors;
// damaged records are repaired field by field.
func (r *DailyLogRepo) Load(ctx context.Context, dateKey string) (*model.DailyLog, error) {
	if !model.IsValidDateKey(dateKey) {
		return nil, ErrInvalidDateKey
	}

	raw, err := r.Store.Get(ctx, r.Key(dateKey))
	if errors.Is(err, ErrNotFound) {
		return model.NewDailyLog(dateKey), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dateKey, err)
	}

	log, repaired := DecodeDailyLog(dateKey, raw)
	if len(repaired) > 0 {
		utils.TrackError("storage", "corrupt_record")
		r.logger.Warn("Repaired stored daily log",
			zap.String("date", dateKey),
			zap.Strings("fields", repaired))
	}
	return log, nil
}

// Save overwrites the whole record for log.Date.
func (r *DailyLogRepo) Save(ctx context.Context, log *model.DailyLog) error {
	if log == nil {
		return errors.New("cannot save nil daily log")
	}
	if !model.IsValidDateKey(log.Date) {
		return ErrInvalidDateKey
	}

	data, err := EncodeDailyLog(log)
	if err != nil {
		return fmt.Errorf("encode %s: %w", log.Date, err)
	}
	if err := r.Store.Put(ctx, r.Key(log.Date), data); err != nil {
		return fmt.Errorf("save %s: %w", log.Date, err)
	}
	return nil
}

func (r *DailyLogRepo) Ping(ctx context.Context) error {
	return r.Store.Ping(ctx)
}
