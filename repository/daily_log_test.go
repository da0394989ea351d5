package repository

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"carediary/config"
	"carediary/model"
)

func sampleLog(date string) *model.DailyLog {
	return &model.DailyLog{
		Date:           date,
		CompletedTasks: []model.CompletedTask{{ID: "m-1", CompletedAt: "08:05"}, {ID: "a-2", CompletedAt: "18:40"}},
		UrineCount:     3,
		StoolCount:     1,
		Notes:          "Hid under the bed after the vacuum.",
		Photos:         []string{"data:image/png;base64,iVBORw0KGgo=", "data:image/jpeg;base64,/9j/4AAQ"},
	}
}

// storeContract runs the DailyLogRepo behaviour against any backend
func storeContract(t *testing.T, store KVStore) {
	ctx := context.Background()
	repo := NewDailyLogRepo(store, "test-diary", nil)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "Load absent day returns defaults without writing",
			run: func(t *testing.T) {
				log, err := repo.Load(ctx, "2025-01-01")
				if err != nil {
					t.Fatalf("load failed: %v", err)
				}
				if !reflect.DeepEqual(log, model.NewDailyLog("2025-01-01")) {
					t.Errorf("expected default log, got %+v", log)
				}
				if _, err := store.Get(ctx, repo.Key("2025-01-01")); !errors.Is(err, ErrNotFound) {
					t.Errorf("load must not create a record, Get returned %v", err)
				}
			},
		},
		{
			name: "Save then load round trips every field",
			run: func(t *testing.T) {
				want := sampleLog("2025-12-20")
				if err := repo.Save(ctx, want); err != nil {
					t.Fatalf("save failed: %v", err)
				}
				got, err := repo.Load(ctx, "2025-12-20")
				if err != nil {
					t.Fatalf("load failed: %v", err)
				}
				if !reflect.DeepEqual(got, want) {
					t.Errorf("round trip mismatch\n got %+v\nwant %+v", got, want)
				}
			},
		},
		{
			name: "Save overwrites the whole record",
			run: func(t *testing.T) {
				first := sampleLog("2025-12-21")
				if err := repo.Save(ctx, first); err != nil {
					t.Fatalf("save failed: %v", err)
				}
				second := model.NewDailyLog("2025-12-21")
				second.StoolCount = 2
				if err := repo.Save(ctx, second); err != nil {
					t.Fatalf("save failed: %v", err)
				}
				got, err := repo.Load(ctx, "2025-12-21")
				if err != nil {
					t.Fatalf("load failed: %v", err)
				}
				if !reflect.DeepEqual(got, second) {
					t.Errorf("expected %+v, got %+v", second, got)
				}
			},
		},
		{
			name: "Days do not leak into each other",
			run: func(t *testing.T) {
				a := model.NewDailyLog("2025-12-22")
				a.UrineCount = 3
				if err := repo.Save(ctx, a); err != nil {
					t.Fatalf("save failed: %v", err)
				}
				b, err := repo.Load(ctx, "2025-12-23")
				if err != nil {
					t.Fatalf("load failed: %v", err)
				}
				if b.UrineCount != 0 {
					t.Errorf("expected fresh day, got urineCount %d", b.UrineCount)
				}
			},
		},
		{
			name: "Corrupt record is repaired on load",
			run: func(t *testing.T) {
				if err := store.Put(ctx, repo.Key("2025-12-24"), []byte(`{"urineCount":4,"notes":12}`)); err != nil {
					t.Fatalf("put failed: %v", err)
				}
				got, err := repo.Load(ctx, "2025-12-24")
				if err != nil {
					t.Fatalf("load failed: %v", err)
				}
				if got.UrineCount != 4 || got.Notes != "" {
					t.Errorf("unexpected repaired log %+v", got)
				}
			},
		},
		{
			name: "Invalid date keys are rejected",
			run: func(t *testing.T) {
				if _, err := repo.Load(ctx, "24-12-2025"); !errors.Is(err, ErrInvalidDateKey) {
					t.Errorf("expected ErrInvalidDateKey from Load, got %v", err)
				}
				if err := repo.Save(ctx, model.NewDailyLog("tomorrow")); !errors.Is(err, ErrInvalidDateKey) {
					t.Errorf("expected ErrInvalidDateKey from Save, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestDailyLogRepoMemory(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestDailyLogRepoSQLite(t *testing.T) {
	store, err := NewSQLiteStore(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close(context.Background())
	storeContract(t, store)
}

func TestDailyLogRepoMongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	cfg := config.LoadDatabaseConfig()
	cfg.URI = uri
	client, err := NewMongoClient(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db := client.Database("carediary_test")
	defer func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	}()
	store, err := NewMongoStore(ctx, client, "carediary_test", "daily_logs")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	storeContract(t, store)
}

func TestDailyLogRepoRedis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	store, err := NewRedisStore(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() {
		_ = store.client.FlushDB(ctx).Err()
		_ = store.Close(ctx)
	}()
	storeContract(t, store)
}

func TestRepoKeyLayout(t *testing.T) {
	repo := NewDailyLogRepo(NewMemoryStore(), "donki-diary", nil)
	if got := repo.Key("2025-12-19"); got != "donki-diary-2025-12-19" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestOpenKVStore(t *testing.T) {
	ctx := context.Background()

	store, err := OpenKVStore(ctx, config.DatabaseConfig{Driver: config.DriverMemory})
	if err != nil || store.Backend() != "memory" {
		t.Fatalf("expected memory store, got %v, %v", store, err)
	}

	store, err = OpenKVStore(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil || store.Backend() != "sqlite" {
		t.Fatalf("expected sqlite store, got %v, %v", store, err)
	}
	store.Close(ctx)

	if _, err := OpenKVStore(ctx, config.DatabaseConfig{Driver: "etcd"}); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
