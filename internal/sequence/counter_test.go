package sequence

import (
	"context"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// A single connection keeps the in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.SequenceCounter{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func TestFormat_OffsetByTwo(t *testing.T) {
	if got := Format(1); got != "APP0002" {
		t.Fatalf("expected APP0002, got %s", got)
	}
	if got := Format(42); got != "APP0043" {
		t.Fatalf("expected APP0043, got %s", got)
	}
}

func TestCounterAllocator_FirstCode(t *testing.T) {
	db := openTestDB(t)

	a, err := NewCounterAllocator(db)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	code, err := a.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if code != "APP0002" {
		t.Fatalf("expected first code APP0002, got %s", code)
	}
}

func TestCounterAllocator_ConcurrentCodesAreDistinct(t *testing.T) {
	db := openTestDB(t)

	a, err := NewCounterAllocator(db)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	const n = 50

	var (
		mu    sync.Mutex
		codes = make(map[string]bool, n)
		wg    sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			code, err := a.Next(context.Background())
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if codes[code] {
				t.Errorf("duplicate code %s", code)
			}
			codes[code] = true
		}()
	}

	wg.Wait()

	if len(codes) != n {
		t.Fatalf("expected %d distinct codes, got %d", n, len(codes))
	}
}

func TestCounterAllocator_ResumesFromPersistedValue(t *testing.T) {
	db := openTestDB(t)

	a, err := NewCounterAllocator(db)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := a.Next(context.Background()); err != nil {
			t.Fatalf("next: %v", err)
		}
	}

	// A fresh allocator over the same database must continue, never
	// re-issue.
	b, err := NewCounterAllocator(db)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	code, err := b.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if code != "APP0005" {
		t.Fatalf("expected APP0005 after restart, got %s", code)
	}
}
