package engine

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestOpen_MemoryPool(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()
	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("MaxOpenConnections = %d, want 1", got)
	}
	if _, err := db.Exec(`CREATE TABLE colors(hex TEXT PRIMARY KEY)`); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO colors(hex) VALUES ('#ff355e'), ('#0e5d83')`); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	// every goroutine shares the one connection holding the table
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var d float64
			errs <- db.QueryRow(`SELECT MIN(color_distance(hex, '#ff3860')) FROM colors`).Scan(&d)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("query failed: %v", err)
		}
	}
}

func TestOpen_FilePool(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "palette.sqlite"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if got := db.Stats().MaxOpenConnections; got != 0 {
		t.Fatalf("MaxOpenConnections = %d, want unlimited", got)
	}
	var d float64
	if err := db.QueryRow(`SELECT color_distance('#ff355e', '#ff355e')`).Scan(&d); err != nil {
		t.Fatalf("color_distance without explicit registration failed: %v", err)
	}
	if d != 0 {
		t.Fatalf("color_distance(same) = %v, want 0", d)
	}
}

func TestIsMemory(t *testing.T) {
	for dsn, want := range map[string]bool{
		":memory:":                     true,
		"file::memory:?cache=shared":   true,
		"file:palette?mode=memory":     true,
		"palette.sqlite":               false,
		"file:palette.sqlite?_pragma=": false,
	} {
		if got := IsMemory(dsn); got != want {
			t.Fatalf("IsMemory(%q) = %v, want %v", dsn, got, want)
		}
	}
}
