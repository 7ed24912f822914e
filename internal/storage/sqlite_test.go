package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	saves := []struct {
		game    string
		score   int
		ticks   int
		session string
	}{
		{"flappy", 100, 900, "s1"},
		{"flappy", 50, 400, "s2"},
		{"flappy", 200, 1500, "s3"},
		{"space", 500, 3000, "s4"},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.score, s.ticks, s.session); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Ticks != 1500 || scores[0].SessionID != "s3" {
		t.Errorf("top entry = %+v, expected ticks 1500 and session s3", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	spaceScores, err := store.TopScores("space", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(spaceScores) != 1 {
		t.Errorf("Expected 1 space score, got %d", len(spaceScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, 0, "") //nolint:errcheck
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 scores, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTemp(t)
	store.SaveScore("g", 10, 0, "first")  //nolint:errcheck
	store.SaveScore("g", 10, 0, "second") //nolint:errcheck

	scores, err := store.TopScores("g", 10)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0].SessionID != "first" {
		t.Errorf("tie order = %q, %q", scores[0].SessionID, scores[1].SessionID)
	}
}

func TestStoreLongestRuns(t *testing.T) {
	store := openTemp(t)

	saves := []struct {
		score, ticks int
		session      string
	}{
		{50, 300, "a"},
		{90, 120, "b"},
		{10, 900, "c"},
		{70, 300, "d"},
	}
	for _, s := range saves {
		if _, err := store.SaveScore("flappy", s.score, s.ticks, s.session); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.LongestRuns("flappy", 3)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"c", "d", "a"} // Equal ticks rank by score
	if len(runs) != len(expected) {
		t.Fatalf("LongestRuns() returned %d runs, expected %d", len(runs), len(expected))
	}
	for i, run := range runs {
		if run.SessionID != expected[i] {
			t.Errorf("run %d is session %q, expected %q", i, run.SessionID, expected[i])
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("flappy", 30, 0, "") //nolint:errcheck
	store.SaveScore("flappy", 75, 0, "") //nolint:errcheck
	store.SaveScore("space", 999, 0, "") //nolint:errcheck

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 75 {
		t.Errorf("Expected high score 75, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("flappy", 10, 0, "") //nolint:errcheck
	store.SaveScore("space", 20, 0, "")  //nolint:errcheck

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if s, _ := store.TopScores("flappy", 10); len(s) != 0 {
		t.Errorf("flappy scores not cleared: %v", s)
	}
	if s, _ := store.TopScores("space", 10); len(s) != 1 {
		t.Errorf("other games should be untouched, got %v", s)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("flappy", 10, 100, "") //nolint:errcheck
	store.SaveScore("flappy", 30, 700, "") //nolint:errcheck

	stats, err = store.Stats("flappy")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.LongestRun != 700 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('flappy', 42);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("flappy", 50, 10, "new"); err != nil {
		t.Fatalf("SaveScore() after migration failed: %v", err)
	}
	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 || scores[1].Score != 42 || scores[1].SessionID != "" {
		t.Errorf("scores after migration = %+v", scores)
	}
}
