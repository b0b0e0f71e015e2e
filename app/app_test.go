package app

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/storage"
)

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func testConfig(t *testing.T) *catalog.Config {
	t.Helper()
	return &catalog.Config{
		Categories: []catalog.Category{
			{
				Title:      "SFC",
				Dir:        t.TempDir(),
				Extensions: []string{".sfc"},
				Type:       "RA",
				Cores:      []string{"snes9x"},
			},
		},
	}
}

func newTestApp(t *testing.T, cfg *catalog.Config, store *storage.Store) *App {
	t.Helper()
	a := New(Options{Config: cfg, Store: store, Log: testLog(), Version: "test"})
	t.Cleanup(a.Shutdown)
	return a
}

func TestSessionSnapshotMapsSplashToMainMenu(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg, storage.Open(t.TempDir(), testLog()))

	snap := a.sessionSnapshot()
	if snap.Screen != nav.ScreenMainMenu.String() {
		t.Errorf("Screen = %q, want %q (splash never persists)", snap.Screen, nav.ScreenMainMenu)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	dataDir := t.TempDir()
	a := newTestApp(t, cfg, storage.Open(dataDir, testLog()))

	// Put the shell mid-browse: file list, two levels deep, with a saved
	// category position.
	a.machine.Replace(nav.ScreenFileList)
	a.machine.Set(nav.KeySelectedCategory, "SFC")
	a.machine.SetPosition("SFC", nav.Position{Index: 3, Scroll: 1})
	a.fileList.subdir = "disc2"
	a.fileList.stack = []string{"disc2"}
	a.fileList.list.SetCount(30)
	a.fileList.list.SetCursor(12, 5)

	a.Quit()
	if !a.quitting {
		t.Fatal("Quit did not stop the loop")
	}

	// A fresh process opens the same data directory.
	store := storage.Open(dataDir, testLog())
	snap, ok := store.LoadSession()
	if !ok {
		t.Fatal("no session on disk after Quit")
	}
	if snap.Screen != "FileList" || snap.Category != "SFC" {
		t.Errorf("snapshot = %q/%q, want FileList/SFC", snap.Screen, snap.Category)
	}
	if snap.Subdirectory != "disc2" || len(snap.DirStack) != 1 {
		t.Errorf("subdir = %q stack = %v, want disc2 one deep", snap.Subdirectory, snap.DirStack)
	}
	if snap.SelectedIndex != 12 || snap.ScrollOffset != 5 {
		t.Errorf("cursor = %d/%d, want 12/5", snap.SelectedIndex, snap.ScrollOffset)
	}

	b := newTestApp(t, cfg, store)
	if got := b.machine.GetString(nav.KeyPostSplash, ""); got != "FileList" {
		t.Errorf("post-splash target = %q, want FileList", got)
	}
	if got := b.machine.GetString(nav.KeySelectedCategory, ""); got != "SFC" {
		t.Errorf("restored category = %q, want SFC", got)
	}
	if got := b.machine.GetString(nav.KeySubdirectory, ""); got != "disc2" {
		t.Errorf("restored subdir = %q, want disc2", got)
	}
	if got := b.machine.GetInt(nav.KeyLaunchIndex, -1); got != 12 {
		t.Errorf("restored index = %d, want 12", got)
	}
	if got := b.machine.GetInt(nav.KeyLaunchScroll, -1); got != 5 {
		t.Errorf("restored scroll = %d, want 5", got)
	}
	if got := b.machine.PositionFor("SFC"); got.Index != 3 || got.Scroll != 1 {
		t.Errorf("restored position = %+v, want {3 1}", got)
	}

	// The machine still boots on the splash; the target is staged, not
	// jumped to.
	if b.machine.Current() != nav.ScreenSplash {
		t.Errorf("Current = %v, want Splash", b.machine.Current())
	}
}

func TestRestoreSkipsFileListStagingForOtherScreens(t *testing.T) {
	cfg := testConfig(t)
	dataDir := t.TempDir()

	store := storage.Open(dataDir, testLog())
	if err := store.SaveSession(storage.SessionSnapshot{
		Screen:       "Settings",
		Subdirectory: "stale",
	}); err != nil {
		t.Fatal(err)
	}

	a := newTestApp(t, cfg, storage.Open(dataDir, testLog()))
	if got := a.machine.GetString(nav.KeyPostSplash, ""); got != "Settings" {
		t.Errorf("post-splash target = %q, want Settings", got)
	}
	if got := a.machine.GetString(nav.KeySubdirectory, ""); got != "" {
		t.Errorf("subdirectory staged for a non-browse screen: %q", got)
	}
}

func TestConsumeLaunchFailureKeepsShellRunning(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg, storage.Open(t.TempDir(), testLog()))

	a.machine.Set(nav.KeyLaunchROM, "/roms/nope/Game.bin")
	a.machine.Set(nav.KeyLaunchCategory, "DoesNotExist")
	a.machine.Set(nav.KeyCoreOverride, "whatever")
	a.machine.Set(nav.KeySubdirectory, "deep")

	a.consumeLaunch()

	if a.quitting {
		t.Fatal("failed launch must not stop the shell")
	}
	if !a.toast.Active() {
		t.Error("failed launch should raise a notification")
	}
	for _, key := range launchKeys {
		if _, ok := a.machine.Get(key); ok {
			t.Errorf("staged key %q survived the failure", key)
		}
	}
	if a.store.HistoryLen() != 0 {
		t.Errorf("history grew to %d on a failed launch", a.store.HistoryLen())
	}
	if _, ok := a.store.LoadSession(); ok {
		t.Error("session written on a failed launch")
	}
}

func TestStageAutoLaunchPicksNewestUsable(t *testing.T) {
	cfg := testConfig(t)
	store := storage.Open(t.TempDir(), testLog())

	romDir := cfg.Categories[0].Dir
	existing := touchROM(t, romDir, "Kirby.sfc")

	older := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	records := []storage.HistoryRecord{
		{ROMPath: existing, Category: "SFC", LastPlayed: older},
		{ROMPath: filepath.Join(romDir, "Gone.sfc"), Category: "SFC", LastPlayed: older.AddDate(0, 0, 1)},
		{ROMPath: existing, Category: "Unknown", LastPlayed: older.AddDate(0, 0, 2)},
	}
	for _, rec := range records {
		if err := store.AppendHistory(rec); err != nil {
			t.Fatal(err)
		}
	}

	a := newTestApp(t, cfg, store)
	a.autoLaunch = nil
	a.stageAutoLaunch()

	if a.autoLaunch == nil {
		t.Fatal("nothing staged")
	}
	if a.autoLaunch.ROMPath != existing || a.autoLaunch.Category != "SFC" {
		t.Errorf("staged %s (%s), want the newest record whose file and category still exist",
			a.autoLaunch.ROMPath, a.autoLaunch.Category)
	}
}
