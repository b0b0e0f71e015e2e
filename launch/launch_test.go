package launch

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/storage"
)

type fakeAudio struct {
	paused  int
	resumed int
}

func (f *fakeAudio) Pause()  { f.paused++ }
func (f *fakeAudio) Resume() { f.resumed++ }

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// launchFixture wires an orchestrator against a real config tree and a
// real store, with process starting stubbed out.
type launchFixture struct {
	orch    *Orchestrator
	store   *storage.Store
	audio   *fakeAudio
	romPath string
	started []*exec.Cmd
}

func newFixture(t *testing.T, startErr error) *launchFixture {
	t.Helper()

	romBase := t.TempDir()
	if err := os.MkdirAll(filepath.Join(romBase, "nes"), 0755); err != nil {
		t.Fatal(err)
	}
	romPath := filepath.Join(romBase, "nes", "mario.nes")
	if err := os.WriteFile(romPath, []byte("rom"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t, romBase)
	store := storage.Open(t.TempDir(), testLog())
	audio := &fakeAudio{}

	f := &launchFixture{store: store, audio: audio, romPath: romPath}
	f.orch = New(cfg, store, audio, testLog())
	f.orch.start = func(cmd *exec.Cmd) error {
		f.started = append(f.started, cmd)
		return startErr
	}
	return f
}

func snapshot() storage.SessionSnapshot {
	return storage.SessionSnapshot{
		Screen:   nav.ScreenFileList.String(),
		Category: "NES",
	}
}

func TestLaunchSuccessRecordsEverything(t *testing.T) {
	f := newFixture(t, nil)

	err := f.orch.Launch(Request{ROMPath: f.romPath, Category: "NES"}, snapshot())
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}

	if len(f.started) != 1 {
		t.Fatalf("started %d processes, want 1", len(f.started))
	}
	args := f.started[0].Args
	// argv: runner, core path, ROM path
	if len(args) != 3 || args[1] != "/usr/lib/libretro/fceumm_libretro.so" || args[2] != f.romPath {
		t.Errorf("argv = %v", args)
	}

	if f.store.HistoryLen() != 1 {
		t.Fatalf("history len = %d, want exactly 1", f.store.HistoryLen())
	}
	rec := f.store.History()[0]
	if rec.ROMPath != f.romPath || rec.Category != "NES" || rec.CoreUsed != "fceumm" {
		t.Errorf("history record = %+v", rec)
	}
	if rec.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if core, ok := f.store.CorePreference(f.romPath); !ok || core != "fceumm" {
		t.Errorf("preference = %q, %v", core, ok)
	}

	snap, ok := f.store.LoadSession()
	if !ok || snap.Screen != "FileList" {
		t.Errorf("session = %+v, %v", snap, ok)
	}

	// Audio stays paused for the handoff.
	if f.audio.paused != 1 || f.audio.resumed != 0 {
		t.Errorf("audio paused=%d resumed=%d, want 1, 0", f.audio.paused, f.audio.resumed)
	}
}

func TestLaunchFailureMutatesNothing(t *testing.T) {
	f := newFixture(t, errors.New("exec format error"))

	err := f.orch.Launch(Request{ROMPath: f.romPath, Category: "NES"}, snapshot())
	if err == nil {
		t.Fatal("Launch should fail when the process cannot start")
	}

	if f.store.HistoryLen() != 0 {
		t.Error("failed launch must not append history")
	}
	if _, ok := f.store.CorePreference(f.romPath); ok {
		t.Error("failed launch must not record a preference")
	}
	if _, ok := f.store.LoadSession(); ok {
		t.Error("failed launch must not write a session")
	}
	if f.audio.paused != 1 || f.audio.resumed != 1 {
		t.Errorf("audio paused=%d resumed=%d, want 1, 1", f.audio.paused, f.audio.resumed)
	}
}

func TestLaunchMissingROMFailsBeforeSideEffects(t *testing.T) {
	f := newFixture(t, nil)

	err := f.orch.Launch(Request{ROMPath: f.romPath + ".gone", Category: "NES"}, snapshot())
	if err == nil {
		t.Fatal("missing ROM should fail")
	}
	if len(f.started) != 0 {
		t.Error("nothing should have been started")
	}
	if f.audio.paused != 0 {
		t.Error("audio must not be touched before validation passes")
	}
	if f.store.HistoryLen() != 0 {
		t.Error("no history on validation failure")
	}
}

func TestLaunchUnknownCategory(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.orch.Launch(Request{ROMPath: f.romPath, Category: "N64"}, snapshot()); err == nil {
		t.Error("unknown category should fail")
	}
	if len(f.started) != 0 {
		t.Error("nothing should have been started")
	}
}

func TestLaunchUsesRequestedCore(t *testing.T) {
	f := newFixture(t, nil)

	err := f.orch.Launch(Request{
		ROMPath:       f.romPath,
		Category:      "NES",
		RequestedCore: "nestopia",
	}, snapshot())
	if err != nil {
		t.Fatal(err)
	}

	if rec := f.store.History()[0]; rec.CoreUsed != "nestopia" {
		t.Errorf("CoreUsed = %q, want nestopia", rec.CoreUsed)
	}
	args := f.started[0].Args
	if args[1] != "/usr/lib/libretro/nestopia_libretro.so" {
		t.Errorf("core arg = %q", args[1])
	}
}

func TestLaunchHonorsStoredPreference(t *testing.T) {
	f := newFixture(t, nil)
	if err := f.store.SetCorePreference(f.romPath, "nestopia"); err != nil {
		t.Fatal(err)
	}

	if err := f.orch.Launch(Request{ROMPath: f.romPath, Category: "NES"}, snapshot()); err != nil {
		t.Fatal(err)
	}
	if rec := f.store.History()[0]; rec.CoreUsed != "nestopia" {
		t.Errorf("CoreUsed = %q, want the stored preference", rec.CoreUsed)
	}
}

func TestLaunchIgnoresStalePreference(t *testing.T) {
	f := newFixture(t, nil)
	// A core that was removed from the category config.
	if err := f.store.SetCorePreference(f.romPath, "quicknes"); err != nil {
		t.Fatal(err)
	}

	if err := f.orch.Launch(Request{ROMPath: f.romPath, Category: "NES"}, snapshot()); err != nil {
		t.Fatal(err)
	}
	if rec := f.store.History()[0]; rec.CoreUsed != "fceumm" {
		t.Errorf("CoreUsed = %q, want the category default", rec.CoreUsed)
	}
}
