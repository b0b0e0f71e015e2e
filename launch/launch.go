// Package launch resolves which emulator runs a ROM and hands the ROM
// off to it. A launch is all or nothing: state is recorded only after the
// emulator process starts, and a failed launch leaves every record
// untouched.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/storage"
)

// Audio is paused for the handoff and resumed when the launch fails.
type Audio interface {
	Pause()
	Resume()
}

// Request names what to launch.
type Request struct {
	ROMPath       string
	Category      string
	RequestedCore string
}

// Orchestrator runs launches against the catalog and the store.
type Orchestrator struct {
	cfg   *catalog.Config
	store *storage.Store
	audio Audio
	log   *logrus.Entry

	// start is swapped in tests to observe the command without spawning.
	start func(*exec.Cmd) error
}

// New creates an orchestrator. audio may be nil.
func New(cfg *catalog.Config, store *storage.Store, audio Audio, log *logrus.Entry) *Orchestrator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Orchestrator{
		cfg:   cfg,
		store: store,
		audio: audio,
		log:   log,
		start: (*exec.Cmd).Start,
	}
}

// Launch resolves the request, starts the emulator and, once the process
// is up, records the launch: one history record, the core preference and
// the pre-launch session snapshot. The process is never waited on; a nil
// return means the caller should shut the shell down. On error nothing
// has been recorded and audio is running again.
func (o *Orchestrator) Launch(req Request, snap storage.SessionSnapshot) error {
	cat, ok := o.cfg.CategoryByTitle(req.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", req.Category)
	}
	if _, err := os.Stat(req.ROMPath); err != nil {
		return fmt.Errorf("ROM not found: %s", req.ROMPath)
	}

	core, err := ResolveCore(req.RequestedCore, req.ROMPath, cat, o.store)
	if err != nil {
		return err
	}
	dispatch, err := BuildDispatch(o.cfg, cat, core, req.ROMPath)
	if err != nil {
		return err
	}

	if o.audio != nil {
		o.audio.Pause()
	}

	cmd := exec.Command(dispatch.Runner, dispatch.Args...)
	if err := o.start(cmd); err != nil {
		if o.audio != nil {
			o.audio.Resume()
		}
		return fmt.Errorf("failed to start %s: %w", dispatch.Runner, err)
	}

	o.log.WithFields(logrus.Fields{
		"rom":    req.ROMPath,
		"core":   dispatch.Core,
		"runner": dispatch.Runner,
	}).Info("launched")

	// The emulator owns the screen now. Record the launch; storage
	// problems are logged but cannot stop the handoff.
	if err := o.store.AppendHistory(storage.HistoryRecord{
		ROMPath:    req.ROMPath,
		Category:   req.Category,
		CoreUsed:   dispatch.Core,
		LastPlayed: time.Now(),
	}); err != nil {
		o.log.Warnf("history not recorded: %v", err)
	}
	if err := o.store.SetCorePreference(req.ROMPath, dispatch.Core); err != nil {
		o.log.Warnf("core preference not recorded: %v", err)
	}
	if err := o.store.SaveSession(snap); err != nil {
		o.log.Warnf("session not recorded: %v", err)
	}

	return nil
}
