// Package app runs the launcher shell: a fixed 30 tick per second loop
// that feeds debounced input to the active screen, drains background
// work from channels, and hands staged ROMs to the launch orchestrator.
// Everything the App owns is touched only from the game loop goroutine.
package app

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/game-de-it/pfe/bgm"
	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/input"
	"github.com/game-de-it/pfe/launch"
	"github.com/game-de-it/pfe/nav"
	"github.com/game-de-it/pfe/storage"
	"github.com/game-de-it/pfe/style"
)

// TPS is the fixed tick rate of the shell loop.
const TPS = 30

// Options configures a new App.
type Options struct {
	Config  *catalog.Config
	Store   *storage.Store
	Log     *logrus.Entry
	Version string
}

// App is the launcher shell. It implements ebiten.Game.
type App struct {
	cfg     *catalog.Config
	store   *storage.Store
	log     *logrus.Entry
	version string

	machine   *nav.Machine
	source    *input.EbitenSource
	mapper    *input.Mapper
	debouncer *input.Debouncer

	launcher *launch.Orchestrator
	music    *bgm.Manager
	watcher  *catalog.Watcher

	screens map[nav.ScreenID]Screen
	shown   nav.ScreenID

	// fileList is reachable directly; session snapshots read its
	// browsing state and the watcher invalidates its cache.
	fileList *FileListScreen

	toast   Toast
	scripts chan scriptResult

	// autoLaunch is the ROM queued for hands-free startup, staged when
	// the splash closes unless B is held.
	autoLaunch *launch.Request

	quitting     bool
	sessionSaved bool
}

// New builds the shell from a loaded config and an open store.
func New(opts Options) *App {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	a := &App{
		cfg:       opts.Config,
		store:     opts.Store,
		log:       log,
		version:   opts.Version,
		machine:   nav.NewMachine(nav.ScreenSplash),
		source:    input.NewEbitenSource(),
		debouncer: input.NewDebouncer(),
		music:     bgm.NewManager(opts.Config.BGMDir, log),
		scripts:   make(chan scriptResult, 8),
		shown:     nav.ScreenID(-1),
	}
	a.launcher = launch.New(a.cfg, a.store, a.music, log)

	style.ApplyThemeByName(a.store.Setting("theme"))
	style.InitFonts(a.cfg.FontPath, log)
	a.rebuildMapper()

	a.music.Configure(
		a.store.SettingBool("bgm_enabled"),
		a.store.SettingInt("bgm_volume"),
		bgm.ParseMode(a.store.Setting("bgm_mode")),
	)
	a.music.Start()

	if w, err := catalog.NewWatcher(log); err != nil {
		log.Warnf("rom watcher unavailable: %v", err)
	} else {
		for i := range a.cfg.Categories {
			cat := &a.cfg.Categories[i]
			if err := w.WatchCategory(cat.Title, cat.Dir); err != nil {
				log.WithField("category", cat.Title).Warnf("not watching: %v", err)
			}
		}
		w.Start()
		a.watcher = w
	}

	a.fileList = NewFileListScreen()
	a.screens = map[nav.ScreenID]Screen{
		nav.ScreenSplash:           NewSplashScreen(),
		nav.ScreenMainMenu:         NewMainMenuScreen(),
		nav.ScreenFileList:         a.fileList,
		nav.ScreenCoreSelect:       NewCoreSelectScreen(),
		nav.ScreenFavorites:        NewFavoritesScreen(),
		nav.ScreenRecent:           NewRecentScreen(),
		nav.ScreenSearch:           NewSearchScreen(),
		nav.ScreenSettings:         NewSettingsScreen(),
		nav.ScreenWifiSettings:     NewWifiScreen(),
		nav.ScreenKeyConfigMenu:    NewKeyConfigMenuScreen(),
		nav.ScreenKeyConfig:        NewKeyConfigScreen(),
		nav.ScreenBGMConfig:        NewBGMConfigScreen(),
		nav.ScreenDatetimeSettings: NewDatetimeScreen(),
		nav.ScreenStatistics:       NewStatisticsScreen(),
		nav.ScreenAbout:            NewAboutScreen(),
		nav.ScreenQuitMenu:         NewQuitMenuScreen(),
	}

	a.restoreSession()
	if a.store.SettingBool("auto_launch") {
		a.stageAutoLaunch()
	}
	a.applyBrightness(a.store.SettingInt("brightness"))
	return a
}

// Update advances the shell by one tick.
func (a *App) Update() error {
	a.source.Refresh()
	a.debouncer.Tick(a.mapper, a.source)

	a.drainWatcher()
	a.drainScripts()

	a.syncScreen()
	a.consumeLaunch()
	if !a.quitting {
		a.screens[a.shown].Update(a)
		a.syncScreen()
	}

	a.music.Tick()
	a.toast.Tick()

	if a.quitting {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active screen, then the overlays that sit above
// every screen.
func (a *App) Draw(dst *ebiten.Image) {
	dst.Fill(style.Background)
	if s, ok := a.screens[a.shown]; ok {
		s.Draw(a, dst)
	}
	a.toast.Draw(dst)
}

// Layout fixes the logical resolution regardless of the window size.
func (a *App) Layout(int, int) (int, int) {
	return style.ScreenWidth, style.ScreenHeight
}

// Quit stops the loop at the end of the tick, saving the session once.
func (a *App) Quit() {
	if !a.sessionSaved {
		if err := a.store.SaveSession(a.sessionSnapshot()); err != nil {
			a.log.Warnf("session not saved: %v", err)
		}
		a.sessionSaved = true
	}
	a.quitting = true
}

// Shutdown releases background resources. Call after the loop exits.
func (a *App) Shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.music.Close()
}

// syncScreen fires Deactivate and Activate when navigation moved the
// machine since the last look. Runs before and after the screen update
// so a transition is activated before its first Draw.
func (a *App) syncScreen() {
	cur := a.machine.Current()
	if cur == a.shown {
		return
	}
	if prev, ok := a.screens[a.shown]; ok {
		prev.Deactivate(a)
	}
	a.shown = cur
	a.screens[cur].Activate(a)
	a.log.WithField("screen", cur.String()).Debug("screen changed")
}

// drainWatcher marks categories whose ROM directories changed on disk.
func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case title := <-a.watcher.Dirty():
			a.fileList.Invalidate(title)
		default:
			return
		}
	}
}

// stageLaunch queues a ROM for the launch pass. The request is picked
// up at the top of a tick, before the screen update.
func (a *App) stageLaunch(romPath, category string) {
	a.machine.Set(nav.KeyLaunchROM, romPath)
	a.machine.Set(nav.KeyLaunchCategory, category)
}

// launchKeys is every scoped key a staged launch can leave behind.
var launchKeys = []string{
	nav.KeyLaunchROM, nav.KeyLaunchCategory, nav.KeyCoreOverride,
	nav.KeySubdirectory, nav.KeyDirStack, nav.KeyLaunchIndex, nav.KeyLaunchScroll,
}

// consumeLaunch fires a staged launch request. Success means the
// emulator owns the machine and the shell exits; failure clears the
// staging, notifies once and keeps the shell running untouched.
func (a *App) consumeLaunch() {
	rom := a.machine.GetString(nav.KeyLaunchROM, "")
	if rom == "" {
		return
	}
	req := launch.Request{
		ROMPath:       rom,
		Category:      a.machine.GetString(nav.KeyLaunchCategory, ""),
		RequestedCore: a.machine.GetString(nav.KeyCoreOverride, ""),
	}

	if err := a.launcher.Launch(req, a.sessionSnapshot()); err != nil {
		a.log.WithFields(logrus.Fields{
			"rom":      rom,
			"category": req.Category,
		}).Errorf("launch failed: %v", err)
		a.toast.Show("Launch failed: "+err.Error(), toastFailTicks)
		for _, key := range launchKeys {
			a.machine.Delete(key)
		}
		return
	}

	a.sessionSaved = true
	a.quitting = true
}

// sessionSnapshot captures what a future process needs to put the
// player back where they are now. The splash never persists; it maps
// to the main menu.
func (a *App) sessionSnapshot() storage.SessionSnapshot {
	screen := a.machine.Current()
	if screen == nav.ScreenSplash {
		screen = nav.ScreenMainMenu
	}
	return storage.SessionSnapshot{
		Screen:        screen.String(),
		Category:      a.machine.GetString(nav.KeySelectedCategory, ""),
		Positions:     a.machine.Positions(),
		Subdirectory:  a.fileList.subdir,
		DirStack:      append([]string(nil), a.fileList.stack...),
		SelectedIndex: a.fileList.list.Index,
		ScrollOffset:  a.fileList.list.Scroll,
	}
}

// restoreSession stages the state saved before the last launch so the
// shell reopens where the player left it. The splash consumes the
// staged target when it closes.
func (a *App) restoreSession() {
	snap, ok := a.store.LoadSession()
	if !ok {
		return
	}
	target, known := nav.ParseScreenID(snap.Screen)
	if !known {
		a.log.WithField("screen", snap.Screen).Warn("session names an unknown screen")
	}
	a.machine.RestorePositions(snap.Positions)
	if snap.Category != "" {
		a.machine.Set(nav.KeySelectedCategory, snap.Category)
	}
	if target == nav.ScreenFileList {
		a.machine.Set(nav.KeySubdirectory, snap.Subdirectory)
		a.machine.Set(nav.KeyDirStack, append([]string(nil), snap.DirStack...))
		a.machine.Set(nav.KeyLaunchIndex, snap.SelectedIndex)
		a.machine.Set(nav.KeyLaunchScroll, snap.ScrollOffset)
	}
	a.machine.Set(nav.KeyPostSplash, target.String())
	a.log.WithField("screen", target.String()).Info("session restored")
}

// stageAutoLaunch queues the most recent still-existing ROM for a
// hands-free start. The splash stages it on close unless B is held.
// History is newest first, so the first usable record wins.
func (a *App) stageAutoLaunch() {
	for _, rec := range a.store.History() {
		if _, ok := a.cfg.CategoryByTitle(rec.Category); !ok {
			continue
		}
		if _, err := os.Stat(rec.ROMPath); err != nil {
			continue
		}
		a.autoLaunch = &launch.Request{ROMPath: rec.ROMPath, Category: rec.Category}
		a.log.WithField("rom", rec.ROMPath).Info("auto launch queued")
		return
	}
}

// rebuildMapper reloads the button layout and key overrides from
// settings. Called whenever either changes.
func (a *App) rebuildMapper() {
	layout := input.ParseLayout(a.store.Setting("button_layout"))
	a.mapper = input.BuildMapper(layout, a.store.Bindings(), a.log)
}

// saveSetting persists one setting, logging instead of failing. A full
// disk must never take the shell down.
func (a *App) saveSetting(key, value string) {
	if err := a.store.SetSetting(key, value); err != nil {
		a.log.WithField("key", key).Warnf("setting not saved: %v", err)
	}
}
