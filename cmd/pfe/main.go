package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/game-de-it/pfe/app"
	"github.com/game-de-it/pfe/catalog"
	"github.com/game-de-it/pfe/storage"
	"github.com/game-de-it/pfe/style"
)

// version is stamped by the build via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath  string
		dataDir  string
		debug    bool
		windowed bool
	)

	cmd := &cobra.Command{
		Use:          "pfe",
		Short:        "ROM launcher shell for handheld devices",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, dataDir, debug, windowed)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to pfe.toml (default beside the binary)")
	cmd.Flags().StringVar(&dataDir, "data", "", "state directory (default data/ beside the binary)")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose logging to the data directory")
	cmd.Flags().BoolVar(&windowed, "windowed", false, "run in a window instead of fullscreen")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pfe %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	})
	return cmd
}

// besideBinary resolves name against the executable's directory, the
// conventional home for both config and state on the device.
func besideBinary(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

func run(cfgPath, dataDir string, debug, windowed bool) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfgPath == "" {
		cfgPath = besideBinary("pfe.toml")
	}
	if dataDir == "" {
		dataDir = besideBinary("data")
	}

	cfg, err := catalog.Load(cfgPath)
	if err != nil {
		return err
	}

	if debug || cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
		attachDebugLog(logger, dataDir)
	}
	log := logrus.NewEntry(logger)

	store := storage.Open(dataDir, log.WithField("component", "storage"))
	shell := app.New(app.Options{
		Config:  cfg,
		Store:   store,
		Log:     log.WithField("component", "app"),
		Version: version,
	})

	ebiten.SetWindowTitle("PFE")
	ebiten.SetWindowSize(style.ScreenWidth, style.ScreenHeight)
	ebiten.SetFullscreen(!windowed)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(app.TPS)

	err = ebiten.RunGame(shell)
	shell.Shutdown()
	return err
}

// attachDebugLog mirrors log output into data/debug.log so crashes on
// the device can be read back later. Failure to open it is not fatal.
func attachDebugLog(logger *logrus.Logger, dataDir string) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Warnf("debug log unavailable: %v", err)
		return
	}
	path := filepath.Join(dataDir, "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Warnf("debug log unavailable: %v", err)
		return
	}
	fmt.Fprintf(f, "----- session %s -----\n", time.Now().Format(time.RFC3339))
	logger.SetOutput(io.MultiWriter(os.Stderr, f))
}
