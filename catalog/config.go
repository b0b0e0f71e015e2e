// Package catalog describes what the launcher can launch: the static
// pfe.toml configuration of categories, runners and paths, plus directory
// scanning, archive probing and change watching for the ROM trees.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pelletier/go-toml/v2"
)

// Default splash duration bounds, in seconds.
const (
	splashMin     = 1
	splashMax     = 5
	splashDefault = 3
)

// Scripts are the system hooks the shell hands off to: quit menu
// actions, clock setting, and wifi control.
type Scripts struct {
	Reboot      string `toml:"reboot"`
	Shutdown    string `toml:"shutdown"`
	Restart     string `toml:"restart"`
	Datetime    string `toml:"datetime"`
	WifiScan    string `toml:"wifi_scan"`
	WifiConnect string `toml:"wifi_connect"`
	WifiStatus  string `toml:"wifi_status"`
	WifiToggle  string `toml:"wifi_toggle"`
}

// Category is one launchable system: a ROM directory, the extensions that
// count as ROMs in it, and the cores that can run them.
type Category struct {
	Title      string   `toml:"title"`
	Dir        string   `toml:"dir"`
	Extensions []string `toml:"extensions"`
	Type       string   `toml:"type"`
	Cores      []string `toml:"cores"`
	Image      string   `toml:"image"`
	Ignore     []string `toml:"ignore"`

	ignore []glob.Glob
}

// Config is the parsed pfe.toml.
type Config struct {
	ROMBase       string            `toml:"rom_base"`
	CorePath      string            `toml:"core_path"`
	ScreenshotDir string            `toml:"screenshot_dir"`
	BGMDir        string            `toml:"bgm_dir"`
	FontPath      string            `toml:"font_path"`
	SplashImage   string            `toml:"splash_image"`
	SplashTime    int               `toml:"splash_time"`
	Debug         bool              `toml:"debug"`
	Runners       map[string]string `toml:"runners"`
	Scripts       Scripts           `toml:"scripts"`
	Categories    []Category        `toml:"category"`

	baseDir string
}

// Load reads and validates a pfe.toml. Paths may use $VARS and a leading
// ~; category dirs resolve against rom_base unless absolute.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.baseDir = filepath.Dir(path)
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.ROMBase = ExpandPath(c.ROMBase)
	c.CorePath = ExpandPath(c.CorePath)
	c.ScreenshotDir = ExpandPath(c.ScreenshotDir)
	c.BGMDir = ExpandPath(c.BGMDir)
	c.FontPath = ExpandPath(c.FontPath)
	c.SplashImage = ExpandPath(c.SplashImage)

	if c.SplashTime < splashMin || c.SplashTime > splashMax {
		c.SplashTime = splashDefault
	}
	if c.Runners == nil {
		c.Runners = make(map[string]string)
	}

	for _, s := range []*string{
		&c.Scripts.Reboot, &c.Scripts.Shutdown, &c.Scripts.Restart, &c.Scripts.Datetime,
		&c.Scripts.WifiScan, &c.Scripts.WifiConnect, &c.Scripts.WifiStatus, &c.Scripts.WifiToggle,
	} {
		if *s != "" {
			*s = c.ResolvePath(ExpandPath(*s))
		}
	}

	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.Title == "" {
			return fmt.Errorf("category %d has no title", i)
		}
		if cat.Dir == "" {
			return fmt.Errorf("category %q has no dir", cat.Title)
		}
		if len(cat.Extensions) == 0 {
			return fmt.Errorf("category %q has no extensions", cat.Title)
		}

		cat.Dir = ExpandPath(cat.Dir)
		if !filepath.IsAbs(cat.Dir) {
			cat.Dir = filepath.Join(c.ROMBase, cat.Dir)
		}
		if cat.Type == "" {
			cat.Type = "RA"
		}
		for j, ext := range cat.Extensions {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cat.Extensions[j] = ext
		}

		cat.ignore = cat.ignore[:0]
		for _, pattern := range cat.Ignore {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return fmt.Errorf("category %q ignore pattern %q: %w", cat.Title, pattern, err)
			}
			cat.ignore = append(cat.ignore, g)
		}
	}

	return nil
}

// ExpandPath expands $VARS and a leading ~ in a path.
func ExpandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
		}
	}
	return p
}

// ResolvePath resolves a runner or script path against the config file's
// directory when it is relative.
func (c *Config) ResolvePath(p string) string {
	p = ExpandPath(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// Runner looks up a runner command by type name and resolves it.
func (c *Config) Runner(name string) (string, bool) {
	cmd, ok := c.Runners[name]
	if !ok || cmd == "" {
		return "", false
	}
	return c.ResolvePath(cmd), true
}

// CategoryByTitle finds a category by its title.
func (c *Config) CategoryByTitle(title string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Title == title {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// DefaultCore returns the category's first core.
func (cat *Category) DefaultCore() (string, bool) {
	if len(cat.Cores) == 0 {
		return "", false
	}
	return cat.Cores[0], true
}

// HasCore reports whether name is one of the category's cores.
func (cat *Category) HasCore(name string) bool {
	for _, c := range cat.Cores {
		if c == name {
			return true
		}
	}
	return false
}

// MatchesExt reports whether a filename has one of the category's
// extensions, case-insensitively.
func (cat *Category) MatchesExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range cat.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Ignored reports whether a path relative to the category dir matches an
// ignore pattern. Both the full relative path and the base name are
// checked so simple patterns like "*.sav" work.
func (cat *Category) Ignored(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, g := range cat.ignore {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}
