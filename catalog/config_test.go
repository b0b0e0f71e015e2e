package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pfe.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
rom_base = "/roms"
core_path = "/usr/lib/libretro"
splash_time = 4

[runners]
RA = "scripts/run_ra.sh"
SA_PPSSPP = "/usr/bin/ppsspp"

[scripts]
reboot = "scripts/reboot.sh"

[[category]]
title = "NES"
dir = "nes"
extensions = ["nes", ".ZIP"]
cores = ["fceumm", "nestopia"]

[[category]]
title = "PSP"
dir = "/mnt/sd/psp"
extensions = [".iso"]
type = "SA"
ignore = ["*.sav"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ROMBase != "/roms" || cfg.CorePath != "/usr/lib/libretro" {
		t.Errorf("paths = %q, %q", cfg.ROMBase, cfg.CorePath)
	}
	if cfg.SplashTime != 4 {
		t.Errorf("SplashTime = %d, want 4", cfg.SplashTime)
	}

	nes, ok := cfg.CategoryByTitle("NES")
	if !ok {
		t.Fatal("NES category missing")
	}
	if nes.Dir != "/roms/nes" {
		t.Errorf("relative dir should resolve against rom_base, got %q", nes.Dir)
	}
	if nes.Type != "RA" {
		t.Errorf("unset type should default to RA, got %q", nes.Type)
	}
	// Extensions are normalized to lowercase dotted form.
	if nes.Extensions[0] != ".nes" || nes.Extensions[1] != ".zip" {
		t.Errorf("extensions = %v", nes.Extensions)
	}

	psp, _ := cfg.CategoryByTitle("PSP")
	if psp.Dir != "/mnt/sd/psp" {
		t.Errorf("absolute dir must stay put, got %q", psp.Dir)
	}
	if !psp.Ignored("save/game.sav") {
		t.Error("*.sav should match via base name")
	}
	if psp.Ignored("game.iso") {
		t.Error("game.iso should not be ignored")
	}

	if core, ok := nes.DefaultCore(); !ok || core != "fceumm" {
		t.Errorf("DefaultCore = %q, %v", core, ok)
	}
	if !nes.HasCore("nestopia") || nes.HasCore("mgba") {
		t.Error("HasCore membership wrong")
	}
}

func TestRunnerResolution(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
rom_base = "/roms"

[runners]
RA = "scripts/run_ra.sh"
SA_X = "/opt/x/run"

[[category]]
title = "NES"
dir = "nes"
extensions = [".nes"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	ra, ok := cfg.Runner("RA")
	if !ok || ra != filepath.Join(dir, "scripts/run_ra.sh") {
		t.Errorf("Runner(RA) = %q, %v", ra, ok)
	}
	sa, ok := cfg.Runner("SA_X")
	if !ok || sa != "/opt/x/run" {
		t.Errorf("Runner(SA_X) = %q, %v", sa, ok)
	}
	if _, ok := cfg.Runner("SA_MISSING"); ok {
		t.Error("missing runner should report ok=false")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing title", "[[category]]\ndir = \"x\"\nextensions = [\".nes\"]\n"},
		{"missing dir", "[[category]]\ntitle = \"X\"\nextensions = [\".nes\"]\n"},
		{"missing extensions", "[[category]]\ntitle = \"X\"\ndir = \"x\"\n"},
		{"bad glob", "[[category]]\ntitle = \"X\"\ndir = \"x\"\nextensions = [\".nes\"]\nignore = [\"[\"]\n"},
		{"bad toml", "rom_base = \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.content)
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestSplashTimeClamped(t *testing.T) {
	for _, raw := range []string{"0", "9", "-3"} {
		path := writeConfig(t, t.TempDir(), "splash_time = "+raw+"\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.SplashTime != splashDefault {
			t.Errorf("splash_time %s loaded as %d, want default %d", raw, cfg.SplashTime, splashDefault)
		}
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PFE_TEST_BASE", "/mnt/cards")
	if got := ExpandPath("$PFE_TEST_BASE/roms"); got != "/mnt/cards/roms" {
		t.Errorf("ExpandPath = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := ExpandPath("~/roms"); got != filepath.Join(home, "roms") {
		t.Errorf("ExpandPath(~/roms) = %q", got)
	}
}
