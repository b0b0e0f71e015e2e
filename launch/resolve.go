package launch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/game-de-it/pfe/catalog"
)

// coreSpec is a parsed core entry: a dispatch type and a bare core name.
// Raw spec strings look like "RA:fceumm", "SA:ppsspp", "PORTS:doom" or
// just "fceumm".
type coreSpec struct {
	Type string
	Name string
}

// parseCoreSpec splits a raw core spec. A spec without a type prefix uses
// the category's default dispatch type.
func parseCoreSpec(raw, defaultType string) coreSpec {
	if defaultType == "" {
		defaultType = "RA"
	}
	if idx := strings.Index(raw, ":"); idx > 0 {
		return coreSpec{
			Type: strings.ToUpper(raw[:idx]),
			Name: raw[idx+1:],
		}
	}
	return coreSpec{Type: strings.ToUpper(defaultType), Name: raw}
}

// NormalizeCore turns a bare core name into a libretro filename. Names
// that already carry an extension or a _libretro suffix pass through.
//
//	"nestopia"          -> "nestopia_libretro.so"
//	"nestopia_libretro" -> "nestopia_libretro"
//	"custom_core.so"    -> "custom_core.so"
func NormalizeCore(name string) string {
	if strings.Contains(name, ".") || strings.HasSuffix(name, "_libretro") {
		return name
	}
	return name + "_libretro.so"
}

// ResolveCore picks the core spec for a launch:
//  1. the explicit override from the core select screen,
//  2. the persisted preference for the ROM, while it is still one of the
//     category's cores,
//  3. the category's first core.
type preferenceSource interface {
	CorePreference(romPath string) (string, bool)
}

func ResolveCore(requested, romPath string, cat *catalog.Category, prefs preferenceSource) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if prefs != nil {
		if pref, ok := prefs.CorePreference(romPath); ok && cat.HasCore(pref) {
			return pref, nil
		}
	}
	if core, ok := cat.DefaultCore(); ok {
		return core, nil
	}
	return "", fmt.Errorf("category %q has no cores", cat.Title)
}

// Dispatch is a fully resolved launch command.
type Dispatch struct {
	Runner string
	Args   []string
	Core   string // the resolved raw core spec, for bookkeeping
}

// BuildDispatch maps a resolved core spec to the command that launches it.
//
//	RA    -> the libretro runner with [core path, ROM path]
//	SA    -> the standalone emulator registered as SA_<NAME> with [ROM path]
//	other -> the runner registered under the type with [ROM path]
func BuildDispatch(cfg *catalog.Config, cat *catalog.Category, rawCore, romPath string) (Dispatch, error) {
	spec := parseCoreSpec(rawCore, cat.Type)

	switch spec.Type {
	case "RA":
		runner, ok := cfg.Runner("RA")
		if !ok {
			return Dispatch{}, fmt.Errorf("no RA runner configured")
		}
		corePath := filepath.Join(cfg.CorePath, NormalizeCore(spec.Name))
		return Dispatch{
			Runner: runner,
			Args:   []string{corePath, romPath},
			Core:   rawCore,
		}, nil

	case "SA":
		key := "SA_" + strings.ToUpper(spec.Name)
		runner, ok := cfg.Runner(key)
		if !ok {
			return Dispatch{}, fmt.Errorf("no %s runner configured", key)
		}
		return Dispatch{
			Runner: runner,
			Args:   []string{romPath},
			Core:   rawCore,
		}, nil

	default:
		runner, ok := cfg.Runner(spec.Type)
		if !ok {
			return Dispatch{}, fmt.Errorf("no %s runner configured", spec.Type)
		}
		return Dispatch{
			Runner: runner,
			Args:   []string{romPath},
			Core:   rawCore,
		}, nil
	}
}

// CoreDisplayName renders a core spec for the core select screen, for
// example "fceumm (RA)" or "ppsspp (SA)".
func CoreDisplayName(raw, defaultType string) string {
	spec := parseCoreSpec(raw, defaultType)
	return fmt.Sprintf("%s (%s)", spec.Name, spec.Type)
}
