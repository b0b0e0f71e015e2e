package storage

import "strconv"

// CorePreference returns the remembered core for a ROM path.
func (s *Store) CorePreference(romPath string) (string, bool) {
	core, ok := s.cores.Overrides[romPath]
	return core, ok
}

// SetCorePreference remembers the core used for a ROM path.
func (s *Store) SetCorePreference(romPath, core string) error {
	s.cores.Overrides[romPath] = core
	return AtomicWriteJSON(s.path(coresFile), &s.cores)
}

// Setting returns the value for a setting key, falling back to the key's
// default when unset.
func (s *Store) Setting(key string) string {
	if v, ok := s.settings.Settings[key]; ok {
		return v
	}
	return defaultSettings[key]
}

// SettingBool interprets "On" and "true" as true.
func (s *Store) SettingBool(key string) bool {
	v := s.Setting(key)
	return v == "On" || v == "true"
}

// SettingInt parses the value as an integer, falling back to the key's
// default and then to 0.
func (s *Store) SettingInt(key string) int {
	if n, err := strconv.Atoi(s.Setting(key)); err == nil {
		return n
	}
	if n, err := strconv.Atoi(defaultSettings[key]); err == nil {
		return n
	}
	return 0
}

// SetSetting updates one setting and rewrites the file.
func (s *Store) SetSetting(key, value string) error {
	s.settings.Settings[key] = value
	return AtomicWriteJSON(s.path(settingsFile), &s.settings)
}

// Bindings returns a copy of the user key binding overrides, keyed by
// action name.
func (s *Store) Bindings() map[string]string {
	out := make(map[string]string, len(s.keys.Bindings))
	for k, v := range s.keys.Bindings {
		out[k] = v
	}
	return out
}

// SetBinding stores a key override for an action.
func (s *Store) SetBinding(action, keyName string) error {
	s.keys.Bindings[action] = keyName
	return AtomicWriteJSON(s.path(keysFile), &s.keys)
}

// SetBindings replaces the whole override map in one write. The key
// config wizard collects a full set before committing.
func (s *Store) SetBindings(bindings map[string]string) error {
	next := make(map[string]string, len(bindings))
	for k, v := range bindings {
		next[k] = v
	}
	s.keys.Bindings = next
	return AtomicWriteJSON(s.path(keysFile), &s.keys)
}

// ClearBindings removes every key override.
func (s *Store) ClearBindings() error {
	s.keys.Bindings = make(map[string]string)
	return AtomicWriteJSON(s.path(keysFile), &s.keys)
}
