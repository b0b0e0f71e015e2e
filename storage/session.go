package storage

// SaveSession writes the snapshot as the current session.
func (s *Store) SaveSession(snap SessionSnapshot) error {
	snap.Version = currentVersion
	s.session = &snap
	return AtomicWriteJSON(s.path(sessionFile), &snap)
}

// LoadSession returns the loaded session snapshot, if any. A missing or
// discarded session returns ok=false and callers start fresh.
func (s *Store) LoadSession() (SessionSnapshot, bool) {
	if s.session == nil {
		return SessionSnapshot{}, false
	}
	return *s.session, true
}

// ClearSession forgets the stored session.
func (s *Store) ClearSession() error {
	s.session = nil
	return AtomicWriteJSON(s.path(sessionFile), &SessionSnapshot{Version: currentVersion})
}
