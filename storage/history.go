package storage

// AppendHistory records one launch at the head of the history and rewrites
// the file. Every launch appends exactly one record; nothing is deduped.
func (s *Store) AppendHistory(rec HistoryRecord) error {
	s.history.Entries = append([]HistoryRecord{rec}, s.history.Entries...)
	s.trimHistory()
	return AtomicWriteJSON(s.path(historyFile), &s.history)
}

func (s *Store) trimHistory() {
	if len(s.history.Entries) > s.history.MaxEntries {
		s.history.Entries = s.history.Entries[:s.history.MaxEntries]
	}
}

// History returns the launch records, newest first.
func (s *Store) History() []HistoryRecord {
	out := make([]HistoryRecord, len(s.history.Entries))
	copy(out, s.history.Entries)
	return out
}

// HistoryLen returns the number of stored launch records.
func (s *Store) HistoryLen() int {
	return len(s.history.Entries)
}
