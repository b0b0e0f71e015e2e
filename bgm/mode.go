package bgm

// Mode selects the playback order for the background music playlist.
type Mode int

const (
	// ModeNormal plays tracks in sorted order, wrapping at the end.
	ModeNormal Mode = iota
	// ModeShuffle plays tracks in a random order, reshuffling each
	// time the playlist is exhausted.
	ModeShuffle
)

// String returns the setting value for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// ParseMode converts a "bgm_mode" setting value to a Mode.
// Unknown values map to ModeNormal.
func ParseMode(s string) Mode {
	if s == "Shuffle" {
		return ModeShuffle
	}
	return ModeNormal
}
