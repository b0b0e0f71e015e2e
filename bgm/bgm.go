// Package bgm plays background music from a configured directory while
// the shell is idle, pausing cleanly around game launches.
package bgm

import (
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
)

const sampleRate = 48000

// maxTracks caps the playlist size regardless of directory contents.
const maxTracks = 300

// pollInterval is the number of ticks between end-of-track checks.
// Polling once a second is plenty for music transitions.
const pollInterval = 30

// oto context singleton. The process owns a single audio device handle
// for its whole lifetime.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureContext initializes the oto audio context on first use.
func ensureContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-ready
	})
	return otoCtx, otoInitErr
}

// ScanTracks returns the playable files under dir, recursively, in
// case-insensitive sorted order. Only .mp3 and .wav files are playable.
// A missing directory yields an empty playlist and no error.
func ScanTracks(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	var tracks []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".mp3", ".wav":
			tracks = append(tracks, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Slice(tracks, func(i, j int) bool {
		return strings.ToLower(tracks[i]) < strings.ToLower(tracks[j])
	})
	if len(tracks) > maxTracks {
		tracks = tracks[:maxTracks]
	}
	return tracks, nil
}

// Manager drives playlist playback. All methods are called from the
// game tick and are not safe for concurrent use.
type Manager struct {
	log     *logrus.Entry
	tracks  []string
	order   []int
	pos     int
	current int
	mode    Mode
	volume  float64
	enabled bool
	rng     *rand.Rand

	player *oto.Player
	file   *os.File
	paused bool
	tick   int
}

// NewManager scans dir for tracks and returns an idle manager.
// Playback starts only after Configure and Start.
func NewManager(dir string, log *logrus.Entry) *Manager {
	tracks, err := ScanTracks(dir)
	if err != nil && log != nil {
		log.Warnf("bgm scan %s: %v", dir, err)
	}
	m := &Manager{
		log:     log,
		tracks:  tracks,
		current: -1,
		volume:  0.5,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if log != nil {
		log.Debugf("bgm playlist: %d tracks", len(tracks))
	}
	return m
}

// Configure applies the persisted settings. Disabling stops playback
// immediately.
func (m *Manager) Configure(enabled bool, volume int, mode Mode) {
	m.enabled = enabled
	m.SetVolume(volume)
	m.SetMode(mode)
	if !enabled {
		m.Stop()
	}
}

// TrackCount returns the playlist size.
func (m *Manager) TrackCount() int {
	return len(m.tracks)
}

// NowPlaying returns the file name of the current track, or "" when idle.
func (m *Manager) NowPlaying() string {
	if m.current < 0 || m.current >= len(m.tracks) {
		return ""
	}
	return filepath.Base(m.tracks[m.current])
}

// Playing reports whether a track is actively producing audio.
func (m *Manager) Playing() bool {
	return m.player != nil && !m.paused
}

// Paused reports whether playback is suspended for a launch.
func (m *Manager) Paused() bool {
	return m.paused
}

// SetVolume maps the 0..10 setting to the player volume.
func (m *Manager) SetVolume(volume int) {
	m.volume = volumeScalar(volume)
	if m.player != nil {
		m.player.SetVolume(m.volume)
	}
}

// SetMode switches between sequential and shuffled order. The playing
// track finishes before the new order takes effect.
func (m *Manager) SetMode(mode Mode) {
	if mode == m.mode && m.order != nil {
		return
	}
	m.mode = mode
	m.buildOrder()
}

// Mode returns the active playback mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Start begins playback from the top of the order. No-op when disabled,
// already playing, or the playlist is empty.
func (m *Manager) Start() {
	if !m.enabled || m.player != nil || len(m.tracks) == 0 {
		return
	}
	if m.order == nil {
		m.buildOrder()
	}
	if err := m.play(m.order[m.pos]); err != nil {
		m.advance()
	}
}

// Tick polls for end of track once per pollInterval. Call every frame.
func (m *Manager) Tick() {
	if m.player == nil || m.paused {
		return
	}
	m.tick++
	if m.tick < pollInterval {
		return
	}
	m.tick = 0
	if !m.player.IsPlaying() {
		m.advance()
	}
}

// Pause suspends playback, keeping the current position.
func (m *Manager) Pause() {
	if m.player == nil || m.paused {
		return
	}
	m.player.Pause()
	m.paused = true
}

// Resume continues playback after Pause.
func (m *Manager) Resume() {
	if m.player == nil || !m.paused {
		return
	}
	m.player.Play()
	m.paused = false
}

// Next skips to the following track.
func (m *Manager) Next() {
	if m.player != nil {
		m.advance()
		return
	}
	m.Start()
}

// Stop ends playback and releases the audio player.
func (m *Manager) Stop() {
	m.closePlayer()
	m.current = -1
	m.paused = false
}

// Close stops playback. The shared audio context stays open.
func (m *Manager) Close() {
	m.Stop()
}

func (m *Manager) buildOrder() {
	m.order = make([]int, len(m.tracks))
	for i := range m.order {
		m.order[i] = i
	}
	if m.mode == ModeShuffle {
		m.rng.Shuffle(len(m.order), func(i, j int) {
			m.order[i], m.order[j] = m.order[j], m.order[i]
		})
	}
	m.pos = 0
}

// nextPos advances the playlist cursor, reshuffling when a shuffled
// cycle completes. Returns the track index to play next.
func (m *Manager) nextPos() int {
	m.pos++
	if m.pos >= len(m.order) {
		if m.mode == ModeShuffle {
			m.buildOrder()
		}
		m.pos = 0
	}
	return m.order[m.pos]
}

// advance moves to the next playable track, skipping ones that fail to
// open. Gives up after a full cycle of failures.
func (m *Manager) advance() {
	for attempts := 0; attempts < len(m.tracks); attempts++ {
		if err := m.play(m.nextPos()); err == nil {
			return
		}
	}
	if m.log != nil {
		m.log.Warn("bgm: no playable tracks, stopping")
	}
	m.Stop()
}

// play opens and starts the track at index i, replacing any current
// player.
func (m *Manager) play(i int) error {
	m.closePlayer()

	ctx, err := ensureContext()
	if err != nil {
		if m.log != nil {
			m.log.Warnf("bgm: audio device unavailable: %v", err)
		}
		return err
	}

	path := m.tracks[i]
	f, err := os.Open(path)
	if err != nil {
		if m.log != nil {
			m.log.Warnf("bgm: open %s: %v", path, err)
		}
		return err
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, f)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, f)
	}
	if err != nil {
		f.Close()
		if m.log != nil {
			m.log.Warnf("bgm: decode %s: %v", path, err)
		}
		return err
	}

	player := ctx.NewPlayer(stream)
	player.SetVolume(m.volume)
	player.Play()

	m.player = player
	m.file = f
	m.current = i
	m.paused = false
	m.tick = 0
	if m.log != nil {
		m.log.Debugf("bgm: playing %s", filepath.Base(path))
	}
	return nil
}

func (m *Manager) closePlayer() {
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
	if m.file != nil {
		m.file.Close()
		m.file = nil
	}
}

// volumeScalar maps the 0..10 "bgm_volume" setting onto oto's 0.0..1.0
// range, clamping out-of-range values.
func volumeScalar(v int) float64 {
	if v < 0 {
		v = 0
	} else if v > 10 {
		v = 10
	}
	return float64(v) / 10.0
}
