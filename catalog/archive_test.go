package catalog

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func makeGzip(t *testing.T, path, headerName string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gw := gzip.NewWriter(f)
	gw.Name = headerName
	if _, err := gw.Write([]byte("rom bytes")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDetectFormat(t *testing.T) {
	dir := t.TempDir()

	zipPath := filepath.Join(dir, "a.zip")
	makeZip(t, zipPath, "a.nes")

	gzPath := filepath.Join(dir, "b.gz")
	makeGzip(t, gzPath, "")

	// Magic-byte-only files are enough for detection.
	szPath := filepath.Join(dir, "c.bin")
	writeBytes(t, szPath, []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C, 0x00, 0x04})
	rarPath := filepath.Join(dir, "d.bin")
	writeBytes(t, rarPath, []byte("Rar!\x1a\x07\x00"))

	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"zip", zipPath, FormatZIP},
		{"gzip", gzPath, FormatGzip},
		{"7z by magic", szPath, Format7z},
		{"rar by magic", rarPath, FormatRAR},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectFormat(tc.path)
			if err != nil || got != tc.expected {
				t.Errorf("DetectFormat = %v, %v, want %v", got, err, tc.expected)
			}
		})
	}

	// Extension fallback when the content has no magic.
	plain7z := filepath.Join(dir, "e.7z")
	writeBytes(t, plain7z, []byte("x"))
	if got, err := DetectFormat(plain7z); err != nil || got != Format7z {
		t.Errorf("extension fallback = %v, %v", got, err)
	}

	nes := filepath.Join(dir, "f.nes")
	writeBytes(t, nes, []byte("NES\x1a"))
	if _, err := DetectFormat(nes); !errors.Is(err, ErrNotArchive) {
		t.Errorf("plain ROM should be ErrNotArchive, got %v", err)
	}
}

func TestProbeZIP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mario.zip")
	makeZip(t, path, "sub/Mario Bros.NES")

	info, err := ProbeArchive(path, []string{".nes"})
	if err != nil {
		t.Fatalf("ProbeArchive: %v", err)
	}
	if info.Format != FormatZIP {
		t.Errorf("Format = %v", info.Format)
	}
	if info.InnerName != "Mario Bros.NES" {
		t.Errorf("InnerName = %q", info.InnerName)
	}
	if info.InnerSize != int64(len("rom bytes")) {
		t.Errorf("InnerSize = %d", info.InnerSize)
	}

	if _, err := ProbeArchive(path, []string{".gb"}); !errors.Is(err, ErrNoROMFile) {
		t.Errorf("mismatched extensions should be ErrNoROMFile, got %v", err)
	}
}

func TestProbeGzip(t *testing.T) {
	dir := t.TempDir()

	named := filepath.Join(dir, "x.gz")
	makeGzip(t, named, "Kirby.nes")
	info, err := ProbeArchive(named, []string{".nes"})
	if err != nil {
		t.Fatalf("ProbeArchive: %v", err)
	}
	if info.InnerName != "Kirby.nes" || info.InnerSize != -1 {
		t.Errorf("info = %+v", info)
	}

	// Without a stored name, the archive name minus .gz decides.
	anon := filepath.Join(dir, "tetris.nes.gz")
	makeGzip(t, anon, "")
	info, err = ProbeArchive(anon, []string{".nes"})
	if err != nil {
		t.Fatalf("ProbeArchive: %v", err)
	}
	if info.InnerName != "tetris.nes" {
		t.Errorf("InnerName = %q", info.InnerName)
	}

	other := filepath.Join(dir, "notes.txt.gz")
	makeGzip(t, other, "")
	if _, err := ProbeArchive(other, []string{".nes"}); !errors.Is(err, ErrNoROMFile) {
		t.Errorf("want ErrNoROMFile, got %v", err)
	}
}

func TestIsArchiveExt(t *testing.T) {
	for _, ext := range []string{".zip", ".7z", ".gz", ".rar", ".ZIP"} {
		if !IsArchiveExt(ext) {
			t.Errorf("IsArchiveExt(%q) should be true", ext)
		}
	}
	for _, ext := range []string{".nes", ".iso", ""} {
		if IsArchiveExt(ext) {
			t.Errorf("IsArchiveExt(%q) should be false", ext)
		}
	}
}
