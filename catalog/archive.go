package catalog

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// Magic bytes for archive detection.
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// ErrNoROMFile is returned when an archive holds no file matching the
// category extensions.
var ErrNoROMFile = errors.New("no ROM file found in archive")

// ErrNotArchive is returned when a file is not a recognized archive.
var ErrNotArchive = errors.New("not a recognized archive")

// Format identifies a supported archive container.
type Format int

const (
	FormatUnknown Format = iota
	FormatZIP
	Format7z
	FormatGzip
	FormatRAR
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatZIP:
		return "zip"
	case Format7z:
		return "7z"
	case FormatGzip:
		return "gzip"
	case FormatRAR:
		return "rar"
	default:
		return "unknown"
	}
}

// IsArchiveExt reports whether the extension names a container the
// scanner should probe.
func IsArchiveExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".gz", ".rar":
		return true
	}
	return false
}

// DetectFormat sniffs a file's archive format, magic bytes first with an
// extension fallback for truncated files.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return FormatZIP, nil
		}
		if bytes.HasPrefix(header, magicRAR) {
			return FormatRAR, nil
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return Format7z, nil
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return FormatGzip, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return FormatZIP, nil
	case ".7z":
		return Format7z, nil
	case ".gz":
		return FormatGzip, nil
	case ".rar":
		return FormatRAR, nil
	}

	return FormatUnknown, ErrNotArchive
}

// ArchiveInfo describes the payload an archive would launch.
type ArchiveInfo struct {
	Format    Format
	InnerName string
	InnerSize int64 // -1 when the container does not store it
}

// ProbeArchive lists an archive and returns the first entry matching one
// of the extensions, without extracting anything. The scanner uses this
// to decide whether an archive belongs in a category's file list.
func ProbeArchive(path string, extensions []string) (ArchiveInfo, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return ArchiveInfo{}, err
	}

	switch format {
	case FormatZIP:
		return probeZIP(path, extensions)
	case Format7z:
		return probe7z(path, extensions)
	case FormatGzip:
		return probeGzip(path, extensions)
	case FormatRAR:
		return probeRAR(path, extensions)
	default:
		return ArchiveInfo{}, ErrNotArchive
	}
}

func matchesExtensions(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func probeZIP(path string, extensions []string) (ArchiveInfo, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return ArchiveInfo{}, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !matchesExtensions(f.Name, extensions) {
			continue
		}
		return ArchiveInfo{
			Format:    FormatZIP,
			InnerName: filepath.Base(f.Name),
			InnerSize: int64(f.UncompressedSize64),
		}, nil
	}
	return ArchiveInfo{}, ErrNoROMFile
}

func probe7z(path string, extensions []string) (ArchiveInfo, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return ArchiveInfo{}, fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !matchesExtensions(f.Name, extensions) {
			continue
		}
		return ArchiveInfo{
			Format:    Format7z,
			InnerName: filepath.Base(f.Name),
			InnerSize: f.FileInfo().Size(),
		}, nil
	}
	return ArchiveInfo{}, ErrNoROMFile
}

func probeRAR(path string, extensions []string) (ArchiveInfo, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return ArchiveInfo{}, fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ArchiveInfo{}, fmt.Errorf("failed to read rar entry: %w", err)
		}
		if header.IsDir {
			continue
		}
		if !matchesExtensions(header.Name, extensions) {
			continue
		}
		return ArchiveInfo{
			Format:    FormatRAR,
			InnerName: filepath.Base(header.Name),
			InnerSize: header.UnPackedSize,
		}, nil
	}
	return ArchiveInfo{}, ErrNoROMFile
}

// probeGzip uses the original filename stored in the gzip header when
// present, otherwise the archive name minus its .gz suffix. Plain gzip
// does not record the uncompressed size, so InnerSize is -1.
func probeGzip(path string, extensions []string) (ArchiveInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArchiveInfo{}, fmt.Errorf("failed to open gzip: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return ArchiveInfo{}, fmt.Errorf("failed to read gzip header: %w", err)
	}
	defer gr.Close()

	name := gr.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if !matchesExtensions(name, extensions) {
		return ArchiveInfo{}, ErrNoROMFile
	}
	return ArchiveInfo{
		Format:    FormatGzip,
		InnerName: filepath.Base(name),
		InnerSize: -1,
	}, nil
}
