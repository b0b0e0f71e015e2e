package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// searchLimit caps search results so a one-letter query cannot build an
// unbounded list.
const searchLimit = 200

// Sort modes for file lists, matching the "sort_mode" setting values.
const (
	SortByName    = "Name"
	SortByDateNew = "Date New"
	SortByDateOld = "Date Old"
)

// SortModes lists the sort modes in Settings cycle order.
var SortModes = []string{SortByName, SortByDateNew, SortByDateOld}

// Entry is one row in a file list: a subdirectory or a launchable file.
type Entry struct {
	Path    string
	Name    string
	Ext     string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// SearchHit is a search result with the category it was found in.
type SearchHit struct {
	Entry
	Category string
}

// Scan lists one directory level for a category: subdirectories first,
// then files, each block sorted case-insensitively. Files must match the
// category extensions; archives count when their payload matches. Entries
// matching an ignore pattern are dropped.
func Scan(dir string, cat *Category) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var dirs, files []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if r, err := filepath.Rel(cat.Dir, filepath.Join(dir, name)); err == nil {
			rel = r
		}
		if cat.Ignored(rel) {
			continue
		}

		full := filepath.Join(dir, name)
		if de.IsDir() {
			dirs = append(dirs, Entry{Path: full, Name: name, IsDir: true})
			continue
		}

		entry, ok := fileEntry(full, de, cat)
		if ok {
			files = append(files, entry)
		}
	}

	sortEntries(dirs)
	sortEntries(files)
	return append(dirs, files...), nil
}

// fileEntry builds the Entry for a regular file, deciding whether it
// belongs in the list at all.
func fileEntry(full string, de os.DirEntry, cat *Category) (Entry, bool) {
	name := de.Name()
	ext := strings.ToLower(filepath.Ext(name))

	if !cat.MatchesExt(name) {
		if !IsArchiveExt(ext) {
			return Entry{}, false
		}
		if _, err := ProbeArchive(full, cat.Extensions); err != nil {
			return Entry{}, false
		}
	}

	var size int64
	var mod time.Time
	if info, err := de.Info(); err == nil {
		size = info.Size()
		mod = info.ModTime()
	}
	return Entry{Path: full, Name: name, Ext: ext, Size: size, ModTime: mod}, true
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// SortEntries reorders a scanned list in place for the given sort mode.
// Directories always lead, sorted by name; only files follow the mode.
func SortEntries(entries []Entry, mode string) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		if a.IsDir {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
		switch mode {
		case SortByDateNew:
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.After(b.ModTime)
			}
		case SortByDateOld:
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// Search walks a category's whole tree for names containing the query,
// case-insensitively. Results stop at the limit.
func Search(cat *Category, query string, limit int) []Entry {
	if limit <= 0 {
		limit = searchLimit
	}
	needle := strings.ToLower(query)
	if needle == "" {
		return nil
	}

	var hits []Entry
	filepath.WalkDir(cat.Dir, func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if len(hits) >= limit {
			return filepath.SkipAll
		}
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			if de.IsDir() && path != cat.Dir {
				return filepath.SkipDir
			}
			return nil
		}
		if de.IsDir() {
			return nil
		}

		rel := name
		if r, rerr := filepath.Rel(cat.Dir, path); rerr == nil {
			rel = r
		}
		if cat.Ignored(rel) {
			return nil
		}
		if !cat.MatchesExt(name) {
			return nil
		}
		if !strings.Contains(strings.ToLower(name), needle) {
			return nil
		}

		var size int64
		var mod time.Time
		if info, ierr := de.Info(); ierr == nil {
			size = info.Size()
			mod = info.ModTime()
		}
		hits = append(hits, Entry{
			Path:    path,
			Name:    name,
			Ext:     strings.ToLower(filepath.Ext(name)),
			Size:    size,
			ModTime: mod,
		})
		return nil
	})
	return hits
}

// SearchAll runs Search over every category, tagging hits with their
// category title. The limit applies to the combined result.
func SearchAll(cfg *Config, query string, limit int) []SearchHit {
	if limit <= 0 {
		limit = searchLimit
	}
	var hits []SearchHit
	for i := range cfg.Categories {
		cat := &cfg.Categories[i]
		for _, e := range Search(cat, query, limit-len(hits)) {
			hits = append(hits, SearchHit{Entry: e, Category: cat.Title})
		}
		if len(hits) >= limit {
			break
		}
	}
	return hits
}

// FormatSize renders a byte count the way the file list footer shows it.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
	}
}
