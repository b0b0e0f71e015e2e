package catalog

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func testCategory(t *testing.T, dir string, exts []string, ignore []string) *Category {
	t.Helper()
	cat := &Category{Title: "Test", Dir: dir, Extensions: exts, Ignore: ignore}
	cfg := &Config{Categories: []Category{*cat}}
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	return &cfg.Categories[0]
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
}

func makeZip(t *testing.T, path string, inner string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	w, err := zw.Create(inner)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("rom bytes")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScanOrdering(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "c.nes"))
	touch(t, filepath.Join(dir, "A.nes"))
	touch(t, filepath.Join(dir, "b.NES"))
	touch(t, filepath.Join(dir, "readme.txt"))
	touch(t, filepath.Join(dir, ".hidden.nes"))
	if err := os.MkdirAll(filepath.Join(dir, "zz"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "Disk2"), 0755); err != nil {
		t.Fatal(err)
	}

	cat := testCategory(t, dir, []string{".nes"}, nil)
	entries, err := Scan(dir, cat)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"Disk2", "zz", "A.nes", "b.NES", "c.nes"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	if !entries[0].IsDir || entries[2].IsDir {
		t.Error("directories must come first and files after")
	}
	if entries[2].Ext != ".nes" || entries[3].Ext != ".nes" {
		t.Errorf("extensions should be lowercased: %q, %q", entries[2].Ext, entries[3].Ext)
	}
}

func TestScanIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "game.nes"))
	touch(t, filepath.Join(dir, "game.sav.nes"))

	cat := testCategory(t, dir, []string{".nes"}, []string{"*.sav.nes"})
	entries, err := Scan(dir, cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "game.nes" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestScanIncludesMatchingArchives(t *testing.T) {
	dir := t.TempDir()
	makeZip(t, filepath.Join(dir, "mario.zip"), "mario.nes")
	makeZip(t, filepath.Join(dir, "doc.zip"), "readme.txt")
	touch(t, filepath.Join(dir, "plain.nes"))

	cat := testCategory(t, dir, []string{".nes"}, nil)
	entries, err := Scan(dir, cat)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	// doc.zip holds no .nes payload and is dropped.
	if len(names) != 2 || names[0] != "mario.zip" || names[1] != "plain.nes" {
		t.Errorf("names = %v", names)
	}
}

func TestScanMissingDir(t *testing.T) {
	cat := testCategory(t, "/does/not/exist", []string{".nes"}, nil)
	if _, err := Scan(cat.Dir, cat); err == nil {
		t.Error("Scan of a missing dir should fail")
	}
}

func TestSearchRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Super Mario Bros.nes"))
	touch(t, filepath.Join(dir, "rpg", "Mario RPG.nes"))
	touch(t, filepath.Join(dir, "rpg", "Final Quest.nes"))
	touch(t, filepath.Join(dir, "mario.txt"))

	cat := testCategory(t, dir, []string{".nes"}, nil)

	hits := Search(cat, "mario", 0)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}

	hits = Search(cat, "MARIO", 1)
	if len(hits) != 1 {
		t.Errorf("limit should cap results, got %d", len(hits))
	}

	if hits := Search(cat, "", 0); hits != nil {
		t.Error("empty query should return nothing")
	}
}

func TestSearchAllTagsCategories(t *testing.T) {
	nesDir := t.TempDir()
	gbDir := t.TempDir()
	touch(t, filepath.Join(nesDir, "zelda.nes"))
	touch(t, filepath.Join(gbDir, "zelda.gb"))

	cfg := &Config{Categories: []Category{
		{Title: "NES", Dir: nesDir, Extensions: []string{".nes"}},
		{Title: "GB", Dir: gbDir, Extensions: []string{".gb"}},
	}}
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}

	hits := SearchAll(cfg, "zelda", 0)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].Category != "NES" || hits[1].Category != "GB" {
		t.Errorf("categories = %s, %s", hits[0].Category, hits[1].Category)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
		{5368709120, "5.0 GB"},
	}
	for _, tc := range tests {
		if got := FormatSize(tc.size); got != tc.expected {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.size, got, tc.expected)
		}
	}
}
