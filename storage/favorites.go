package storage

import "time"

// Favorites returns a copy of the favorites in insertion order.
func (s *Store) Favorites() []Favorite {
	out := make([]Favorite, len(s.favorites.Favorites))
	copy(out, s.favorites.Favorites)
	return out
}

// IsFavorite checks a ROM path against the in-memory set.
func (s *Store) IsFavorite(romPath string) bool {
	return s.favSet[romPath]
}

// ToggleFavorite adds or removes a favorite and reports whether the ROM is
// a favorite afterwards.
func (s *Store) ToggleFavorite(romPath, category string) (bool, error) {
	if s.favSet[romPath] {
		kept := s.favorites.Favorites[:0]
		for _, f := range s.favorites.Favorites {
			if f.ROMPath != romPath {
				kept = append(kept, f)
			}
		}
		s.favorites.Favorites = kept
		delete(s.favSet, romPath)
		return false, AtomicWriteJSON(s.path(favoritesFile), &s.favorites)
	}

	s.favorites.Favorites = append(s.favorites.Favorites, Favorite{
		ROMPath:  romPath,
		Category: category,
		Added:    time.Now(),
	})
	s.favSet[romPath] = true
	return true, AtomicWriteJSON(s.path(favoritesFile), &s.favorites)
}

func (s *Store) rebuildFavoriteSet() {
	s.favSet = make(map[string]bool, len(s.favorites.Favorites))
	for _, f := range s.favorites.Favorites {
		s.favSet[f.ROMPath] = true
	}
}
