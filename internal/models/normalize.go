package models

import "strings"

// genreNames maps TMDB genre ids to display labels. Covers the combined
// movie and TV genre lists published by TMDB.
var genreNames = map[int]string{
	28:    "Action",
	10759: "Action & Adventure",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10762: "Kids",
	10402: "Music",
	9648:  "Mystery",
	10763: "News",
	10764: "Reality",
	10749: "Romance",
	878:   "Science Fiction",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	53:    "Thriller",
	10752: "War",
	10768: "War & Politics",
	37:    "Western",
	10770: "TV Movie",
}

// ResolveTitle returns the display title for a catalog item.
//
// Precedence: title, name, original_name, then "Untitled".
func (c CatalogItem) ResolveTitle() string {
	for _, candidate := range []string{c.Title, c.Name, c.OriginalName} {
		if candidate != "" {
			return candidate
		}
	}
	return "Untitled"
}

// ResolvePoster returns the absolute poster URL for a catalog item.
//
// Precedence: imageBaseURL+poster_path, then a pre-built poster URL, then
// empty (no artwork).
func (c CatalogItem) ResolvePoster(imageBaseURL string) string {
	if c.PosterPath != "" {
		return strings.TrimRight(imageBaseURL, "/") + "/" + strings.TrimLeft(c.PosterPath, "/")
	}
	if c.Poster != "" {
		return c.Poster
	}
	return ""
}

// ResolveGenres returns genre labels for a catalog item.
//
// Precedence: named genre objects (detail endpoint), then the genre-id
// lookup table (list endpoints), then an empty list. Unknown ids are
// skipped rather than invented.
func (c CatalogItem) ResolveGenres() []string {
	if len(c.Genres) > 0 {
		labels := make([]string, 0, len(c.Genres))
		for _, g := range c.Genres {
			if g.Name != "" {
				labels = append(labels, g.Name)
			}
		}
		return labels
	}

	labels := make([]string, 0, len(c.GenreIDs))
	for _, id := range c.GenreIDs {
		if name, ok := genreNames[id]; ok {
			labels = append(labels, name)
		}
	}
	return labels
}

// HasGenre reports whether the item carries the given genre id, checking
// both the id list and named genres.
func (c CatalogItem) HasGenre(genreID int) bool {
	for _, id := range c.GenreIDs {
		if id == genreID {
			return true
		}
	}
	for _, g := range c.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

// EntryFromCandidate normalizes a catalog item into a watchlist entry using
// the ordered resolvers above. Status is always "plan"; the field is
// free-form server-side but the client only ever produces this value.
func EntryFromCandidate(c CatalogItem, imageBaseURL string) WatchlistEntry {
	return WatchlistEntry{
		MovieID:     c.ID,
		Title:       c.ResolveTitle(),
		Poster:      c.ResolvePoster(imageBaseURL),
		VoteAverage: c.VoteAverage,
		Popularity:  c.Popularity,
		Genres:      c.ResolveGenres(),
		Status:      "plan",
	}
}
