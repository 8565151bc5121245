package models

// Session holds the authenticated identity returned by the backend's signin
// endpoint. All four fields are required; see [Session.Complete].
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Complete reports whether every field of the session is populated.
// Incomplete sessions are treated as absent everywhere.
func (s *Session) Complete() bool {
	if s == nil {
		return false
	}
	return s.UserID != "" && s.Name != "" && s.Email != "" && s.Token != ""
}

// WatchlistEntry represents a saved title in the user's watchlist.
// MovieID is the identity key: two entries with the same MovieID never
// coexist in one list. JSON tags match the backend's wire format.
type WatchlistEntry struct {
	MovieID     int      `json:"movieId"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster,omitempty"` // absolute URL, empty when no artwork exists
	VoteAverage float64  `json:"vote_average"`
	Popularity  float64  `json:"popularity"`
	Genres      []string `json:"genres"`
	Status      string   `json:"status"`
}

// Genre is a named genre as returned by the catalog's detail endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CatalogItem is a read-only title from the TMDB catalog feed.
//
// List endpoints populate Name/OriginalName and GenreIDs; the detail
// endpoint populates Title and named Genres. The resolvers in normalize.go
// reconcile the two shapes.
type CatalogItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	Poster       string  `json:"poster"` // pre-built URL, set by some feeds instead of PosterPath
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int   `json:"genre_ids"`
	Genres       []Genre `json:"genres"`
}

// SigninResponse is the backend's response to POST /signin.
type SigninResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

// SignupResponse is the backend's response to POST /signup.
type SignupResponse struct {
	Message string `json:"message"`
}

// WatchlistResponse is the backend's response to GET /watchlist and to both
// mutation endpoints, which return the full authoritative list.
type WatchlistResponse struct {
	Username  string           `json:"username,omitempty"`
	Watchlist []WatchlistEntry `json:"watchlist"`
}
