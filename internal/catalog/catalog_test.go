package catalog

import (
	"testing"

	"github.com/desertthunder/mvx/internal/models"
)

func fixtures() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 1, Title: "Dark", VoteAverage: 5.0, GenreIDs: []int{18, 9648}},
		{ID: 2, Name: "Severance", VoteAverage: 5.0, GenreIDs: []int{18}},
		{ID: 3, Title: "Andor", VoteAverage: 3.0, GenreIDs: []int{10765}},
	}
}

func TestFilter(t *testing.T) {
	t.Run("No Criteria Returns Everything", func(t *testing.T) {
		got := Filter(fixtures(), "", 0)
		if len(got) != 3 {
			t.Errorf("expected 3 items, got %d", len(got))
		}
	})

	t.Run("Search Is Case-Insensitive Substring", func(t *testing.T) {
		got := Filter(fixtures(), "sEvEr", 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 item, got %d", len(got))
		}
		if got[0].ID != 2 {
			t.Errorf("expected Severance, got id %d", got[0].ID)
		}
	})

	t.Run("Search Uses Resolved Title", func(t *testing.T) {
		// Item 2 has no title field, only name.
		got := Filter(fixtures(), "severance", 0)
		if len(got) != 1 {
			t.Errorf("expected name fallback to match, got %d items", len(got))
		}
	})

	t.Run("Genre Matches Membership", func(t *testing.T) {
		got := Filter(fixtures(), "", 18)
		if len(got) != 2 {
			t.Errorf("expected 2 drama items, got %d", len(got))
		}
	})

	t.Run("Criteria Are Conjunctive", func(t *testing.T) {
		// "dark" matches item 1 but genre 10765 only matches item 3.
		got := Filter(fixtures(), "dark", 10765)
		if len(got) != 0 {
			t.Errorf("expected no items, got %d", len(got))
		}

		got = Filter(fixtures(), "dark", 18)
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("expected only Dark, got %v", got)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		items := fixtures()
		Filter(items, "andor", 0)
		if len(items) != 3 {
			t.Error("expected input slice to be untouched")
		}
	})
}

func TestSortByRating(t *testing.T) {
	t.Run("Descending", func(t *testing.T) {
		got := SortByRating(fixtures(), true)
		if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
			t.Errorf("expected order 1,2,3, got %d,%d,%d", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("Ascending", func(t *testing.T) {
		got := SortByRating(fixtures(), false)
		if got[0].ID != 3 {
			t.Errorf("expected lowest rating first, got id %d", got[0].ID)
		}
		// Equal ratings keep their relative order.
		if got[1].ID != 1 || got[2].ID != 2 {
			t.Errorf("expected stable order for ties, got %d,%d", got[1].ID, got[2].ID)
		}
	})

	t.Run("Ties Keep Input Order", func(t *testing.T) {
		got := SortByRating(fixtures(), true)
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("expected stable order for equal ratings, got %d,%d", got[0].ID, got[1].ID)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		items := fixtures()
		SortByRating(items, false)
		if items[0].ID != 1 {
			t.Error("expected input slice to be untouched")
		}
	})
}
