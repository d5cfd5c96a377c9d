package blog

import (
	"testing"
	"time"

	"github.com/tenant-site-server/internal/models"
)

func ts(daysAgo int) *time.Time {
	t := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	return &t
}

func testPosts() []*models.BlogPost {
	launch := &models.BlogCategory{ID: "c1", Name: "Launches", Slug: "launches"}
	guides := &models.BlogCategory{ID: "c2", Name: "Guides", Slug: "guides"}

	return []*models.BlogPost{
		{
			ID: "p1", Title: "Grand Opening", Slug: "grand-opening",
			Excerpt: "We are open", Content: "<p>Visit our new bakery</p>",
			Tags: "news, bakery", Category: launch, PublishedAt: ts(10),
		},
		{
			ID: "p2", Title: "Sourdough Guide", Slug: "sourdough-guide",
			Excerpt: "Baking basics from our bakery", Content: "<p>Flour, water, salt</p>",
			Tags: "bakery,recipes", Category: guides, PublishedAt: ts(2),
		},
		{
			ID: "p3", Title: "Holiday Hours", Slug: "holiday-hours",
			Excerpt: "", Content: "<p>Closed on Sundays</p>",
			Tags: "news", Category: nil, PublishedAt: ts(5),
		},
		{
			ID: "p4", Title: "Unscheduled Draft Leak", Slug: "no-date",
			Excerpt: "", Content: "<p>oops</p>",
			Tags: "", Category: nil, PublishedAt: nil,
		},
	}
}

func TestApply_NoFilterSortsNewestFirst(t *testing.T) {
	got := Apply(testPosts(), Filter{})

	if len(got) != 4 {
		t.Fatalf("Expected all 4 posts, got %d", len(got))
	}

	wantOrder := []string{"p2", "p3", "p1", "p4"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestApply_NilPublishedAtSortsLast(t *testing.T) {
	got := Apply(testPosts(), Filter{})

	if got[len(got)-1].ID != "p4" {
		t.Errorf("Expected undated post last, got %s", got[len(got)-1].ID)
	}
}

func TestApply_QueryMatchesTitleExcerptContent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match case-insensitive", "SOURDOUGH", []string{"p2"}},
		{"excerpt match", "open", []string{"p1"}},
		{"content match", "sundays", []string{"p3"}},
		{"substring across fields", "bakery", []string{"p2", "p1"}},
		{"no match", "pizza", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testPosts(), Filter{Query: tt.query})
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d posts, got %d", len(tt.want), len(got))
			}
			for i, want := range tt.want {
				if got[i].ID != want {
					t.Errorf("Position %d: expected %s, got %s", i, want, got[i].ID)
				}
			}
		})
	}
}

func TestApply_CategoryFilter(t *testing.T) {
	got := Apply(testPosts(), Filter{CategorySlug: "guides"})

	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("Expected only p2, got %v", ids(got))
	}

	// Posts without a category never match a category filter
	got = Apply(testPosts(), Filter{CategorySlug: "missing"})
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", ids(got))
	}
}

func TestApply_TagFilterExactMatch(t *testing.T) {
	got := Apply(testPosts(), Filter{Tag: "news"})

	if len(got) != 2 {
		t.Fatalf("Expected 2 posts tagged news, got %v", ids(got))
	}

	// "new" is a substring of "news" but not a tag
	got = Apply(testPosts(), Filter{Tag: "new"})
	if len(got) != 0 {
		t.Errorf("Tag match must be exact, got %v", ids(got))
	}
}

func TestApply_PredicatesCombineWithAND(t *testing.T) {
	got := Apply(testPosts(), Filter{Query: "bakery", Tag: "news", CategorySlug: "launches"})

	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("Expected only p1, got %v", ids(got))
	}

	got = Apply(testPosts(), Filter{Query: "bakery", Tag: "recipes", CategorySlug: "launches"})
	if len(got) != 0 {
		t.Errorf("Conflicting predicates must yield nothing, got %v", ids(got))
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	posts := testPosts()
	Apply(posts, Filter{})

	if posts[0].ID != "p1" {
		t.Errorf("Input slice was reordered, first is %s", posts[0].ID)
	}
}

func TestTagList_TrimsAndDropsEmpty(t *testing.T) {
	post := &models.BlogPost{Tags: " a, ,b ,, c"}

	got := post.TagList()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTagCloud(t *testing.T) {
	got := TagCloud(testPosts())

	want := []string{"bakery", "news", "recipes"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilter_IsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Error("Empty filter should be zero")
	}
	if (Filter{Tag: "x"}).IsZero() {
		t.Error("Filter with tag should not be zero")
	}
}

func ids(posts []*models.BlogPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
