package chrome

import (
	"fmt"
	"testing"
)

func TestCache_ResolveMemoizes(t *testing.T) {
	cache := NewCache(8)
	doc := "<head>H</head><header>top</header><footer>bottom</footer><body class=\"dark\"></body>"

	first := cache.Resolve(doc)
	second := cache.Resolve(doc)

	if first != second {
		t.Errorf("Expected identical renditions, got %+v vs %+v", first, second)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 cached entry, got %d", cache.Len())
	}
	if first.Chrome.Header != "<header>top</header>" {
		t.Errorf("Unexpected cached header: %q", first.Chrome.Header)
	}
	if !first.Dark {
		t.Error("Expected dark rendition for document with dark class")
	}
}

func TestCache_DistinctDocuments(t *testing.T) {
	cache := NewCache(8)

	a := cache.Resolve("<header>A</header>")
	b := cache.Resolve("<header>B</header>")

	if a.Chrome.Header == b.Chrome.Header {
		t.Error("Distinct documents must not share a rendition")
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached entries, got %d", cache.Len())
	}
}

func TestCache_BoundedEviction(t *testing.T) {
	cache := NewCache(4)

	for i := 0; i < 20; i++ {
		cache.Resolve(fmt.Sprintf("<header>%d</header>", i))
	}

	if cache.Len() > 4 {
		t.Errorf("Cache exceeded its bound: %d entries", cache.Len())
	}
}
