package chrome

import (
	"strings"
	"testing"
)

func TestExtract_AllBlocks(t *testing.T) {
	got := Extract("<head>A</head><header>B</header><footer>C</footer>")

	if got.HeadContent != "A" {
		t.Errorf("Expected head content 'A', got %q", got.HeadContent)
	}
	if got.Header != "<header>B</header>" {
		t.Errorf("Expected header '<header>B</header>', got %q", got.Header)
	}
	if got.Footer != "<footer>C</footer>" {
		t.Errorf("Expected footer '<footer>C</footer>', got %q", got.Footer)
	}
}

func TestExtract_NavFallback(t *testing.T) {
	got := Extract("<nav>N</nav>")

	if got.Header != "<nav>N</nav>" {
		t.Errorf("Expected nav fallback '<nav>N</nav>', got %q", got.Header)
	}
	if got.HeadContent != "" {
		t.Errorf("Expected empty head content, got %q", got.HeadContent)
	}
	if got.Footer != "" {
		t.Errorf("Expected empty footer, got %q", got.Footer)
	}
}

func TestExtract_HeaderWinsOverNav(t *testing.T) {
	got := Extract("<nav>first</nav><header>real</header>")

	if got.Header != "<header>real</header>" {
		t.Errorf("Expected header to win over nav, got %q", got.Header)
	}
}

func TestExtract_CaseInsensitiveWithAttributes(t *testing.T) {
	doc := `<HEAD><meta charset="utf-8"><title>Acme</title></HEAD>` +
		`<HEADER class="topbar" id="main">logo</HEADER>` +
		`<FOOTER data-x="1">fin</FOOTER>`
	got := Extract(doc)

	if got.HeadContent != `<meta charset="utf-8"><title>Acme</title>` {
		t.Errorf("Unexpected head content: %q", got.HeadContent)
	}
	if got.Header != `<HEADER class="topbar" id="main">logo</HEADER>` {
		t.Errorf("Expected original casing preserved, got %q", got.Header)
	}
	if got.Footer != `<FOOTER data-x="1">fin</FOOTER>` {
		t.Errorf("Unexpected footer: %q", got.Footer)
	}
}

func TestExtract_NestedSameNamedElements(t *testing.T) {
	// The outer nav must span to its own closing tag, not the inner one's
	doc := `<nav class="outer"><div><nav class="inner">in</nav></div>tail</nav>`
	got := Extract(doc)

	if got.Header != doc {
		t.Errorf("Nested nav truncated the fragment: got %q", got.Header)
	}
}

func TestExtract_FirstInDocumentOrder(t *testing.T) {
	doc := `<header>one</header><header>two</header>`
	got := Extract(doc)

	if got.Header != "<header>one</header>" {
		t.Errorf("Expected first header, got %q", got.Header)
	}
}

func TestExtract_HeadKeepsStyleAndScript(t *testing.T) {
	doc := `<head><style>body{color:red}</style><script>if(1<2){x()}</script></head>`
	got := Extract(doc)

	if !strings.Contains(got.HeadContent, "body{color:red}") {
		t.Errorf("Style content missing from head: %q", got.HeadContent)
	}
	if !strings.Contains(got.HeadContent, "if(1<2){x()}") {
		t.Errorf("Script content missing from head: %q", got.HeadContent)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	got := Extract("")

	if !got.IsEmpty() {
		t.Errorf("Expected empty chrome, got %+v", got)
	}
}

func TestExtract_UnclosedBlockKeepsContent(t *testing.T) {
	got := Extract("<footer><p>company")

	if !strings.Contains(got.Footer, "<p>company") {
		t.Errorf("Expected best-effort footer content, got %q", got.Footer)
	}
}
