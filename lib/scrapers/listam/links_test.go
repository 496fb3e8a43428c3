package listam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	doc := parseDoc(t, `<div class="c">
		<a href="/a">Foo</a>
		<a href="/b">Bar</a>
	</div>`)

	links := extractLinks(doc, ".c > a")
	require.Equal(t, map[string]Link{
		"/a": {Name: "Foo"},
		"/b": {Name: "Bar"},
	}, links)
}

func TestExtractLinksDuplicateHref(t *testing.T) {
	doc := parseDoc(t, `<div class="c">
		<a href="/a">First</a>
		<a href="/a">Second</a>
	</div>`)

	links := extractLinks(doc, ".c > a")
	require.Equal(t, map[string]Link{
		"/a": {Name: "Second"},
	}, links)
}

func TestExtractLinksMissingHref(t *testing.T) {
	doc := parseDoc(t, `<div class="c"><a>No href</a></div>`)

	links := extractLinks(doc, ".c > a")
	require.Equal(t, map[string]Link{
		"": {Name: "No href"},
	}, links)
}

func TestExtractLinksSelectorUnion(t *testing.T) {
	doc := parseDoc(t, categoryFixture)

	links := extractLinks(doc, categoryLinkSelector)
	require.Equal(t, map[string]Link{
		"/en/item/10": {Name: "Gallery tile"},
		"/en/item/11": {Name: "List tile"},
	}, links)
}

func TestExtractLinksNoMatches(t *testing.T) {
	doc := parseDoc(t, `<p>nothing to see</p>`)
	require.Empty(t, extractLinks(doc, ".c > a"))
}
