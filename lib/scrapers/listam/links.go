package listam

import (
	"listam-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	homepageLinkSelector = ".c > a"
	categoryLinkSelector = ".gl > a, .dl > a"
	businessLinkSelector = ".dlbp > a"
)

// extractLinks collects (href, label) pairs from every element matching
// the selector. Hrefs are the map keys, so a repeated href keeps the
// label seen last in document order.
func extractLinks(doc *goquery.Document, selector string) map[string]Link {
	links := map[string]Link{}
	for _, n := range doc.Find(selector).Nodes {
		links[htmlutil.AttrOr(n, "href", "")] = Link{
			Name: htmlutil.GetText(n),
		}
	}
	return links
}
