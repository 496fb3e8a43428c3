package listam

import (
	"context"
	"regexp"
	"strings"
	"time"

	"listam-scraper/lib/textutil"
	"listam-scraper/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// extractItem assembles the composite record for one item detail page.
// The field extractors below are independent of each other, only the
// author resolver can fail since it performs the secondary fetch.
func (c *Client) extractItem(ctx context.Context, doc *goquery.Document) (Item, error) {
	author, err := c.resolveAuthor(ctx, doc)
	if err != nil {
		return Item{}, err
	}

	return Item{
		Name:        extractName(doc),
		Description: extractDescription(doc),
		Price:       extractPrice(doc),
		Location:    extractLocation(doc),
		Flags:       extractFlags(doc),
		Footer:      extractFooter(doc),
		Categories:  extractCategories(doc),
		Properties:  extractProperties(doc),
		Images:      extractImages(doc),
		Author:      author,
	}, nil
}

func extractName(doc *goquery.Document) string {
	return doc.Find(`h1[itemprop="name"]`).First().Text()
}

func extractDescription(doc *goquery.Document) string {
	return doc.Find(`div[itemprop="description"]`).First().Text()
}

func extractPrice(doc *goquery.Document) Price {
	price := doc.Find(`span[itemprop="price"]`).First()
	return Price{
		Amount:         price.AttrOr("content", ""),
		Currency:       price.Find(`meta[itemprop="priceCurrency"]`).AttrOr("content", ""),
		AdditionalInfo: price.Text(),
	}
}

func extractLocation(doc *goquery.Document) Location {
	loc := doc.Find("div.loc > a").First()
	return Location{
		Text:   loc.Text(),
		MapRef: loc.AttrOr("onclick", ""),
	}
}

// The flag block carries no semantic attributes at all, only a child's
// position distinguishes it: 0 = top, 1 = homepage, 2 = urgent, each lit
// iff the element has the highlighting class "g". Children past the
// third are ignored.
func extractFlags(doc *goquery.Document) Flags {
	var flags Flags
	doc.Find("div.pblock > *").Each(func(i int, s *goquery.Selection) {
		lit := s.HasClass("g")
		switch i {
		case 0:
			flags.Top = lit
		case 1:
			flags.Homepage = lit
		case 2:
			flags.Urgent = lit
		}
	})
	return flags
}

var renewedLabelRegex = regexp.MustCompile(`(?i)renewed:`)

func extractFooter(doc *goquery.Document) Footer {
	footer := doc.Find(".footer").First()

	posted := parseSiteDate(
		footer.Find(`span[itemprop="datePosted"]`).AttrOr("content", ""),
	)

	// the renewal date only exists as visible text in the footer's third
	// element child, behind a literal label
	renewedText := renewedLabelRegex.ReplaceAllString(
		footer.Children().Eq(2).Text(), "",
	)

	return Footer{
		DatePosted: posted,
		Renewed:    parseSiteDate(renewedText),
	}
}

func extractCategories(doc *goquery.Document) []string {
	var categories []string
	doc.Find(`div#crumb span[itemprop="name"]`).Each(func(_ int, s *goquery.Selection) {
		categories = append(categories, s.Text())
	})
	return categories
}

func extractProperties(doc *goquery.Document) map[string]string {
	properties := map[string]string{}
	doc.Find("div#attr > div.c").Each(func(_ int, s *goquery.Selection) {
		key := textutil.NormalizeKey(s.Find("div.t").First().Text())
		properties[key] = strings.ToLower(s.Find("div.i").First().Text())
	})
	return properties
}

func extractImages(doc *goquery.Document) []string {
	var images []string
	doc.Find(".pv .p img").Each(func(_ int, s *goquery.Selection) {
		images = append(images, s.AttrOr("src", ""))
	})
	return images
}

// parseSiteDate leniently parses a machine-readable or visible date off
// the page. When the text is absent or unparsable it falls back to the
// current site-local time, pages omit these fields regularly.
func parseSiteDate(text string) time.Time {
	text = strings.Trim(text, " \n\t")
	if text == "" {
		return timezone.Now()
	}
	parsed, err := dateparse.ParseIn(text, timezone.Location)
	if err != nil {
		return timezone.Now()
	}
	return parsed
}
