package listam

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"listam-scraper/lib/textutil"
	"listam-scraper/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

var authorPathRegex = regexp.MustCompile(`Call','(/[^']*)'`)
var registerSinceRegex = regexp.MustCompile(`\d\d\.\d\d\.\d\d\d\d`)

// authorPath digs the seller's profile path out of the phone-call
// trigger's onclick handler, where it is embedded as a single-quoted
// argument after a Call',' marker. Returns the site root when nothing
// matches.
func authorPath(doc *goquery.Document) string {
	onclick := doc.Find(".phone > a").First().AttrOr("onclick", "")
	groups := authorPathRegex.FindStringSubmatch(onclick)
	if len(groups) < 2 {
		return "/"
	}
	return groups[1]
}

// resolveAuthor is the one field extractor that does network i/o: it
// fetches the seller's profile page through the same client (and proxy)
// as the item itself, then reads the contact fields off it.
func (c *Client) resolveAuthor(ctx context.Context, itemDoc *goquery.Document) (Author, error) {
	ctx, span := tracer.Start(ctx, "client:resolveAuthor")
	defer span.End()

	path := authorPath(itemDoc)

	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch author page")
		return Author{}, err
	}
	if err := checkStatus(res.StatusCode(), fmt.Sprintf("resolving author -> %s", path)); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Author{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse author page html")
		return Author{}, err
	}

	var phones []string
	doc.Find(".phones > a").Each(func(_ int, s *goquery.Selection) {
		phones = append(phones, textutil.Digits(s.AttrOr("href", "")))
	})

	personal := doc.Find(".n").First()

	return Author{
		Name:          personal.ChildrenFiltered("div").First().Text(),
		RegisterSince: extractRegisterSince(doc),
		Avatar:        doc.Find(".av_user").First().AttrOr("src", ""),
		Phones:        phones,
		UserUrl:       personal.AttrOr("href", ""),
	}, nil
}

// The registration date is not marked up on the profile page, it only
// appears as a DD.MM.YYYY fragment somewhere inside the "member since"
// block's markup. No match falls back to the current time.
func extractRegisterSince(doc *goquery.Document) time.Time {
	markup, err := doc.Find(".since").First().Html()
	if err != nil {
		return timezone.Now()
	}
	match := registerSinceRegex.FindString(markup)
	if match == "" {
		return timezone.Now()
	}
	parsed, err := time.ParseInLocation("02.01.2006", match, timezone.Location)
	if err != nil {
		return timezone.Now()
	}
	return parsed
}
