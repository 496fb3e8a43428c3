package listam

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseUrl = "https://list.am"

// Proxy routes every request the client makes, including the secondary
// author-profile fetch, through an http proxy.
type Proxy struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p Proxy) url() string {
	host := fmt.Sprintf("%s:%d", p.Host, p.Port)
	if p.Username == "" {
		return fmt.Sprintf("http://%s", host)
	}
	return fmt.Sprintf(
		"http://%s@%s",
		url.UserPassword(p.Username, p.Password).String(),
		host,
	)
}

// Client scrapes the classifieds site into typed records. All of its
// state is immutable after construction, so a single client is safe for
// concurrent use.
type Client struct {
	BaseUrl *url.URL
	http    *resty.Client
	paths   pathTable
}

type ClientOptions struct {
	// defaults to the public site when empty
	BaseUrl string
	Proxy   *Proxy
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawUrl := opts.BaseUrl
	if rawUrl == "" {
		rawUrl = defaultBaseUrl
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(rawUrl)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	if opts.Proxy != nil {
		client.SetProxy(opts.Proxy.url())
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &Client{
		BaseUrl: baseUrl,
		http:    client,
		paths:   defaultPaths,
	}, nil
}

// fetch -> status check -> parse, the prefix of every public operation
func (c *Client) getDocument(ctx context.Context, uri, operation string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(uri)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(res.StatusCode(), operation); err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// HomepageLinks collects the listing links shown as tiles on the
// homepage, keyed by href.
func (c *Client) HomepageLinks(ctx context.Context) (map[string]Link, error) {
	ctx, span := tracer.Start(ctx, "client:HomepageLinks")
	defer span.End()

	uri := c.resolveUri(c.paths.Homepage, nil, false)
	doc, err := c.getDocument(ctx, uri, "fetching homepage links")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch homepage")
		return nil, err
	}
	return extractLinks(doc, homepageLinkSelector), nil
}

// CategoryLinks collects the listing links of one page of a category or
// district listing. An empty page means the first page.
func (c *Client) CategoryLinks(ctx context.Context, categoryId, page string) (map[string]Link, error) {
	ctx, span := tracer.Start(ctx, "client:CategoryLinks")
	defer span.End()

	if page == "" {
		page = "0"
	}
	uri := c.resolveUri(c.paths.Category, map[string]string{
		"categoryId": categoryId,
		"page":       page,
	}, false)
	doc, err := c.getDocument(ctx, uri, fmt.Sprintf(
		"fetching category links -> %s|%s", categoryId, page,
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch category page")
		return nil, err
	}
	return extractLinks(doc, categoryLinkSelector), nil
}

// BusinessLinks collects the links of one page of the business pages
// listing. An empty page means the first page.
func (c *Client) BusinessLinks(ctx context.Context, page string) (map[string]Link, error) {
	ctx, span := tracer.Start(ctx, "client:BusinessLinks")
	defer span.End()

	if page == "" {
		page = "0"
	}
	uri := c.resolveUri(c.paths.BusinessPages, map[string]string{
		"page": page,
	}, false)
	doc, err := c.getDocument(ctx, uri, fmt.Sprintf(
		"fetching business links -> %s", page,
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch business page")
		return nil, err
	}
	return extractLinks(doc, businessLinkSelector), nil
}

// ItemInfo fetches one item detail page and extracts the full record,
// including the author profile resolved through a second fetch.
func (c *Client) ItemInfo(ctx context.Context, itemId string) (Item, error) {
	ctx, span := tracer.Start(ctx, "client:ItemInfo")
	defer span.End()

	uri := c.resolveUri(c.paths.Item, map[string]string{
		"itemId": itemId,
	}, false)
	doc, err := c.getDocument(ctx, uri, fmt.Sprintf("fetching item -> %s", itemId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch item page")
		return Item{}, err
	}

	item, err := c.extractItem(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract item")
		return Item{}, err
	}
	return item, nil
}
