package listam

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t testing.TB, fixture string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	require.NoError(t, err)
	return doc
}

const itemFixture = `<html><body>
<div id="crumb">
  <span itemprop="name">Vehicles</span>
  <span itemprop="name">Cars</span>
</div>
<h1 itemprop="name">BMW 520, 1998</h1>
<div class="pv">
  <div class="p">
    <img src="//s.list.am/f/101/1.jpg">
    <img src="//s.list.am/f/101/2.jpg">
    <img>
  </div>
</div>
<span itemprop="price" content="4200">$4,200 negotiable<meta itemprop="priceCurrency" content="USD"></span>
<div class="loc"><a onclick="dlgOpen(40.18,44.51)">Yerevan, Arabkir</a></div>
<div class="pblock"><span class="g"></span><span></span><span class="g"></span><span class="g"></span></div>
<div itemprop="description">Well maintained, one owner.</div>
<div id="attr">
  <div class="c"><div class="t">Fuel Type</div><div class="i">Gas</div></div>
  <div class="c"><div class="t">Body  Style</div><div class="i">Sedan</div></div>
</div>
<div class="phone"><a onclick="dlgOpen('p'); return itemCall('Call','/u/99');">Show number</a></div>
<div class="footer">
  <span>Ad #4242</span>
  <span itemprop="datePosted" content="2021-05-04T10:30:00+04:00">04.05.2021</span>
  <span>Renewed: 2021-05-06 12:30</span>
</div>
</body></html>`

// same item, but with every optional region missing
const bareItemFixture = `<html><body>
<h1 itemprop="name">Lonely item</h1>
<div class="phone"><a onclick="return itemCall('Call','/u/99');">Show number</a></div>
</body></html>`

const authorFixture = `<html><body>
<img class="av_user" src="//s.list.am/a/99.jpg">
<div class="since">On site since <b>12.03.2015</b></div>
<a class="n" href="/user/99"><div>Armen</div><div>Verified seller</div></a>
<div class="phones">
  <a href="tel:+37477123456">077 123456</a>
  <a href="tel:+37410555777">010 555777</a>
</div>
</body></html>`

const homepageFixture = `<html><body>
<div class="c">
  <a href="/en/item/1">First listing</a>
  <a href="/en/item/2">Second listing</a>
</div>
</body></html>`

const categoryFixture = `<html><body>
<div class="gl">
  <a href="/en/item/10">Gallery tile</a>
</div>
<div class="dl">
  <a href="/en/item/11">List tile</a>
</div>
</body></html>`

const businessFixture = `<html><body>
<div class="dlbp">
  <a href="/en/biz/1">Biz One</a>
</div>
</body></html>`
