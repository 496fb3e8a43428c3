package listam

import (
	"testing"
	"time"

	"listam-scraper/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, "BMW 520, 1998", extractName(doc))
}

func TestExtractNameMissing(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)
	require.Equal(t, "", extractName(doc))
}

func TestExtractDescription(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, "Well maintained, one owner.", extractDescription(doc))
}

func TestExtractDescriptionMissing(t *testing.T) {
	doc := parseDoc(t, bareItemFixture)
	require.Equal(t, "", extractDescription(doc))
}

func TestExtractPrice(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, Price{
		Amount:         "4200",
		Currency:       "USD",
		AdditionalInfo: "$4,200 negotiable",
	}, extractPrice(doc))
}

func TestExtractPriceMissing(t *testing.T) {
	doc := parseDoc(t, bareItemFixture)
	require.Equal(t, Price{}, extractPrice(doc))
}

func TestExtractLocation(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, Location{
		Text:   "Yerevan, Arabkir",
		MapRef: "dlgOpen(40.18,44.51)",
	}, extractLocation(doc))
}

func TestExtractFlagsPositional(t *testing.T) {
	cases := []struct {
		name     string
		fixture  string
		expected Flags
	}{
		{
			name:     "single lit child",
			fixture:  `<div class="pblock"><span class="g"></span></div>`,
			expected: Flags{Top: true},
		},
		{
			name:     "middle child only",
			fixture:  `<div class="pblock"><span></span><span class="g"></span></div>`,
			expected: Flags{Homepage: true},
		},
		{
			name:     "fourth child ignored",
			fixture:  itemFixture,
			expected: Flags{Top: true, Urgent: true},
		},
		{
			name:     "no block at all",
			fixture:  `<html><body></body></html>`,
			expected: Flags{},
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, extractFlags(parseDoc(t, test.fixture)))
		})
	}
}

func TestExtractFooter(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	footer := extractFooter(doc)

	require.WithinDuration(
		t,
		time.Date(2021, 5, 4, 10, 30, 0, 0, timezone.Location),
		footer.DatePosted,
		time.Second,
	)
	require.WithinDuration(
		t,
		time.Date(2021, 5, 6, 12, 30, 0, 0, timezone.Location),
		footer.Renewed,
		time.Second,
	)
}

func TestExtractFooterRenewedFallsBackToNow(t *testing.T) {
	doc := parseDoc(t, bareItemFixture)
	footer := extractFooter(doc)

	require.WithinDuration(t, timezone.Now(), footer.Renewed, time.Second*5)
	require.WithinDuration(t, timezone.Now(), footer.DatePosted, time.Second*5)
}

func TestExtractCategories(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, []string{"Vehicles", "Cars"}, extractCategories(doc))
}

func TestExtractCategoriesMissing(t *testing.T) {
	doc := parseDoc(t, bareItemFixture)
	require.Empty(t, extractCategories(doc))
}

func TestExtractProperties(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, map[string]string{
		"fuel_type":  "gas",
		"body_style": "sedan",
	}, extractProperties(doc))
}

func TestExtractPropertiesDuplicateKeyOverwrites(t *testing.T) {
	doc := parseDoc(t, `<div id="attr">
		<div class="c"><div class="t">Color</div><div class="i">Red</div></div>
		<div class="c"><div class="t">Color</div><div class="i">Blue</div></div>
	</div>`)
	require.Equal(t, map[string]string{"color": "blue"}, extractProperties(doc))
}

func TestExtractImages(t *testing.T) {
	doc := parseDoc(t, itemFixture)
	require.Equal(t, []string{
		"//s.list.am/f/101/1.jpg",
		"//s.list.am/f/101/2.jpg",
		"",
	}, extractImages(doc))
}

func TestParseSiteDateFallback(t *testing.T) {
	require.WithinDuration(t, timezone.Now(), parseSiteDate(""), time.Second)
	require.WithinDuration(t, timezone.Now(), parseSiteDate("not a date"), time.Second)
}
