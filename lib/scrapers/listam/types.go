package listam

import "time"

// Link is one listing anchor on a homepage, category or business page.
// The href serves as the key of the enclosing map, so only the visible
// label lives here.
type Link struct {
	Name string
}

type Price struct {
	Amount   string
	Currency string
	// AdditionalInfo is the full visible price text, which may carry
	// annotations beyond the raw amount ("negotiable" and the like).
	AdditionalInfo string
}

type Location struct {
	Text string
	// MapRef is the raw client-side map handler payload, kept opaque.
	MapRef string
}

// Flags are the promotional indicators shown on an item. The site's
// markup exposes them purely by position, see extractFlags.
type Flags struct {
	Top      bool
	Homepage bool
	Urgent   bool
}

type Footer struct {
	DatePosted time.Time
	Renewed    time.Time
}

// Author is the seller profile linked from an item page, filled in by a
// secondary fetch of the profile page.
type Author struct {
	Name          string
	RegisterSince time.Time
	Avatar        string
	Phones        []string
	UserUrl       string
}

// Item is the fully parsed representation of a single classified-ad
// detail page. Every field is present on every record; markup the site
// happens to omit degrades to a zero value instead of an error.
type Item struct {
	Name        string
	Description string
	Price       Price
	Location    Location
	Flags       Flags
	Footer      Footer
	Categories  []string
	Properties  map[string]string
	Images      []string
	Author      Author
}
