package listam

import "strings"

// paths the site exposes, relative to the base url. Placeholders use the
// -key- form and are substituted verbatim by resolveUri.
type pathTable struct {
	Homepage      string
	Category      string
	BusinessPages string
	Item          string
	// legacy author-info endpoint, superseded by the path resolved out
	// of the item page's call handler (see authorPath)
	AuthorInfo string
}

var defaultPaths = pathTable{
	Homepage:      "/en/",
	Category:      "/en/category/-categoryId-/-page-",
	BusinessPages: "/en/pages?pg=-page-",
	Item:          "/en/item/-itemId-",
	AuthorInfo:    "/?w=12&&i=-itemId-",
}

// resolveUri substitutes every -key- occurrence in the template with the
// matching param value. Values are inserted as-is, callers pass already
// url-safe path segments. Unmatched placeholders stay verbatim. When
// absolute is set the client's base url is prefixed.
func (c *Client) resolveUri(template string, params map[string]string, absolute bool) string {
	uri := template
	for key, value := range params {
		uri = strings.ReplaceAll(uri, "-"+key+"-", value)
	}
	if absolute {
		return strings.TrimSuffix(c.BaseUrl.String(), "/") + uri
	}
	return uri
}
