package htmlutil

import (
	"bytes"

	"golang.org/x/net/html"
)

// GetText renders the text content of a node, the way a browser's
// innerText would, by concatenating every text node underneath it.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// AttrOr reads an attribute off a node, returning fallback when the
// attribute is not present at all.
func AttrOr(node *html.Node, name, fallback string) string {
	if node == nil {
		return fallback
	}
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return fallback
}
