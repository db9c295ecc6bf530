package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document or fragment from a string and returns the
// document node. The underlying parser applies standard HTML tree
// construction, so fragments end up under an implied html/body scaffold.
func Parse(markup string) (*Node, error) {
	return ParseReader(strings.NewReader(markup))
}

// ParseReader parses HTML from an io.Reader and returns the document node.
func ParseReader(r io.Reader) (*Node, error) {
	src, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return convertNode(src), nil
}

// convertNode converts a golang.org/x/net/html node tree into ours.
func convertNode(src *html.Node) *Node {
	n := &Node{Data: src.Data}

	switch src.Type {
	case html.DocumentNode:
		n.Type = DocumentNode
	case html.ElementNode:
		n.Type = ElementNode
		for _, a := range src.Attr {
			n.Attributes = append(n.Attributes, Attribute{Key: a.Key, Value: a.Val})
		}
	case html.TextNode:
		n.Type = TextNode
	case html.CommentNode:
		n.Type = CommentNode
	case html.DoctypeNode:
		n.Type = DoctypeNode
	default:
		return nil
	}

	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := convertNode(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}
