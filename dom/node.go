package dom

import "strings"

// Attribute represents a single attribute on an element node.
type Attribute struct {
	Key   string
	Value string
}

// Node represents a node in the document tree. Elements carry their tag name
// in Data (lowercased by the parser); text and comment nodes carry their
// content there.
type Node struct {
	Type       NodeType
	Data       string
	Attributes []Attribute

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// AppendChild adds a child node to the end of this node's children,
// detaching it from any previous parent first.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	c.PrevSibling = n.LastChild
	c.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
}

// RemoveChild removes a child node from this node's children. It is a no-op
// if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		return
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	} else {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	} else {
		n.LastChild = c.PrevSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// Children returns a slice of all child nodes.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// Root returns the topmost ancestor of the node (the node itself if it is
// detached).
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// TagName returns the tag name of an element node, or empty string for any
// other node type.
func (n *Node) TagName() string {
	if n.Type != ElementNode {
		return ""
	}
	return n.Data
}

// ID returns the value of the id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// HasClass reports whether the node's class attribute contains the given
// class name as a whitespace-separated token.
func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.GetAttribute("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// GetAttribute returns the value of the specified attribute, or empty string
// if not found.
func (n *Node) GetAttribute(key string) string {
	for _, attr := range n.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// SetAttribute sets an attribute value, creating it if it doesn't exist.
func (n *Node) SetAttribute(key, value string) {
	for i, attr := range n.Attributes {
		if attr.Key == key {
			n.Attributes[i].Value = value
			return
		}
	}
	n.Attributes = append(n.Attributes, Attribute{Key: key, Value: value})
}

// HasAttribute returns true if the node has the specified attribute.
func (n *Node) HasAttribute(key string) bool {
	for _, attr := range n.Attributes {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// RemoveAttribute removes an attribute from the node.
func (n *Node) RemoveAttribute(key string) {
	for i, attr := range n.Attributes {
		if attr.Key == key {
			n.Attributes = append(n.Attributes[:i], n.Attributes[i+1:]...)
			return
		}
	}
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	if n.Type == TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.collectTextContent(sb)
	}
}

// Walk visits n and every descendant in document order until fn returns
// false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindElement returns the first element in document order for which match
// returns true, or nil.
func (n *Node) FindElement(match func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Type == ElementNode && match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}
