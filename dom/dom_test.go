package dom

import "testing"

func TestParseBuildsTree(t *testing.T) {
	doc, err := Parse(`<div id="outer" class="wrap main"><button disabled>go</button><span>hi</span></div>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Type != DocumentNode {
		t.Fatalf("root type = %v, want DOCUMENT_NODE", doc.Type)
	}

	outer := doc.FindElement(func(n *Node) bool { return n.ID() == "outer" })
	if outer == nil {
		t.Fatal("did not find #outer")
	}
	if outer.TagName() != "div" {
		t.Errorf("TagName = %q, want div", outer.TagName())
	}
	if !outer.HasClass("wrap") || !outer.HasClass("main") {
		t.Errorf("class tokens not found in %q", outer.GetAttribute("class"))
	}
	if outer.HasClass("wr") {
		t.Error("HasClass matched a substring")
	}

	btn := doc.FindElement(func(n *Node) bool { return n.TagName() == "button" })
	if btn == nil {
		t.Fatal("did not find button")
	}
	if !btn.HasAttribute("disabled") {
		t.Error("button should carry disabled attribute")
	}
	if btn.Parent != outer {
		t.Error("button parent should be #outer")
	}
	if btn.TextContent() != "go" {
		t.Errorf("TextContent = %q, want go", btn.TextContent())
	}
}

func TestParseFindsFirstInDocumentOrder(t *testing.T) {
	doc, err := Parse(`<p>a</p><p>b</p>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p := doc.FindElement(func(n *Node) bool { return n.TagName() == "p" })
	if p == nil {
		t.Fatal("did not find p")
	}
	if got := p.TextContent(); got != "a" {
		t.Errorf("first p text = %q, want a", got)
	}
}

func TestAttributes(t *testing.T) {
	n := &Node{Type: ElementNode, Data: "div"}

	if n.HasAttribute("x") {
		t.Error("new node should have no attributes")
	}
	n.SetAttribute("x", "1")
	if got := n.GetAttribute("x"); got != "1" {
		t.Errorf("GetAttribute = %q, want 1", got)
	}
	n.SetAttribute("x", "2")
	if got := n.GetAttribute("x"); got != "2" {
		t.Errorf("after overwrite GetAttribute = %q, want 2", got)
	}
	if len(n.Attributes) != 1 {
		t.Errorf("overwrite should not duplicate, have %d attrs", len(n.Attributes))
	}
	n.RemoveAttribute("x")
	if n.HasAttribute("x") {
		t.Error("attribute not removed")
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	parent := &Node{Type: ElementNode, Data: "div"}
	a := &Node{Type: ElementNode, Data: "a"}
	b := &Node{Type: ElementNode, Data: "b"}

	parent.AppendChild(a)
	parent.AppendChild(b)
	if parent.FirstChild != a || parent.LastChild != b {
		t.Fatal("child links wrong after append")
	}
	if a.NextSibling != b || b.PrevSibling != a {
		t.Fatal("sibling links wrong after append")
	}
	if b.Root() != parent {
		t.Error("Root should walk to parent")
	}

	parent.RemoveChild(a)
	if parent.FirstChild != b || b.PrevSibling != nil {
		t.Fatal("links wrong after remove")
	}
	if a.Parent != nil {
		t.Error("removed child should be detached")
	}

	// Reparenting detaches from the old parent.
	other := &Node{Type: ElementNode, Data: "section"}
	other.AppendChild(b)
	if parent.FirstChild != nil {
		t.Error("old parent still holds reparented child")
	}
	if b.Parent != other {
		t.Error("child not attached to new parent")
	}
}
