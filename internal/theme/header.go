package theme

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
)

// Header holds the WordPress theme header fields this tool cares about.
type Header struct {
	Name     string
	Template string
}

var (
	nameLine     = regexp.MustCompile(`(?im)^[ \t/*#@]*Theme Name:(.*)$`)
	templateLine = regexp.MustCompile(`(?im)^[ \t/*#@]*Template:(.*)$`)
)

// ParseHeader reads Theme Name and Template from the first block comment of
// a style.css. Missing fields are returned empty.
func ParseHeader(src []byte) Header {
	comment := firstComment(src)
	if comment == "" {
		return Header{}
	}
	return Header{
		Name:     headerValue(nameLine, comment),
		Template: headerValue(templateLine, comment),
	}
}

// firstComment returns the text of the first /* ... */ comment in src.
func firstComment(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	parser := sitter.NewParser()
	parser.SetLanguage(css.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		return ""
	}
	root := tree.RootNode()
	if root == nil {
		return ""
	}
	node := findComment(root)
	if node == nil {
		return ""
	}
	text := node.Content(src)
	if !strings.HasPrefix(text, "/*") {
		return ""
	}
	return text
}

// findComment does a depth-first, document-order search for a comment node.
func findComment(node *sitter.Node) *sitter.Node {
	if node.Type() == "comment" {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := findComment(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func headerValue(re *regexp.Regexp, comment string) string {
	m := re.FindStringSubmatch(comment)
	if m == nil {
		return ""
	}
	v := m[1]
	if i := strings.Index(v, "*/"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
