package search

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Chunk is one indexed section of a template.
type Chunk struct {
	Template string
	Section  string
	Content  string
}

// ChunkMarkdown splits a markdown template into one chunk per H1–H3 section.
// Text before the first heading is attributed to the template itself.
func ChunkMarkdown(template string, src []byte) []Chunk {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var chunks []Chunk
	var section string
	var buffer strings.Builder

	flush := func() {
		content := strings.TrimSpace(buffer.String())
		buffer.Reset()
		if content == "" && section == "" {
			return
		}
		chunks = append(chunks, Chunk{
			Template: template,
			Section:  section,
			Content:  content,
		})
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level <= 3 {
				flush()
				section = string(node.Text(src))
				continue
			}
			buffer.WriteString("\n" + string(node.Text(src)) + "\n")
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buffer.Write(line.Value(src))
			}
			buffer.WriteString("\n")
		case *ast.HTMLBlock:
			// comments in skeleton templates are authoring hints, not content
		default:
			buffer.WriteString("\n" + blockText(n, src) + "\n")
		}
	}
	flush()

	return chunks
}

// ChunkPlain indexes a non-markdown template as a single chunk.
func ChunkPlain(template string, src []byte) []Chunk {
	content := strings.TrimSpace(string(src))
	if content == "" {
		return nil
	}
	return []Chunk{{Template: template, Content: content}}
}

// blockText collects the raw source lines of n and its descendants.
func blockText(n ast.Node, src []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				b.Write(line.Value(src))
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
