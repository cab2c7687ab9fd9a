package templates

import "errors"

// SourceKind tells how a template's content is produced.
type SourceKind int

const (
	// SourceInline templates carry their text in the descriptor.
	SourceInline SourceKind = iota + 1
	// SourceFile templates are read from the store's file system on every resolution.
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceInline:
		return "inline"
	case SourceFile:
		return "file"
	}
	return "unknown"
}

// Source locates the content of a template.
type Source struct {
	Kind SourceKind
	// Text holds the content of inline sources.
	Text string
	// Path is the slash-separated location of file sources, relative to the store root.
	Path string
}

// Inline returns a source whose content is text.
func Inline(text string) Source {
	return Source{Kind: SourceInline, Text: text}
}

// File returns a source read from path.
func File(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// Descriptor registers a template under a stable logical name.
type Descriptor struct {
	Name        string
	Source      Source
	Description string
}

func hasType(err error, t ErrorType) bool {
	var tErr *Error
	return errors.As(err, &tErr) && tErr.Type == t
}
