// Package templates resolves logical template names to their text content.
//
// A Store is built once from a fixed list of descriptors and is read-only afterwards,
// so it is safe for concurrent use without locking. File-backed templates are re-read
// from disk on every resolution.
package templates

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/edsblocks/eds-mcp/internal/logging"
)

// Store maps template names to their sources.
type Store struct {
	fsys        fs.FS
	descriptors []Descriptor
	index       map[string]int
}

// NewStore validates descriptors and builds a store reading file sources from fsys.
// fsys may be nil when every descriptor is inline.
func NewStore(fsys fs.FS, descriptors ...Descriptor) (*Store, error) {
	s := &Store{
		fsys:        fsys,
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if err := s.add(d); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) add(d Descriptor) error {
	misconfigured := func(format string, args ...any) error {
		return &Error{Type: ErrorTypeMisconfigured, Name: d.Name, Message: fmt.Sprintf(format, args...)}
	}

	if strings.TrimSpace(d.Name) == "" {
		return misconfigured("template name cannot be empty")
	}
	if _, exists := s.index[d.Name]; exists {
		return misconfigured("template %q is already registered", d.Name)
	}

	switch d.Source.Kind {
	case SourceInline:
		if d.Source.Text == "" {
			return misconfigured("inline template %q has no content", d.Name)
		}
	case SourceFile:
		if s.fsys == nil {
			return misconfigured("file template %q registered without a file system", d.Name)
		}
		if !fs.ValidPath(d.Source.Path) || d.Source.Path == "." {
			return misconfigured("file template %q has invalid path %q", d.Name, d.Source.Path)
		}
	default:
		return misconfigured("template %q has unknown source kind %d", d.Name, d.Source.Kind)
	}

	s.index[d.Name] = len(s.descriptors)
	s.descriptors = append(s.descriptors, d)
	return nil
}

// Names returns the registered template names in registration order.
func (s *Store) Names() []string {
	names := make([]string, len(s.descriptors))
	for i, d := range s.descriptors {
		names[i] = d.Name
	}
	return names
}

// Descriptors returns a copy of the registered descriptors in registration order.
func (s *Store) Descriptors() []Descriptor {
	return append([]Descriptor(nil), s.descriptors...)
}

// Lookup returns the current content of the named template, or a *Error of type
// ErrorTypeNotFound or ErrorTypeUnreadable.
func (s *Store) Lookup(name string) (string, error) {
	i, ok := s.index[name]
	if !ok {
		return "", &Error{Type: ErrorTypeNotFound, Name: name, Message: fmt.Sprintf("no template named %q", name)}
	}

	d := s.descriptors[i]
	if d.Source.Kind == SourceInline {
		return d.Source.Text, nil
	}

	content, err := s.readFile(d.Source.Path)
	if err != nil {
		return "", &Error{Type: ErrorTypeUnreadable, Name: name, Message: fmt.Sprintf("failed to read template %q", name), Err: err}
	}
	return content, nil
}

func (s *Store) readFile(path string) (string, error) {
	f, err := s.fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close() // read errors take precedence
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}
	return string(data), nil
}

// Resolve returns the named template's content. Failures are never returned as errors:
// the caller gets a descriptive text naming the valid templates instead, so an agent can
// correct itself. Unreadable files are logged with the underlying cause, which is kept
// out of the returned text.
func (s *Store) Resolve(ctx context.Context, name string) string {
	content, err := s.Lookup(name)
	if err == nil {
		return content
	}

	if IsUnreadable(err) {
		d := s.descriptors[s.index[name]]
		logging.FileOperation(ctx, "templates", "read", d.Source.Path, err)
		return s.unreadableText(name)
	}

	logging.WithContext(ctx).DebugContext(ctx, "Unknown template requested",
		"component", "templates",
		"template", name,
	)
	return s.notFoundText(name)
}

func (s *Store) notFoundText(name string) string {
	var b strings.Builder
	if name == "" {
		b.WriteString("No template name was given.\n\n")
	} else {
		fmt.Fprintf(&b, "Template %q was not found.\n\n", name)
	}
	b.WriteString("Available templates:\n")
	s.writeNames(&b, "")
	b.WriteString("\nRetry with one of the names above. Names are case-sensitive.")
	return b.String()
}

func (s *Store) unreadableText(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Template %q is registered but could not be read. The server operator has been notified.\n", name)
	if len(s.descriptors) > 1 {
		b.WriteString("\nOther available templates:\n")
		s.writeNames(&b, name)
	}
	return b.String()
}

func (s *Store) writeNames(b *strings.Builder, skip string) {
	for _, d := range s.descriptors {
		if d.Name == skip {
			continue
		}
		fmt.Fprintf(b, "- %s\n", d.Name)
	}
}
