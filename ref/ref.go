// Package ref resolves path references expressed relative to a document root.
// A root is either a filesystem directory or a base URL; references are value
// types and never embed their root inside the relative component.
package ref

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Kind declares what a reference is expected to point at. The kind decides
// which existence check applies under a filesystem root.
type Kind int

const (
	KindGeneric Kind = iota
	KindFile
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	}
	return "generic"
}

// Root is the base a reference resolves against: a directory or a URL.
type Root interface {
	Join(rel string) string
	String() string
	isRoot()
}

// DirRoot is a filesystem directory root.
type DirRoot struct {
	Path string
}

func (d DirRoot) Join(rel string) string {
	return filepath.Join(d.Path, filepath.FromSlash(rel))
}
func (d DirRoot) String() string { return d.Path }
func (DirRoot) isRoot()          {}

// URLRoot is a base-URL root. Joining appends the relative path to the URL
// path; a root without a trailing slash keeps its last segment.
type URLRoot struct {
	Raw string
}

func (u URLRoot) Join(rel string) string {
	parsed, err := url.Parse(u.Raw)
	if err != nil {
		return strings.TrimSuffix(u.Raw, "/") + "/" + rel
	}
	parsed.Path = path.Join(parsed.Path, rel)
	return parsed.String()
}
func (u URLRoot) String() string { return u.Raw }
func (URLRoot) isRoot()          {}

// Reference is a normalized posix-style path relative to a Root. It is a value
// type: equality and map-key behavior follow from the (relative, root) pair.
type Reference struct {
	Rel  string
	Kind Kind
	Root Root
}

// New builds a Reference from a posix-style relative path. Absolute paths and
// missing roots are construction errors.
func New(kind Kind, rel string, root Root) (Reference, error) {
	if root == nil {
		return Reference{}, errors.New("ref: no root available")
	}
	rel = filepath.ToSlash(rel)
	if path.IsAbs(rel) || filepath.IsAbs(rel) {
		return Reference{}, errors.Errorf("ref: %q is an absolute path", rel)
	}
	if rel == "" {
		return Reference{}, errors.New("ref: empty path")
	}
	return Reference{Rel: path.Clean(rel), Kind: kind, Root: root}, nil
}

// From copies the relative component of another reference of the same kind
// onto a (possibly different) root.
func From(other Reference, root Root) (Reference, error) {
	return New(other.Kind, other.Rel, root)
}

// FromContext builds a Reference against the root carried in ctx.
func FromContext(ctx context.Context, kind Kind, rel string) (Reference, error) {
	root, ok := RootFrom(ctx)
	if !ok {
		return Reference{}, errors.New("ref: no root available in context")
	}
	return New(kind, rel, root)
}

// Absolute resolves the reference against its root: a filesystem join under a
// DirRoot, a URL join under a URLRoot.
func (r Reference) Absolute() string { return r.Root.Join(r.Rel) }

func (r Reference) String() string { return r.Rel }

// IsRemote reports whether the reference resolves to a URL.
func (r Reference) IsRemote() bool {
	_, ok := r.Root.(URLRoot)
	return ok
}

// CheckExists verifies the resolved target on fs. References under a URL root
// are never checked; validation performs no network access.
func (r Reference) CheckExists(fs afero.Fs) error {
	if r.IsRemote() {
		return nil
	}
	abs := r.Absolute()
	info, err := fs.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s does not exist", abs)
	}
	switch r.Kind {
	case KindFile:
		if info.IsDir() {
			return fmt.Errorf("%s is not a file", abs)
		}
	case KindDirectory:
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", abs)
		}
	}
	return nil
}

type contextKey int

const _ctxKeyRoot contextKey = iota

// WithRoot returns a child context carrying the resolution root.
func WithRoot(ctx context.Context, root Root) context.Context {
	return context.WithValue(ctx, _ctxKeyRoot, root)
}

// RootFrom reads the resolution root from ctx.
func RootFrom(ctx context.Context) (Root, bool) {
	root, ok := ctx.Value(_ctxKeyRoot).(Root)
	return root, ok
}
