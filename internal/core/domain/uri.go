package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultAuthority is the authority Trolly answers for unless
// configured otherwise.
const DefaultAuthority = "captainfanatic.trolly"

// uriScheme prefixes every content URI.
const uriScheme = "content://"

// collectionPath addresses the full shopping list under an authority.
const collectionPath = "shoppinglist"

// Content type labels reported for introspection.
const (
	// TypeItemDir labels a collection of items.
	TypeItemDir = "application/vnd.trolly.dir"
	// TypeItem labels a single item.
	TypeItem = "application/vnd.trolly.item"
)

// Kind identifies which route shape a content URI resolved to.
type Kind int

const (
	// KindNone is the zero Kind; no route matched.
	KindNone Kind = iota
	// KindItems addresses the full set of items.
	KindItems
	// KindItemID addresses a single item by numeric id.
	KindItemID
)

// URI is a matched content URI. The zero value is not valid; URIs are
// produced by a Matcher.
type URI struct {
	authority string
	kind      Kind
	id        int64
}

// Kind returns the route shape the URI resolved to.
func (u URI) Kind() Kind { return u.kind }

// ID returns the item id for KindItemID URIs and zero otherwise.
func (u URI) ID() int64 { return u.id }

// Authority returns the URI's authority.
func (u URI) Authority() string { return u.authority }

// String renders the canonical form of the URI.
func (u URI) String() string {
	s := uriScheme + u.authority + "/" + collectionPath
	if u.kind == KindItemID {
		s += "/" + strconv.FormatInt(u.id, 10)
	}
	return s
}

// Matcher resolves content URIs for a single authority. It is built
// once at startup and is safe for concurrent use.
type Matcher struct {
	authority string
}

// NewMatcher creates a matcher for the given authority.
// An empty authority falls back to DefaultAuthority.
func NewMatcher(authority string) Matcher {
	if authority == "" {
		authority = DefaultAuthority
	}
	return Matcher{authority: authority}
}

// Authority returns the authority this matcher answers for.
func (m Matcher) Authority() string { return m.authority }

// Collection returns the URI addressing the full shopping list.
func (m Matcher) Collection() URI {
	return URI{authority: m.authority, kind: KindItems}
}

// Item returns the URI addressing a single item by id.
func (m Matcher) Item(id int64) URI {
	return URI{authority: m.authority, kind: KindItemID, id: id}
}

// Match resolves a raw content URI to one of the two known route
// shapes. Any other shape fails with ErrUnknownURI naming the input.
func (m Matcher) Match(raw string) (URI, error) {
	rest, ok := strings.CutPrefix(raw, uriScheme)
	if !ok {
		return URI{}, fmt.Errorf("%w %q", ErrUnknownURI, raw)
	}

	authority, path, ok := strings.Cut(rest, "/")
	if !ok || authority != m.authority {
		return URI{}, fmt.Errorf("%w %q", ErrUnknownURI, raw)
	}

	if path == collectionPath {
		return m.Collection(), nil
	}

	suffix, ok := strings.CutPrefix(path, collectionPath+"/")
	if !ok {
		return URI{}, fmt.Errorf("%w %q", ErrUnknownURI, raw)
	}

	// Digits only: signs and empty suffixes are not item ids.
	if suffix == "" || suffix[0] == '+' || suffix[0] == '-' {
		return URI{}, fmt.Errorf("%w %q", ErrUnknownURI, raw)
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || id <= 0 {
		return URI{}, fmt.Errorf("%w %q", ErrUnknownURI, raw)
	}

	return m.Item(id), nil
}

// Type returns the content type label for a raw URI.
func (m Matcher) Type(raw string) (string, error) {
	uri, err := m.Match(raw)
	if err != nil {
		return "", err
	}
	switch uri.Kind() {
	case KindItemID:
		return TypeItem, nil
	default:
		return TypeItemDir, nil
	}
}
