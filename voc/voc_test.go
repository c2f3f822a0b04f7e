package voc

import (
	"errors"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

func newTestTable(t testing.TB) *PrefixTable {
	pt, err := NewPrefixTable(
		Prefix{Name: "ex", Base: "http://example.org/"},
		Prefix{Name: "foaf", Base: "http://xmlns.com/foaf/0.1/"},
		Prefix{Name: "exp", Base: "http://example.org/people/"},
		Prefix{Name: "xsd", Base: "http://www.w3.org/2001/XMLSchema#"},
	)
	require.NoError(t, err)
	return pt
}

var casesResolve = []struct {
	name   string
	expect quad.IRI
	prefix string // expected unresolved prefix, if any
}{
	{name: "foaf:name", expect: "http://xmlns.com/foaf/0.1/name"},
	{name: "ex:", expect: "http://example.org/"},
	{name: "xsd:integer", expect: "http://www.w3.org/2001/XMLSchema#integer"},
	{name: "http://schema.org/age", expect: "http://schema.org/age"},
	{name: "<http://schema.org/age>", expect: "http://schema.org/age"},
	{name: "urn:isbn:0451450523", expect: "urn:isbn:0451450523"},
	{name: "schema:age", prefix: "schema"},
	{name: "Person", prefix: ""},
}

func TestResolve(t *testing.T) {
	pt := newTestTable(t)
	for _, c := range casesResolve {
		t.Run(c.name, func(t *testing.T) {
			iri, err := pt.Resolve(c.name)
			if c.expect != "" {
				require.NoError(t, err)
				require.Equal(t, c.expect, iri)
				return
			}
			var e *UnresolvedPrefixError
			require.True(t, errors.As(err, &e), "unexpected error: %v", err)
			require.Equal(t, c.prefix, e.Prefix)
			require.Equal(t, c.name, e.Name)
		})
	}
}

func TestResolveDeclaredPrefixWinsOverScheme(t *testing.T) {
	pt, err := NewPrefixTable(Prefix{Name: "http", Base: "http://example.org/h/"})
	require.NoError(t, err)
	iri, err := pt.Resolve("http:x")
	require.NoError(t, err)
	require.Equal(t, quad.IRI("http://example.org/h/x"), iri)
}

func TestResolveInvalid(t *testing.T) {
	pt := newTestTable(t)
	_, err := pt.Resolve("")
	require.True(t, errors.Is(err, ErrEmptyName))
	_, err = pt.Resolve("<http://example.org/a b>")
	require.True(t, errors.Is(err, ErrInvalidIRI))
	_, err = pt.Resolve("ex:has label")
	require.True(t, errors.Is(err, ErrInvalidIRI))
	_, err = pt.Resolve("ex:a>b")
	require.True(t, errors.Is(err, ErrInvalidIRI))
}

func TestNewPrefixTable(t *testing.T) {
	_, err := NewPrefixTable(
		Prefix{Name: "ex", Base: "http://example.org/"},
		Prefix{Name: "ex", Base: "http://example.com/"},
	)
	require.True(t, errors.Is(err, ErrDuplicatePrefix))

	_, err = NewPrefixTable(Prefix{Name: "1ex", Base: "http://example.org/"})
	require.True(t, errors.Is(err, ErrInvalidPrefix))

	_, err = NewPrefixTable(Prefix{Name: "ex", Base: ""})
	require.True(t, errors.Is(err, ErrInvalidIRI))

	pt := newTestTable(t)
	require.Equal(t, 4, pt.Len())
	names := make([]string, 0, pt.Len())
	for _, p := range pt.List() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"ex", "foaf", "exp", "xsd"}, names)
}

var casesShortIRI = []struct {
	full  quad.IRI
	short string
}{
	{full: "http://example.org/name", short: "ex:name"},
	{full: "http://example.org/people/Alice", short: "exp:Alice"},
	{full: "http://xmlns.com/foaf/0.1/Person", short: "foaf:Person"},
	{full: "http://example.org/people/", short: "exp:"},
	{full: "http://example.org/2020", short: "ex:2020"},
	{full: "http://example.org/a%20b", short: ""},
	{full: "http://example.org/a/b", short: ""},
	{full: "http://example.org/trailing.", short: ""},
	{full: "http://other.org/name", short: ""},
}

func TestShortIRI(t *testing.T) {
	pt := newTestTable(t)
	for _, c := range casesShortIRI {
		s, ok := pt.ShortIRI(c.full)
		if c.short == "" {
			require.False(t, ok, "unexpected short iri for %v: %q", c.full, s)
			require.Equal(t, c.full.String(), pt.Format(c.full))
			continue
		}
		require.True(t, ok, "no short iri for %v", c.full)
		require.Equal(t, c.short, s)
		require.Equal(t, c.short, pt.Format(c.full))
	}
}

func TestResolveLocal(t *testing.T) {
	pt := newTestTable(t)
	iri, err := pt.ResolveLocal("ex", "New York")
	require.NoError(t, err)
	require.Equal(t, quad.IRI("http://example.org/New%20York"), iri)

	_, err = pt.ResolveLocal("nope", "x")
	var e *UnresolvedPrefixError
	require.True(t, errors.As(err, &e))
	require.Equal(t, "nope", e.Prefix)
}

func TestIsAbsoluteIRI(t *testing.T) {
	require.True(t, IsAbsoluteIRI("https://example.org"))
	require.True(t, IsAbsoluteIRI("mailto:alice@example.org"))
	require.False(t, IsAbsoluteIRI("foaf:Person"))
	require.False(t, IsAbsoluteIRI("1http://x"))
	require.False(t, IsAbsoluteIRI(":x"))
}
