package mapping

import (
	"errors"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabrdf/tabrdf/table"
	"github.com/tabrdf/tabrdf/voc"
)

const (
	ex     = "http://example.org/"
	foaf   = "http://xmlns.com/foaf/0.1/"
	schema = "http://schema.org/"
	xsd    = "http://www.w3.org/2001/XMLSchema#"
)

const peopleConfig = `
prefixes:
  ex: http://example.org/
  foaf: http://xmlns.com/foaf/0.1/
  schema: http://schema.org/
  xsd: http://www.w3.org/2001/XMLSchema#
subject:
  prefix: ex
  column: name
  classes: [foaf:Person]
mappings:
  - column: name
    predicate: foaf:name
  - column: age
    predicate: schema:age
    dataType: xsd:integer
  - column: knows
    predicate: foaf:knows
    relationPrefix: ex
  - column: bio
    predicate: schema:description
    language: EN-gb
`

func compile(t testing.TB, src string) *Mapping {
	c, err := Parse([]byte(src))
	require.NoError(t, err)
	m, err := c.Compile()
	require.NoError(t, err)
	return m
}

func TestCompile(t *testing.T) {
	m := compile(t, peopleConfig)

	var names []string
	for _, p := range m.Prefixes.List() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"ex", "foaf", "schema", "xsd"}, names)

	require.Equal(t, Subject{Prefix: "ex", Column: "name", Classes: []quad.IRI{foaf + "Person"}}, m.Subject)
	require.Equal(t, []Column{
		{Name: "name", Predicate: foaf + "name", Kind: Plain},
		{Name: "age", Predicate: schema + "age", Kind: Typed, Datatype: xsd + "integer"},
		{Name: "knows", Predicate: foaf + "knows", Kind: Reference, RelationPrefix: "ex"},
		{Name: "bio", Predicate: schema + "description", Kind: Lang, Lang: "en-GB"},
	}, m.Columns)
}

func TestCompileJSON(t *testing.T) {
	m := compile(t, `{
  "prefixes": {"ex": "http://example.org/", "foaf": "http://xmlns.com/foaf/0.1/"},
  "subject": {"prefix": "ex"},
  "mappings": [{"column": "name", "predicate": "foaf:name"}]
}`)
	require.Equal(t, 2, m.Prefixes.Len())
	require.Equal(t, "", m.Subject.Column)
	require.Len(t, m.Columns, 1)
}

func TestCompileLegacy(t *testing.T) {
	m := compile(t, `
prefixes:
  foaf: http://xmlns.com/foaf/0.1/
  xsd: http://www.w3.org/2001/XMLSchema#
subject_prefix: foaf
subject_classes: [foaf:Person]
predicate_maps:
  name: foaf:name
  age: foaf:age
  knows: foaf:knows
language_tags:
  name: en
data_types:
  age: xsd:integer
relations: [knows]
`)
	require.Equal(t, Subject{Prefix: "foaf", Classes: []quad.IRI{foaf + "Person"}}, m.Subject)
	require.Equal(t, []Column{
		{Name: "name", Predicate: foaf + "name", Kind: Lang, Lang: "en"},
		{Name: "age", Predicate: foaf + "age", Kind: Typed, Datatype: xsd + "integer"},
		{Name: "knows", Predicate: foaf + "knows", Kind: Reference, RelationPrefix: "foaf"},
	}, m.Columns)
	require.True(t, m.DatasetOrder)

	ds, err := table.New("knows", "age", "name")
	require.NoError(t, err)
	require.NoError(t, ds.Append("alice", table.String("bob"), table.Int(30), table.String("Alice")))
	d, err := m.Describe(ds, ds.Rows()[0])
	require.NoError(t, err)
	var preds []quad.Value
	for _, q := range d.Quads {
		preds = append(preds, q.Predicate)
	}
	require.Equal(t, []quad.Value{RDFType, quad.IRI(foaf + "knows"), quad.IRI(foaf + "age"), quad.IRI(foaf + "name")}, preds)
}

func TestCompileLanguageTag(t *testing.T) {
	for _, c := range []struct{ in, out string }{
		{"en", "en"},
		{"EN-gb", "en-GB"},
		{"iw", "iw"},
		{"tl", "tl"},
		{"zh-hant-tw", "zh-Hant-TW"},
	} {
		m := compile(t, `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: note, predicate: ex:note, language: "`+c.in+`"}
`)
		assert.Equal(t, c.out, m.Columns[0].Lang, c.in)
	}
}

var casesCompileErrors = []struct {
	name  string
	src   string
	check func(t *testing.T, err error)
}{
	{
		name: "conflicting fields",
		src: `
prefixes: {ex: "http://example.org/", xsd: "http://www.w3.org/2001/XMLSchema#"}
subject: {prefix: ex}
mappings:
  - {column: age, predicate: ex:age, dataType: xsd:integer, language: en}
`,
		check: func(t *testing.T, err error) {
			var e *ConflictingMappingError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "age", e.Column)
			require.Equal(t, []string{"dataType", "language"}, e.Fields)
		},
	},
	{
		name: "unknown predicate prefix",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: age, predicate: schema:age}
`,
		check: func(t *testing.T, err error) {
			var e *voc.UnresolvedPrefixError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "schema", e.Prefix)
		},
	},
	{
		name: "predicate local name with space",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: label, predicate: "ex:has label"}
`,
		check: func(t *testing.T, err error) {
			require.True(t, errors.Is(err, voc.ErrInvalidIRI), "%v", err)
		},
	},
	{
		name: "class local name with angle bracket",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex, classes: ["ex:a>b"]}
`,
		check: func(t *testing.T, err error) {
			require.True(t, errors.Is(err, voc.ErrInvalidIRI), "%v", err)
		},
	},
	{
		name: "unknown class prefix",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex, classes: [foaf:Person]}
`,
		check: func(t *testing.T, err error) {
			var e *voc.UnresolvedPrefixError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "foaf", e.Prefix)
		},
	},
	{
		name: "unknown subject prefix",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: people}
`,
		check: func(t *testing.T, err error) {
			var e *voc.UnresolvedPrefixError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "people", e.Prefix)
		},
	},
	{
		name: "unknown relation prefix",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: knows, predicate: ex:knows, relationPrefix: people}
`,
		check: func(t *testing.T, err error) {
			var e *voc.UnresolvedPrefixError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "people", e.Prefix)
		},
	},
	{
		name: "missing subject prefix",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {column: name}
`,
		check: func(t *testing.T, err error) {
			var e *InvalidConfigError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "subject.prefix", e.Field)
		},
	},
	{
		name: "bad language tag",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: bio, predicate: ex:bio, language: "not a tag"}
`,
		check: func(t *testing.T, err error) {
			var e *InvalidConfigError
			require.True(t, errors.As(err, &e), "%v", err)
			require.Equal(t, "language", e.Field)
		},
	},
	{
		name: "duplicate prefix",
		src: `
prefixes:
  ex: http://example.org/
  ex: http://example.com/
subject: {prefix: ex}
`,
		check: func(t *testing.T, err error) {
			require.Contains(t, err.Error(), `"ex"`)
		},
	},
	{
		name: "mixed shapes",
		src: `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
subject_prefix: ex
`,
		check: func(t *testing.T, err error) {
			var e *InvalidConfigError
			require.True(t, errors.As(err, &e), "%v", err)
		},
	},
}

func TestCompileErrors(t *testing.T) {
	for _, c := range casesCompileErrors {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Parse([]byte(c.src))
			if err == nil {
				_, err = cfg.Compile()
			}
			require.Error(t, err)
			c.check(t, err)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(""))
	var e *InvalidConfigError
	require.True(t, errors.As(err, &e))

	_, err = Parse([]byte("prefixes: {}\nsubjects: {prefix: ex}\n"))
	require.True(t, errors.As(err, &e), "unknown keys must be rejected")

	_, err = Parse([]byte("prefixes: [ex]\n"))
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	m := compile(t, peopleConfig)
	require.NoError(t, m.Check([]string{"name", "age", "knows", "bio", "extra"}))

	err := m.Check([]string{"name", "age", "bio"})
	var e *MissingColumnError
	require.True(t, errors.As(err, &e))
	require.Equal(t, "knows", e.Column)
	require.Equal(t, "mappings[2].column", e.Field)

	err = m.Check([]string{"age", "knows", "bio"})
	require.True(t, errors.As(err, &e))
	require.Equal(t, "subject.column", e.Field)
}

func TestCellToTerm(t *testing.T) {
	m := compile(t, peopleConfig)
	pt := m.Prefixes
	name, age, knows, bio := m.Columns[0], m.Columns[1], m.Columns[2], m.Columns[3]

	cases := []struct {
		v   table.Value
		c   Column
		exp quad.Value
	}{
		{table.String("Alice"), name, quad.String("Alice")},
		{table.Int(30), name, quad.String("30")},
		{table.Int(30), age, quad.TypedString{Value: "30", Type: xsd + "integer"}},
		{table.Float(2.50), age, quad.TypedString{Value: "2.5", Type: xsd + "integer"}},
		{table.String("Hi"), bio, quad.LangString{Value: "Hi", Lang: "en-GB"}},
		{table.String("Bob"), knows, quad.IRI(ex + "Bob")},
		{table.String(" Bob "), knows, quad.IRI(ex + "Bob")},
		{table.String("New York"), knows, quad.IRI(ex + "New%20York")},
		{table.String("foaf:Bob"), knows, quad.IRI(foaf + "Bob")},
		{table.String("http://other.org/x"), knows, quad.IRI("http://other.org/x")},
		{table.String("<http://other.org/y>"), knows, quad.IRI("http://other.org/y")},
		{table.String("12:30"), knows, quad.IRI(ex + "12:30")},
	}
	for _, c := range cases {
		got, ok, err := CellToTerm(c.v, c.c, pt)
		require.NoError(t, err, "%v", c.v)
		require.True(t, ok)
		assert.Equal(t, c.exp, got, "%v as %v", c.v, c.c.Kind)
	}

	for _, c := range []Column{name, age, knows, bio} {
		_, ok, err := CellToTerm(table.Null(), c, pt)
		require.NoError(t, err)
		require.False(t, ok)
	}

	_, _, err := CellToTerm(table.String("dbr:Berlin"), knows, pt)
	var e *voc.UnresolvedPrefixError
	require.True(t, errors.As(err, &e))
	require.Equal(t, "dbr", e.Prefix)
}

func peopleDataset(t testing.TB) *table.Dataset {
	ds, err := table.New("name", "age", "knows", "bio")
	require.NoError(t, err)
	require.NoError(t, ds.AppendRow(table.String("Alice"), table.Int(30), table.String("Bob"), table.Null()))
	require.NoError(t, ds.AppendRow(table.String("Bob"), table.Null(), table.String("Alice"), table.String("Hi")))
	return ds
}

func TestDescribe(t *testing.T) {
	m := compile(t, peopleConfig)
	ds := peopleDataset(t)
	require.NoError(t, m.Check(ds.Columns()))

	rows := ds.Rows()
	d, err := m.Describe(ds, rows[0])
	require.NoError(t, err)
	alice := quad.IRI(ex + "Alice")
	require.Equal(t, alice, d.Subject)
	require.Equal(t, 1, d.Skipped)
	require.Equal(t, []quad.Quad{
		{Subject: alice, Predicate: RDFType, Object: quad.IRI(foaf + "Person")},
		{Subject: alice, Predicate: quad.IRI(foaf + "name"), Object: quad.String("Alice")},
		{Subject: alice, Predicate: quad.IRI(schema + "age"), Object: quad.TypedString{Value: "30", Type: xsd + "integer"}},
		{Subject: alice, Predicate: quad.IRI(foaf + "knows"), Object: quad.IRI(ex + "Bob")},
	}, d.Quads)

	d, err = m.Describe(ds, rows[1])
	require.NoError(t, err)
	require.Len(t, d.Quads, 4)
	for _, q := range d.Quads {
		require.NotEqual(t, quad.IRI(schema+"age"), q.Predicate)
	}
}

func TestDescribeSubject(t *testing.T) {
	m := compile(t, `
prefixes: {ex: "http://example.org/"}
subject: {prefix: ex}
mappings:
  - {column: label, predicate: ex:label}
`)
	ds, err := table.New("label")
	require.NoError(t, err)
	require.NoError(t, ds.Append("row 7", table.Null()))

	d, err := m.Describe(ds, ds.Rows()[0])
	require.NoError(t, err)
	require.Equal(t, quad.IRI(ex+"row%207"), d.Subject)
	require.True(t, d.Empty())

	m.Subject.Column = "label"
	_, err = m.Describe(ds, ds.Rows()[0])
	var e *EmptySubjectError
	require.True(t, errors.As(err, &e))
	require.Equal(t, "row 7", e.Row)
}
