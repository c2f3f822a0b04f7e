package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/table"
)

const peopleConfig = `
prefixes:
  ex: http://example.org/
  foaf: http://xmlns.com/foaf/0.1/
  xsd: http://www.w3.org/2001/XMLSchema#
subject: {prefix: ex, column: name, classes: [foaf:Person]}
mappings:
  - {column: name, predicate: foaf:name, language: en}
  - {column: age, predicate: foaf:age, dataType: xsd:integer}
  - {column: knows, predicate: foaf:knows, relationPrefix: ex}
`

func write(t *testing.T, format string) string {
	c, err := mapping.Parse([]byte(peopleConfig))
	require.NoError(t, err)
	m, err := c.Compile()
	require.NoError(t, err)
	ds, err := table.ReadCSV(strings.NewReader("name,age,knows\nAlice,30,Bob\nBob,,Alice\n"), table.DefaultOptions())
	require.NoError(t, err)

	f, err := Lookup(format)
	require.NoError(t, err)
	var buf bytes.Buffer
	w := f.Writer(&buf, m.Prefixes)
	for _, row := range ds.Rows() {
		d, err := m.Describe(ds, row)
		require.NoError(t, err)
		require.NoError(t, w.WriteDescription(d))
	}
	require.NoError(t, w.Close())
	return buf.String()
}

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"jsonld", "nquads", "turtle"}, Names())
	require.Equal(t, "turtle", FormatByPath("out/people.TTL").Name)
	require.Equal(t, "turtle", FormatByPath("people.ttl.gz").Name)
	require.Equal(t, "nquads", FormatByPath("people.nt").Name)
	require.Equal(t, "jsonld", FormatByMime("application/ld+json; charset=utf-8").Name)
	require.Nil(t, FormatByPath("people.csv"))

	_, err := Lookup("rdfxml")
	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestTurtle(t *testing.T) {
	out := write(t, "turtle")
	require.True(t, strings.HasPrefix(out, "@prefix ex: <http://example.org/> .\n"))
	require.Contains(t, out, "ex:Bob a foaf:Person ;\n    foaf:name \"Bob\"@en ;\n    foaf:knows ex:Alice .\n")
}

func TestNQuads(t *testing.T) {
	out := write(t, "nquads")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	require.Contains(t, lines, `<http://example.org/Alice> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://xmlns.com/foaf/0.1/Person> .`)
	require.Contains(t, lines, `<http://example.org/Alice> <http://xmlns.com/foaf/0.1/age> "30"^^<http://www.w3.org/2001/XMLSchema#integer> .`)
	require.Contains(t, lines, `<http://example.org/Bob> <http://xmlns.com/foaf/0.1/name> "Bob"@en .`)
	require.NotContains(t, out, "@prefix")
}

func TestJSONLD(t *testing.T) {
	out := write(t, "jsonld")

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	ctx, ok := doc["@context"].(map[string]interface{})
	require.True(t, ok, "%s", out)
	require.Equal(t, "http://example.org/", ctx["ex"])
	require.Equal(t, "http://xmlns.com/foaf/0.1/", ctx["foaf"])

	require.Contains(t, out, `"@id": "ex:Alice"`)
	require.Contains(t, out, `"@id": "ex:Bob"`)
	require.Contains(t, out, `"foaf:Person"`)
	require.Contains(t, out, `"xsd:integer"`)
}
