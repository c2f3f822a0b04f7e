package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/require"

	"github.com/tabrdf/tabrdf/mapping"
	"github.com/tabrdf/tabrdf/version"
)

const testMapping = `
prefixes:
  ex: http://example.org/
  foaf: http://xmlns.com/foaf/0.1/
  xsd: http://www.w3.org/2001/XMLSchema#
subject: {prefix: ex, column: name, classes: [foaf:Person]}
mappings:
  - {column: name, predicate: foaf:name}
  - {column: age, predicate: foaf:age, dataType: xsd:integer}
`

func writeFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "mapping.yaml", testMapping)
	in := writeFile(t, dir, "people.csv", "name,age\nAlice,30\nBob,\n")

	out, err := run(t, "convert", "-m", m, in)
	require.NoError(t, err)
	require.Equal(t, `@prefix ex: <http://example.org/> .
@prefix foaf: <http://xmlns.com/foaf/0.1/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

ex:Alice a foaf:Person ;
    foaf:name "Alice" ;
    foaf:age "30"^^xsd:integer .

ex:Bob a foaf:Person ;
    foaf:name "Bob" .
`, out)

	dst := filepath.Join(dir, "people.nq")
	_, err = run(t, "convert", "-m", m, "-i", in, "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(string(data), " .\n"))
}

func TestConvertCmdErrors(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "mapping.yaml", testMapping)
	in := writeFile(t, dir, "people.csv", "name,years\nAlice,30\n")

	_, err := run(t, "convert", "-m", m)
	require.Error(t, err)

	_, err = run(t, "convert", "-m", m, in)
	var missing *mapping.MissingColumnError
	require.True(t, errors.As(err, &missing), "%v", err)
	require.Equal(t, "age", missing.Column)

	_, err = run(t, "convert", "-m", m, "--delimiter", ";;", in)
	require.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "mapping.yaml", testMapping)
	good := writeFile(t, dir, "good.csv", "name,age\nAlice,30\n")
	bad := writeFile(t, dir, "bad.csv", "age\n30\n")

	out, err := run(t, "validate", "-m", m)
	require.NoError(t, err)
	require.Equal(t, "mapping: 3 prefixes, 1 classes, 2 columns\n", out)

	out, err = run(t, "validate", "-m", m, good)
	require.NoError(t, err)
	require.Contains(t, out, "good.csv: 1 rows OK")

	_, err = run(t, "validate", "-m", m, bad)
	var missing *mapping.MissingColumnError
	require.True(t, errors.As(err, &missing), "%v", err)

	broken := writeFile(t, dir, "broken.yaml", "prefixes: {ex: http://example.org/}\nsubject: {prefix: nope}\n")
	_, err = run(t, "validate", "-m", broken)
	require.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "mapping.yaml", testMapping)
	a := writeFile(t, dir, "a.csv", "name,age\nAlice,30\n")
	b := writeFile(t, dir, "b.csv", "name,age\nBob,25\n")
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "batch", "-m", m, "-d", outDir, "--workers", "2", a, b)
	require.NoError(t, err)
	for _, name := range []string{"a.ttl", "b.ttl"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		require.Contains(t, string(data), "a foaf:Person")
	}

	_, err = run(t, "batch", "-m", m, a)
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.String()+"\n", out)
}

func TestHttpCmd(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "mapping.yaml", testMapping)

	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	ctx, cancel := context.WithCancel(context.Background())
	root := NewRootCmd()
	root.SetArgs([]string{"http", "-m", m, "--host", addr})
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	uri := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(uri + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Post(uri+"/api/v1/convert?format=nquads", "text/csv", strings.NewReader("name,age\nAlice,30\n"))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.Contains(t, string(body), `<http://example.org/Alice> <http://xmlns.com/foaf/0.1/age> "30"^^<http://www.w3.org/2001/XMLSchema#integer> .`)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
