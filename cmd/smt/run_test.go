package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.smt")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunFilesCheckSatUnsat(t *testing.T) {
	path := writeScript(t, `
(declare-const x Bool)
(assert x)
(assert (not x))
(check-sat)
`)
	var out bytes.Buffer
	require.NoError(t, runFiles(&out, silentLogger(), []string{path}))
	require.Equal(t, "UNSAT\n", out.String())
}

func TestRunFilesCheckSatSat(t *testing.T) {
	path := writeScript(t, `
(declare-const x Bool)
(declare-const y Bool)
(assert (or x y))
(check-sat)
`)
	var out bytes.Buffer
	require.NoError(t, runFiles(&out, silentLogger(), []string{path}))
	require.Equal(t, "SAT\n", out.String())
}

func TestRunFilesSimplifyPrintsCNF(t *testing.T) {
	path := writeScript(t, `
(declare-const A Bool)
(declare-const B Bool)
(simplify (and A B))
`)
	var out bytes.Buffer
	require.NoError(t, runFiles(&out, silentLogger(), []string{path}))
	require.Contains(t, out.String(), "(and")
}

func TestRunFilesSharesDeclarationsAcrossFiles(t *testing.T) {
	first := writeScript(t, "(declare-const x Bool)")
	second := writeScript(t, "(assert x)\n(check-sat)")

	var out bytes.Buffer
	require.NoError(t, runFiles(&out, silentLogger(), []string{first, second}))
	require.Equal(t, "SAT\n", out.String())
}
