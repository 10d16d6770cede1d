package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCRNs(t *testing.T) {
	in := strings.NewReader("crn,name\n01234567,Alpha Ltd\nsc123456,Beta Ltd\n1234567,\n")

	crns, err := ReadCRNs(in)
	require.NoError(t, err)
	// "1234567" normalizes to "01234567", already seen, so it collapses.
	assert.Equal(t, []string{"01234567", "SC123456"}, crns)
}

func TestReadCRNs_NoHeader(t *testing.T) {
	crns, err := ReadCRNs(strings.NewReader("01234567\nSC123456\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"01234567", "SC123456"}, crns)
}

func TestReadCRNs_InvalidCRN(t *testing.T) {
	_, err := ReadCRNs(strings.NewReader("crn\nnot-a-crn\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadCRNs_BlankRows(t *testing.T) {
	crns, err := ReadCRNs(strings.NewReader("crn\n01234567\n\"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"01234567"}, crns)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulk.csv")
	require.NoError(t, os.WriteFile(path, []byte("crn\n01234567\n"), 0o644))

	crns, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"01234567"}, crns)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
