package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and returns its path.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, "primecubes-test-*")

	_, err := tmpFile.WriteString(content)
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// OpenTempInput writes content to a temporary file and opens it for reading,
// for code that expects an *os.File such as stdin.
func OpenTempInput(t *testing.T, content string) *os.File {
	t.Helper()

	path := CreateTempFileWithContents(t, content)
	file, err := os.Open(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		file.Close()
	})

	return file
}
