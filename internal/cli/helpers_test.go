package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile writes a test fixture file.
func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}
