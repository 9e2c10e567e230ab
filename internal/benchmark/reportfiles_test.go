package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intm "benchmark-reporter/internal"
)

func TestExtensionFor(t *testing.T) {
	for format, ext := range map[Format]Extension{
		FormatMarkdown: ExtMarkdown,
		FormatLog:      ExtLog,
		FormatJSON:     ExtJSON,
	} {
		got, err := ExtensionFor(format)
		require.NoError(t, err)
		assert.Equal(t, ext, got)
	}

	_, err := ExtensionFor("yaml")
	assert.ErrorIs(t, err, intm.ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	assert.Equal(t,
		filepath.Join("reports", "benchmark-report.max-depth-10.log"),
		FileName("reports", "max-depth-10", ExtLog))
}

func TestFileLocator(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(FileName(dir, "json", ExtMarkdown), []byte("# summary\n"), 0o600))

	locator := FileLocator{Dir: dir}

	text, err := locator.LoadReport("--json", ExtMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# summary\n", text)

	_, err = locator.LoadReport("--json", ExtLog)
	assert.ErrorIs(t, err, intm.ErrReportRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = locator.LoadReport("", ExtLog)
	assert.ErrorIs(t, err, intm.ErrInvalidCategory)
}
