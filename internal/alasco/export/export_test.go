package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sylvainHellin/Alasco/internal/logger"
)

func sampleFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"contract_id", "contractor_name"},
		{"c1", "Müller Bau"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "core.csv")

	err := WriteCSV(sampleFrame(), path, Options{}, logger.New(logger.LevelError))
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "contract_id,contractor_name"))
	assert.Contains(t, string(body), "Müller Bau")
}

func TestWriteCSVWindows1252(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.csv")

	err := WriteCSV(sampleFrame(), path, Options{Windows1252: true}, logger.New(logger.LevelError))
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "M\xfcller Bau", "umlaut is encoded as a single Windows-1252 byte")
	assert.NotContains(t, string(body), "Müller")
}

func TestWriteCSVEmptyFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	err := WriteCSV(dataframe.DataFrame{}, path, Options{}, logger.New(logger.LevelError))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty tables produce no file")
}
