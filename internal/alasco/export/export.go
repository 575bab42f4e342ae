package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/sylvainHellin/Alasco/internal/logger"
	"golang.org/x/text/encoding/charmap"
)

// Options controls how a dataframe is written to disk.
type Options struct {
	// Windows1252 re-encodes the output for spreadsheet tools that do not
	// handle UTF-8 CSV files.
	Windows1252 bool
}

/*
WriteCSV writes a dataframe to path as a CSV file, creating the parent
directory when needed. An empty dataframe produces no file and no error.
*/
func WriteCSV(df dataframe.DataFrame, path string, opts Options, appLogger *logger.Logger) error {
	const component = "Exporter"

	if df.Nrow() == 0 {
		appLogger.Warn(component, "Nothing to export: path=%s", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory %s: %v", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %v", path, err)
	}
	defer file.Close()

	if opts.Windows1252 {
		encoded := charmap.Windows1252.NewEncoder().Writer(file)
		if err := df.WriteCSV(encoded); err != nil {
			return fmt.Errorf("failed to write CSV %s: %v", path, err)
		}
	} else {
		if err := df.WriteCSV(file); err != nil {
			return fmt.Errorf("failed to write CSV %s: %v", path, err)
		}
	}

	appLogger.Info(component, "Exported table: path=%s rows=%d cols=%d", path, df.Nrow(), df.Ncol())
	return nil
}
