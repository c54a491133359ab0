package exporters

import (
	"io"

	"github.com/mrlokans/jumpdb/internal/entities"
)

type DirectoryExporter interface {
	Export(w io.Writer, dirs []entities.Directory) (ExportResult, error)
}

type ExportResult struct {
	DirectoriesExported int `json:"directories_exported"`
	DirectoriesSkipped  int `json:"directories_skipped"`
}
