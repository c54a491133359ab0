package exporters

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mrlokans/jumpdb/internal/entities"
)

// ZExporter writes directories in the z database format, one
// "<path>|<rank>|<epoch>" line per directory, ordered by path.
type ZExporter struct{}

func NewZExporter() *ZExporter {
	return &ZExporter{}
}

func (e *ZExporter) Export(w io.Writer, dirs []entities.Directory) (ExportResult, error) {
	var result ExportResult

	sorted := make([]entities.Directory, len(dirs))
	copy(sorted, dirs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	bw := bufio.NewWriter(w)
	for _, dir := range sorted {
		// A newline in the path cannot be represented in a line based format.
		if dir.Path == "" || strings.ContainsAny(dir.Path, "\r\n") {
			result.DirectoriesSkipped++
			continue
		}

		_, err := fmt.Fprintf(bw, "%s|%s|%d\n", dir.Path, strconv.FormatFloat(dir.Rank, 'f', -1, 64), dir.LastAccessed)
		if err != nil {
			return result, fmt.Errorf("failed to write %s: %w", dir.Path, err)
		}
		result.DirectoriesExported++
	}

	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("failed to flush output: %w", err)
	}
	return result, nil
}
