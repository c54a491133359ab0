package importers

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/jumpdb/internal/dirstore"
	"github.com/mrlokans/jumpdb/internal/entities"
	"github.com/mrlokans/jumpdb/internal/utils"
)

// ZEntry is one parsed line of a z database: "<path>|<rank>|<epoch>".
// Path is the raw text as written in the file.
type ZEntry struct {
	Path  string
	Rank  float64
	Epoch int64
}

// LineOutcome tells how a successfully imported line changed the store.
type LineOutcome int

const (
	LineCreated LineOutcome = iota + 1
	LineUpdated
)

// ImportResult summarizes one import run.
type ImportResult struct {
	LinesTotal         int         `json:"lines_total"`
	LinesImported      int         `json:"lines_imported"`
	LinesSkipped       int         `json:"lines_skipped"`
	DirectoriesCreated int         `json:"directories_created"`
	DirectoriesUpdated int         `json:"directories_updated"`
	Errors             []LineError `json:"-"`
}

// ErrorMessages returns the per-line errors as text.
func (r ImportResult) ErrorMessages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Error())
	}
	return messages
}

// ZImporter imports a z database (https://github.com/rupa/z) into a
// directory store. Ranks of duplicate paths are summed and the most recent
// access time wins.
type ZImporter struct {
	Resolver utils.PathResolver
	Excluder *Excluder // optional

	// Out receives the completion notice, ErrOut the per-line diagnostics.
	Out    io.Writer
	ErrOut io.Writer
}

func NewZImporter(resolver utils.PathResolver) *ZImporter {
	return &ZImporter{
		Resolver: resolver,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
	}
}

// Run imports the z database at sourcePath into store.
//
// A non-empty store is only touched when merge is set. The source file is read
// as a whole; a line that fails to parse is reported on ErrOut and skipped.
// On success store.Modified is set even if no line was imported.
func (imp *ZImporter) Run(store *dirstore.Store, sourcePath string, merge bool) (ImportResult, error) {
	if !store.IsEmpty() && !merge {
		return ImportResult{}, ErrConflictingState
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return ImportResult{}, &SourceError{Path: sourcePath, Err: err}
	}
	if !utf8.Valid(data) {
		return ImportResult{}, &SourceError{Path: sourcePath, Err: ErrInvalidEncoding}
	}

	result := imp.Import(store, string(data))

	store.Modified = true
	fmt.Fprintln(imp.Out, "Completed import.")

	return result, nil
}

// Import merges every line of content into store, in order.
func (imp *ZImporter) Import(store *dirstore.Store, content string) ImportResult {
	var result ImportResult

	for idx, line := range splitLines(content) {
		result.LinesTotal++

		outcome, err := imp.ParseAndMergeLine(store, line)
		if err != nil {
			lineErr := LineError{Line: idx + 1, Err: err}
			result.Errors = append(result.Errors, lineErr)
			result.LinesSkipped++
			fmt.Fprintf(imp.ErrOut, "Error on line %d: %v\n", lineErr.Line, err)
			continue
		}

		result.LinesImported++
		switch outcome {
		case LineCreated:
			result.DirectoriesCreated++
		case LineUpdated:
			result.DirectoriesUpdated++
		}
	}

	return result
}

// ParseAndMergeLine parses one z line and merges it into store. It never
// writes diagnostics; the error is returned to the caller.
func (imp *ZImporter) ParseAndMergeLine(store *dirstore.Store, line string) (LineOutcome, error) {
	entry, err := ParseZLine(line)
	if err != nil {
		return 0, err
	}

	path, err := imp.Resolver.Resolve(entry.Path)
	if err != nil {
		return 0, newEntryError(ErrUnresolvablePath, entry.Path, err)
	}

	if imp.Excluder.Match(path) {
		return 0, newEntryError(ErrExcludedPath, path, nil)
	}

	if dir := store.Find(path); dir != nil {
		dir.Rank += entry.Rank
		dir.LastAccessed = max(dir.LastAccessed, entry.Epoch)
		return LineUpdated, nil
	}

	store.Add(entities.Directory{
		Path:         path,
		Rank:         entry.Rank,
		LastAccessed: entry.Epoch,
	})
	return LineCreated, nil
}

// ParseZLine splits a line from the right into path, rank and epoch, so the
// path itself may contain '|'.
func ParseZLine(line string) (ZEntry, error) {
	epochSep := strings.LastIndexByte(line, '|')
	if epochSep < 0 {
		return ZEntry{}, newEntryError(ErrInvalidEntry, "", nil)
	}
	rankSep := strings.LastIndexByte(line[:epochSep], '|')
	if rankSep < 0 {
		return ZEntry{}, newEntryError(ErrInvalidEntry, "", nil)
	}

	pathStr := line[:rankSep]
	rankStr := line[rankSep+1 : epochSep]
	epochStr := line[epochSep+1:]

	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return ZEntry{}, newEntryError(ErrInvalidEpoch, epochStr, numError(err))
	}

	if isHexFloat(rankStr) {
		return ZEntry{}, newEntryError(ErrInvalidRank, rankStr, strconv.ErrSyntax)
	}
	rank, err := strconv.ParseFloat(rankStr, 64)
	if err != nil {
		return ZEntry{}, newEntryError(ErrInvalidRank, rankStr, numError(err))
	}
	if math.IsNaN(rank) || math.IsInf(rank, 0) {
		return ZEntry{}, newEntryError(ErrInvalidRank, rankStr, nil)
	}

	return ZEntry{Path: pathStr, Rank: rank, Epoch: epoch}, nil
}

// numError strips the strconv wrapper, which repeats the input text.
func numError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}

// isHexFloat reports whether s uses the "0x" form ParseFloat accepts but
// z never writes.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// splitLines splits on "\n", dropping a trailing "\r" from each line. A final
// newline does not start another line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
