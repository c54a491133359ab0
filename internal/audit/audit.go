// Package audit keeps a JSON trail of import runs on disk.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/jumpdb/internal/importers"
)

// ImportReport is the audit record of one import run.
type ImportReport struct {
	ID         string                 `json:"id"`
	SourcePath string                 `json:"source_path"`
	Merge      bool                   `json:"merge"`
	DryRun     bool                   `json:"dry_run"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	Result     importers.ImportResult `json:"result"`
	Errors     []string               `json:"errors,omitempty"`
}

// NewImportReport builds a report with a fresh ID.
func NewImportReport(sourcePath string, merge, dryRun bool, startedAt time.Time, result importers.ImportResult) ImportReport {
	return ImportReport{
		ID:         uuid.New().String(),
		SourcePath: sourcePath,
		Merge:      merge,
		DryRun:     dryRun,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Result:     result,
		Errors:     result.ErrorMessages(),
	}
}

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// SaveReport writes report to <AuditDir>/<report.ID>.json.
func (a *Auditor) SaveReport(report ImportReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	return a.save(report.ID, report)
}

// SaveJSON saves data as JSON under a random UUID filename.
func (a *Auditor) SaveJSON(data any) (string, error) {
	return a.save(uuid.New().String(), data)
}

func (a *Auditor) save(id string, data any) (string, error) {
	if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audit directory: %w", err)
	}

	filename := id + ".json"

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(filepath.Join(a.AuditDir, filename), jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	return filename, nil
}
