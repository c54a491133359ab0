package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/jumpdb/internal/database/directories"
	"github.com/mrlokans/jumpdb/internal/dirstore"
	"github.com/mrlokans/jumpdb/internal/exporters"
	"github.com/mrlokans/jumpdb/internal/utils"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store backends
var _ dirstore.Repository = (*directories.Repository)(nil)

// =============================================================================
// Import / Export
// =============================================================================

// Path resolution used by importers.ZImporter
var _ utils.PathResolver = (*utils.CanonicalResolver)(nil)

// DirectoryExporter implementations
var _ exporters.DirectoryExporter = (*exporters.ZExporter)(nil)
