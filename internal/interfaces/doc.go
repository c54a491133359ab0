// Package interfaces documents the core abstractions of jumpdb and holds
// compile-time checks that the concrete types implement them.
//
// # Interfaces
//
//   - dirstore.Repository: load and save every directory record
//     (internal/dirstore/dirstore.go), implemented by directories.Repository
//   - utils.PathResolver: canonicalize a path read from an import source
//     (internal/utils/path.go), implemented by utils.CanonicalResolver
//   - exporters.DirectoryExporter: write directories in a foreign format
//     (internal/exporters/generic.go), implemented by exporters.ZExporter
//
// # Adding a New Import Source
//
//  1. Create internal/importers/<source>.go with a parser for one record
//     that returns an *importers.EntryError for bad input.
//  2. Merge parsed records into a *dirstore.Store the way ZImporter does:
//     Store.Find on the canonical path, add ranks, keep the later epoch.
//  3. Add a command in internal/cli and register it in main.go.
package interfaces
