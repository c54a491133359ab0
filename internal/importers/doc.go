// Package importers reads directory history exported by other tools into a
// dirstore.Store.
//
// # z databases
//
// A z database is a text file with one directory per line:
//
//	/home/me/projects|42.5|1718000000
//
// Fields are path, rank and last access epoch. The line is split from the
// right, so only the last two '|' are separators and the path may contain '|'.
//
// The rank must be a finite base-10 number and the epoch a base-10 integer.
// NaN, infinities, out of range values and hexadecimal floats such as 0x1p4
// are rejected as invalid ranks, so summed ranks stay finite.
//
// Paths are canonicalized through a utils.PathResolver before they are used
// as keys. When a path is already present its rank is increased by the
// imported rank and its last access becomes the later of the two epochs.
//
// A malformed line never aborts the import: ParseAndMergeLine returns an
// *EntryError, and Import reports it with its line number and moves on.
//
// # Example Usage
//
//	store, err := dirstore.Open(directories.NewRepository(db.DB))
//	importer := importers.NewZImporter(utils.NewCanonicalResolver())
//	result, err := importer.Run(store, "/home/me/.z", merge)
//	if errors.Is(err, importers.ErrConflictingState) {
//		// ask the user for -merge
//	}
//	err = store.Save()
package importers
