package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/jumpdb/internal/audit"
	"github.com/mrlokans/jumpdb/internal/config"
	"github.com/mrlokans/jumpdb/internal/database"
	"github.com/mrlokans/jumpdb/internal/database/directories"
	"github.com/mrlokans/jumpdb/internal/database/imports"
	"github.com/mrlokans/jumpdb/internal/dirstore"
	"github.com/mrlokans/jumpdb/internal/entities"
	"github.com/mrlokans/jumpdb/internal/importers"
	"github.com/mrlokans/jumpdb/internal/utils"
)

// ImportCommand imports a z database into the jumpdb database
type ImportCommand struct {
	SourcePath   string
	DatabasePath string
	AuditDir     string
	ExcludeDirs  []string
	Merge        bool
	DryRun       bool
	Verbose      bool

	Stdout io.Writer
	Stderr io.Writer
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{
		SourcePath:   cfg.Import.ZDataPath,
		DatabasePath: cfg.Database.Path,
		AuditDir:     cfg.Audit.Dir,
		ExcludeDirs:  cfg.Import.ExcludeDirs,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)

	fs.StringVar(&cmd.SourcePath, "file", cmd.SourcePath, "Path to the z database (or pass it as the first argument)")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the jumpdb database")
	fs.BoolVar(&cmd.Merge, "merge", false, "Merge entries into an existing, non-empty database")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and merge in memory without saving")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging and print an import summary")

	fs.Usage = func() {
		fmt.Fprintf(cmd.Stderr, "Usage: %s import [options] [z-database]\n\n", os.Args[0])
		fmt.Fprintf(cmd.Stderr, "Import directories from a z database (%s by default).\n\n", config.DefaultZDataPath)
		fmt.Fprintf(cmd.Stderr, "Ranks of directories already present are added together and the most\n")
		fmt.Fprintf(cmd.Stderr, "recent access time is kept. Lines that cannot be parsed are reported and skipped.\n\n")
		fmt.Fprintf(cmd.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(cmd.Stderr, "\nExamples:\n")
		fmt.Fprintf(cmd.Stderr, "  # Import into an empty database:\n")
		fmt.Fprintf(cmd.Stderr, "  %s import ~/.z\n\n", os.Args[0])
		fmt.Fprintf(cmd.Stderr, "  # Merge into a database that already has history:\n")
		fmt.Fprintf(cmd.Stderr, "  %s import -merge ~/.z\n", os.Args[0])
	}

	// flag stops at the first positional argument; keep parsing after it so
	// options may follow the path.
	var paths []string
	for rest := args; ; {
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			break
		}
		paths = append(paths, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	switch len(paths) {
	case 0:
	case 1:
		cmd.SourcePath = paths[0]
	default:
		return fmt.Errorf("expected at most one z database path, got %d", len(paths))
	}

	if cmd.SourcePath == "" {
		return fmt.Errorf("z database path required")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	configureLogging(cmd.Verbose)

	sourcePath, err := utils.ExpandHome(cmd.SourcePath)
	if err != nil {
		return err
	}

	dbPath, err := absPath(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	excluder, err := importers.NewExcluder(cmd.ExcludeDirs)
	if err != nil {
		return err
	}

	db, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := dirstore.Open(directories.NewRepository(db.DB))
	if err != nil {
		return err
	}

	// A refused import must not leave a session row behind.
	if !store.IsEmpty() && !cmd.Merge {
		return importers.ErrConflictingState
	}

	importer := importers.NewZImporter(utils.NewCanonicalResolver())
	importer.Excluder = excluder
	importer.Out = cmd.Stdout
	importer.ErrOut = cmd.Stderr

	startedAt := time.Now()

	if cmd.DryRun {
		result, err := importer.Run(store, sourcePath, cmd.Merge)
		if err != nil {
			return err
		}
		cmd.printSummary(result, excluder)
		fmt.Fprintln(cmd.Stdout, "Dry run complete. Use without -dry-run to save.")
		return cmd.saveReport(sourcePath, startedAt, result)
	}

	return cmd.runAndSave(db, importer, store, sourcePath, startedAt)
}

func (cmd *ImportCommand) runAndSave(db *database.Database, importer *importers.ZImporter, store *dirstore.Store, sourcePath string, startedAt time.Time) error {
	sessions := imports.NewRepository(db.DB)
	session, err := sessions.Start(sourcePath, cmd.Merge)
	if err != nil {
		return fmt.Errorf("failed to record import session: %w", err)
	}

	result, err := importer.Run(store, sourcePath, cmd.Merge)
	if err == nil {
		err = store.Save()
	}
	if err != nil {
		if failErr := sessions.Fail(session, err); failErr != nil {
			fmt.Fprintf(cmd.Stderr, "Warning: failed to record import failure: %v\n", failErr)
		}
		return err
	}

	fillSession(session, result)
	if err := sessions.Complete(session, result.ErrorMessages()); err != nil {
		fmt.Fprintf(cmd.Stderr, "Warning: failed to record import session: %v\n", err)
	}

	cmd.printSummary(result, importer.Excluder)
	return cmd.saveReport(sourcePath, startedAt, result)
}

func fillSession(session *entities.ImportSession, result importers.ImportResult) {
	session.LinesTotal = result.LinesTotal
	session.LinesImported = result.LinesImported
	session.LinesSkipped = result.LinesSkipped
	session.DirectoriesCreated = result.DirectoriesCreated
	session.DirectoriesUpdated = result.DirectoriesUpdated
}

func (cmd *ImportCommand) printSummary(result importers.ImportResult, excluder *importers.Excluder) {
	if !cmd.Verbose {
		return
	}
	fmt.Fprintln(cmd.Stdout, "\n=== Import Summary ===")
	fmt.Fprintf(cmd.Stdout, "Lines read: %d\n", result.LinesTotal)
	fmt.Fprintf(cmd.Stdout, "Lines imported: %d\n", result.LinesImported)
	fmt.Fprintf(cmd.Stdout, "Lines skipped: %d\n", result.LinesSkipped)
	fmt.Fprintf(cmd.Stdout, "Directories created: %d\n", result.DirectoriesCreated)
	fmt.Fprintf(cmd.Stdout, "Directories updated: %d\n", result.DirectoriesUpdated)
	fmt.Fprintf(cmd.Stdout, "Exclude patterns: %d\n", excluder.Len())
}

func (cmd *ImportCommand) saveReport(sourcePath string, startedAt time.Time, result importers.ImportResult) error {
	if cmd.AuditDir == "" {
		return nil
	}

	auditDir, err := absPath(cmd.AuditDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for audit dir: %w", err)
	}

	report := audit.NewImportReport(sourcePath, cmd.Merge, cmd.DryRun, startedAt, result)
	filename, err := audit.NewAuditor(auditDir).SaveReport(report)
	if err != nil {
		// Reports are best effort.
		fmt.Fprintf(cmd.Stderr, "Warning: failed to save import report: %v\n", err)
		return nil
	}
	if cmd.Verbose {
		fmt.Fprintf(cmd.Stdout, "Import report: %s\n", filename)
	}
	return nil
}
