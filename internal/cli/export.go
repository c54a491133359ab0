package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/jumpdb/internal/config"
	"github.com/mrlokans/jumpdb/internal/database/directories"
	"github.com/mrlokans/jumpdb/internal/exporters"
)

// ExportCommand writes the jumpdb database in the z text format
type ExportCommand struct {
	DatabasePath string
	OutputPath   string
	Verbose      bool

	Stdout io.Writer
	Stderr io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{
		DatabasePath: cfg.Database.Path,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the jumpdb database")
	fs.StringVar(&cmd.OutputPath, "output", "", "Write to this file instead of stdout")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(cmd.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(cmd.Stderr, "Write all directories as z database lines (path|rank|epoch).\n\n")
		fmt.Fprintf(cmd.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	configureLogging(cmd.Verbose)

	dbPath, err := absPath(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	dirs, err := directories.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to load directories: %w", err)
	}

	out := cmd.Stdout
	if cmd.OutputPath != "" {
		outputPath, err := absPath(cmd.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for output: %w", err)
		}
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	result, err := exporters.NewZExporter().Export(out, dirs)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if cmd.OutputPath != "" || cmd.Verbose {
		fmt.Fprintf(cmd.Stderr, "Exported %d directories\n", result.DirectoriesExported)
	}
	if result.DirectoriesSkipped > 0 {
		fmt.Fprintf(cmd.Stderr, "%d directories could not be written in z format\n", result.DirectoriesSkipped)
	}
	return nil
}
