package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/jumpdb/internal/config"
	"github.com/mrlokans/jumpdb/internal/database/directories"
	"github.com/mrlokans/jumpdb/internal/frecency"
)

// ListCommand prints directories ordered by frecency
type ListCommand struct {
	DatabasePath string
	Limit        int
	ShowScore    bool
	Verbose      bool

	Stdout io.Writer
	Stderr io.Writer

	now func() time.Time
}

func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{
		DatabasePath: cfg.Database.Path,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		now:          time.Now,
	}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the jumpdb database")
	fs.IntVar(&cmd.Limit, "limit", 0, "Show at most this many directories (0 = all)")
	fs.BoolVar(&cmd.ShowScore, "score", true, "Print the frecency score before each path")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(cmd.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(cmd.Stderr, "List directories, highest frecency first.\n\n")
		fmt.Fprintf(cmd.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

func (cmd *ListCommand) Run() error {
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

	now := cmd.now()
	frecency.Sort(dirs, now)
	if cmd.Limit > 0 && len(dirs) > cmd.Limit {
		dirs = dirs[:cmd.Limit]
	}

	for _, dir := range dirs {
		if cmd.ShowScore {
			fmt.Fprintf(cmd.Stdout, "%10.2f %s\n", frecency.Score(dir, now), dir.Path)
		} else {
			fmt.Fprintln(cmd.Stdout, dir.Path)
		}
	}
	return nil
}
