package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/jumpdb/internal/cli"
	"github.com/mrlokans/jumpdb/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every type in internal/cli
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.NewConfig()
	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "import":
		cmd = cli.NewImportCommand(cfg)
	case "export":
		cmd = cli.NewExportCommand(cfg)
	case "list":
		cmd = cli.NewListCommand(cfg)

	case "version", "-v", "--version":
		fmt.Printf("jumpdb %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  import    Import directories from a z database\n")
	fmt.Fprintf(os.Stderr, "  export    Write the database in z format\n")
	fmt.Fprintf(os.Stderr, "  list      List directories ordered by frecency\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  JUMPDB_DATABASE_PATH  Database file (default %s)\n", config.DefaultDatabasePath)
	fmt.Fprintf(os.Stderr, "  JUMPDB_Z_DATA_PATH    z database to import (default $_Z_DATA or %s)\n", config.DefaultZDataPath)
	fmt.Fprintf(os.Stderr, "  JUMPDB_EXCLUDE_DIRS   Colon separated globs of directories to skip\n")
	fmt.Fprintf(os.Stderr, "  JUMPDB_AUDIT_DIR      Directory for JSON import reports\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
