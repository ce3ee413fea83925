package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/loader"
)

// LoadCatalogCommand loads a TOML catalog tree into the database
type LoadCatalogCommand struct {
	File           string
	DatabasePath   string
	DatabaseDriver string
	DryRun         bool
}

// NewLoadCatalogCommand creates a new LoadCatalogCommand
func NewLoadCatalogCommand() *LoadCatalogCommand {
	return &LoadCatalogCommand{}
}

// ParseFlags parses command line flags
func (cmd *LoadCatalogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("load-catalog", flag.ExitOnError)

	fs.StringVar(&cmd.File, "file", "", "Path to the TOML catalog file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Database file for sqlite, or connection string for postgres")
	fs.StringVar(&cmd.DatabaseDriver, "driver", string(config.DriverSQLite), "Database driver: sqlite or postgres")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate and count the catalog without saving it")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s load-catalog -file <catalog.toml> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load books, chapters, sections, shlokas and audio files from a TOML file.\n")
		fmt.Fprintf(os.Stderr, "The whole file is saved in one transaction.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s load-catalog -file gita.toml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s load-catalog -file gita.toml -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.File == "" {
		fs.Usage()
		return fmt.Errorf("-file is required")
	}
	return nil
}

// Run executes the load
func (cmd *LoadCatalogCommand) Run() error {
	fmt.Println("📚 Catalog Load")
	fmt.Println("===============")

	if cmd.DryRun {
		fmt.Println("🔍 DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	cat, err := loader.ParseFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	fmt.Printf("📁 Catalog: %s (%d books)\n", cmd.File, len(cat.Books))

	db, err := database.Open(config.Database{
		Driver: config.DatabaseDriver(cmd.DatabaseDriver),
		DSN:    cmd.DatabasePath,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := loader.New(db.DB).Load(context.Background(), cat, cmd.DryRun)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if cmd.DryRun {
		fmt.Printf("\nWould create %s\n", stats)
	} else {
		fmt.Printf("\n✅ Created %s\n", stats)
	}
	return nil
}
