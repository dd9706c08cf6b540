package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/tfcraft/assetgen/internal/archive"
	"github.com/tfcraft/assetgen/internal/emit"
	"github.com/tfcraft/assetgen/internal/gen"
	"github.com/tfcraft/assetgen/internal/registry"
)

var (
	assetsRoot string
	backupDir  string
)

func init() {
	rootCmd.Flags().StringVar(&assetsRoot, "assets", "src/main/resources/assets/tfc", "Assets tree to regenerate")
	rootCmd.Flags().StringVar(&backupDir, "backups", "assets_backups", "Directory for pre-run zip snapshots")
}

var rootCmd = &cobra.Command{
	Use:   "assetgen",
	Short: "Regenerate the blockstate and item model tree for the content set",
	Long: `assetgen regenerates every blockstate and item model JSON file under the
assets tree from the built-in enumeration tables. The previous tree is
zipped into the backup directory first; any failure aborts the run.

Run it from the project root before committing. It takes no arguments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := osfs.New(".")

		runner := &gen.Runner{
			Emitter:  emit.New(fs, assetsRoot),
			Archiver: archive.New(fs, backupDir),
			Registry: registry.Default(),
			Log:      os.Stderr,
		}

		start := time.Now()
		if err := runner.Run(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "assetgen: done in %v\n", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
