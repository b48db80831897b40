package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/emoji-strip/internal/config"
	"github.com/haytac/emoji-strip/internal/logging"
	"github.com/haytac/emoji-strip/internal/pipeline"
	"github.com/haytac/emoji-strip/internal/resolver"
)

// version is set via ldflags at release time.
var version = "dev"

var (
	cfgFile string

	flagPath       string
	flagRecursive  bool
	flagOutput     string
	flagVerbose    bool
	flagDryRun     bool
	flagBackup     bool
	flagShortcodes bool

	// RunCfg is populated in PersistentPreRunE and read by RunE.
	RunCfg *config.RunConfig
)

var RootCmd = &cobra.Command{
	Use:   "emoji-strip",
	Short: "Remove emoji from markdown files.",
	Long: `emoji-strip removes emoji glyphs and related Unicode symbol sequences
from markdown text. It processes a single file (to stdout or --output) or,
with --recursive, rewrites every markdown file under a directory in place.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		cfg.Path = flagPath
		cfg.Recursive = flagRecursive
		cfg.Output = flagOutput
		cfg.Verbose = flagVerbose
		cfg.DryRun = flagDryRun
		cfg.Backup = flagBackup
		cfg.Shortcodes = flagShortcodes
		if cfg.Verbose {
			cfg.Log.Level = "debug"
		}

		logging.Setup(cfg.Log)

		if err := cfg.Validate(); err != nil {
			return err
		}
		RunCfg = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := resolver.Resolve(RunCfg.Path, RunCfg.Recursive, RunCfg.Extensions)
		if err != nil {
			return err
		}
		_, err = pipeline.New(RunCfg, cmd.OutOrStdout()).Run(targets)
		return err
	},
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.emoji-strip.yaml, $HOME/.emoji-strip.yaml)")

	RootCmd.Flags().StringVarP(&flagPath, "path", "p", "", "markdown file or directory to process")
	RootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "process all markdown files under the directory (rewrites files in place)")
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (single-file mode only, ignored with --recursive)")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "per-file processing reports")
	RootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "preview changes without writing anything")
	RootCmd.Flags().BoolVarP(&flagBackup, "backup", "b", false, "write <file>.bak before overwriting (only with --recursive)")
	RootCmd.Flags().BoolVar(&flagShortcodes, "shortcodes", false, "also remove :alias: emoji shortcodes")

	_ = RootCmd.MarkFlagRequired("path")
}
