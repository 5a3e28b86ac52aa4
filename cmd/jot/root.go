package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot"
	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/pkg/core"
)

var (
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A local-first personal note-taking CLI",
	Long: `Jot keeps short text notes with tags, pinning, search and sorting.
Everything lives in a local data directory; there is no server and no account.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load(nil)

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// openWorkspace wires a workspace on the configured data directory.
func openWorkspace() (*core.Workspace, error) {
	return jot.Open(cfg.DataDir,
		jot.WithFormat(cfg.Format),
		jot.WithLogger(slog.Default()),
	)
}

// resolveTag finds a tag by ID or (case-insensitive) name.
func resolveTag(ws *core.Workspace, idOrName string) (core.Tag, bool) {
	if t, ok := ws.Tags.Get(idOrName); ok {
		return t, true
	}
	for _, t := range ws.Tags.Tags() {
		if strings.EqualFold(t.Name, idOrName) {
			return t, true
		}
	}
	return core.Tag{}, false
}

// resolveTagIDs maps --tag flag values to tag IDs, failing on unknown names.
func resolveTagIDs(ws *core.Workspace, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		t, ok := resolveTag(ws, name)
		if !ok {
			return nil, fmt.Errorf("unknown tag %q (create it with 'jot tag add')", name)
		}
		ids = append(ids, t.ID)
	}
	return ids, nil
}
