package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Stream workspace events",
	Long: `Stream note and tag events until interrupted. The optional pattern is a
glob matched against event subjects, e.g. "notes/*" or "tags/*".
External writes to the data files show up as RELOAD events.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := ws.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to watch", err)
		}

		fmt.Fprintln(os.Stderr, "watching (ctrl-c to stop)")
		for e := range events {
			fmt.Printf("%s  %s\n", time.Unix(e.Timestamp, 0).Format(time.RFC3339), e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
