package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Toggle a note's pin",
	Long:  `Toggle the pin flag on a note. Pinned notes sort before everything else.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		ws.Notes.TogglePin(context.Background(), args[0])

		if note, ok := ws.Notes.Get(args[0]); ok {
			state := "unpinned"
			if note.IsPinned {
				state = "pinned"
			}
			fmt.Printf("Note %s: %s\n", state, note.ID)
			return
		}
		fmt.Printf("No note with id %s (nothing changed)\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
