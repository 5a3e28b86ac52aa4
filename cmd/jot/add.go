package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addTitle   string
	addContent string
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long:  `Create a note with a title, content and optional tags. At least one of title or content must be non-empty.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if strings.TrimSpace(addTitle) == "" && strings.TrimSpace(addContent) == "" {
			fmt.Fprintln(os.Stderr, "Error: a note needs a title or content")
			cmd.Usage()
			os.Exit(1)
		}

		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		tagIDs, err := resolveTagIDs(ws, addTags)
		if err != nil {
			fatal("Failed to resolve tags", err)
		}

		note := ws.Notes.Add(context.Background(), addTitle, addContent, tagIDs)
		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag name or ID (repeatable)")
}
