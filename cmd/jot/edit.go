package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
	editTags    []string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Edit a note by its ID. Only the provided flags change; --tag replaces
the whole tag set. The edited note still needs a title or content.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		note, ok := ws.Notes.Get(args[0])
		if !ok {
			fatal("Failed to edit note", fmt.Errorf("no note with id %s", args[0]))
		}

		if cmd.Flags().Changed("title") {
			note.Title = editTitle
		}
		if cmd.Flags().Changed("content") {
			note.Content = editContent
		}
		if cmd.Flags().Changed("tag") {
			ids, err := resolveTagIDs(ws, editTags)
			if err != nil {
				fatal("Failed to resolve tags", err)
			}
			note.Tags = ids
		}

		if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Content) == "" {
			fmt.Fprintln(os.Stderr, "Error: a note needs a title or content")
			os.Exit(1)
		}

		ws.Notes.Update(context.Background(), note)
		fmt.Printf("Note updated: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringArrayVar(&editTags, "tag", nil, "Tag name or ID (repeatable, replaces the tag set)")
}
