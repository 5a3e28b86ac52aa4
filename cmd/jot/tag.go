package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	tagAddColor   string
	tagListCounts bool
	tagListJSON   bool
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a tag",
	Long:  `Create a tag. Names are unique, compared case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if args[0] == "" {
			fmt.Fprintln(os.Stderr, "Error: tag name must not be empty")
			os.Exit(1)
		}

		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		tag, err := ws.Tags.Add(context.Background(), args[0], tagAddColor)
		if err != nil {
			fatal("Failed to create tag", err)
		}
		fmt.Printf("Tag created: %s (%s)\n", tag.Name, tag.ID)
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	Long:  `List all tags in creation order. With --counts, show how many notes reference each tag.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		tags := ws.Tags.Tags()

		if tagListJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(tags); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		var counts map[string]int
		if tagListCounts {
			counts = ws.Notes.TagCounts()
		}

		for _, t := range tags {
			line := fmt.Sprintf("%s  %s", t.ID, t.Name)
			if t.Color != "" {
				line += "  " + t.Color
			}
			if tagListCounts {
				line += fmt.Sprintf("  (%d notes)", counts[t.ID])
			}
			fmt.Println(line)
		}
	},
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename [id|name] [new-name]",
	Short: "Rename a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if args[1] == "" {
			fmt.Fprintln(os.Stderr, "Error: tag name must not be empty")
			os.Exit(1)
		}

		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		tag, ok := resolveTag(ws, args[0])
		if !ok {
			fatal("Failed to rename tag", fmt.Errorf("unknown tag %q", args[0]))
		}

		tag.Name = args[1]
		if err := ws.Tags.Update(context.Background(), tag); err != nil {
			fatal("Failed to rename tag", err)
		}
		fmt.Printf("Tag renamed: %s\n", tag.Name)
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete [id|name]",
	Short: "Delete a tag",
	Long: `Delete a tag and remove the reference from every note that carries it.
The notes themselves stay.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		tag, ok := resolveTag(ws, args[0])
		if !ok {
			fatal("Failed to delete tag", fmt.Errorf("unknown tag %q", args[0]))
		}

		ws.DeleteTag(context.Background(), tag.ID)
		fmt.Printf("Tag deleted: %s\n", tag.Name)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd, tagListCmd, tagRenameCmd, tagDeleteCmd)

	tagAddCmd.Flags().StringVar(&tagAddColor, "color", "", "Display color hint (e.g. #ff8800)")
	tagListCmd.Flags().BoolVar(&tagListCounts, "counts", false, "Show note counts per tag")
	tagListCmd.Flags().BoolVar(&tagListJSON, "json", false, "Output in JSON format")
}
