package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot/pkg/core"
)

var (
	listSearch string
	listTag    string
	listSort   string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes (the filtered, sorted view)",
	Long: `List notes after applying the tag filter, the case-insensitive search
term and the sort option. Pinned notes always come first.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace()
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		if listSort != "" {
			option, err := core.ParseSortOption(listSort)
			if err != nil {
				fatal("Invalid --sort", err)
			}
			ws.Notes.SetSortOption(option)
		}
		if listTag != "" {
			t, ok := resolveTag(ws, listTag)
			if !ok {
				fatal("Failed to resolve tag", fmt.Errorf("unknown tag %q", listTag))
			}
			ws.Notes.SetTagFilter(t.ID)
		}
		ws.Notes.SetSearchTerm(listSearch)

		view := ws.Notes.View()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(view); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range view {
			pin := " "
			if n.IsPinned {
				pin = "*"
			}
			line := fmt.Sprintf("%s %s  %s", pin, n.ID, n.Title)
			if names := tagNames(ws, n.Tags); len(names) > 0 {
				line += "  [" + strings.Join(names, ", ") + "]"
			}
			fmt.Println(line)
		}
	},
}

func tagNames(ws *core.Workspace, ids []string) []string {
	tags := ws.Tags.GetByIDs(ids)
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by case-insensitive substring of title or content")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag name or ID")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort option: createdAt_desc, createdAt_asc, title_asc, title_desc")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
