package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pbaille/mindvault/internal/domain"
	"github.com/pbaille/mindvault/internal/fetcher"
	"github.com/pbaille/mindvault/internal/tui"
)

// maxCapturedRunes bounds the text kept from a fetched page
const maxCapturedRunes = 500

func addCmd(a *app) *cobra.Command {
	var tags, pageURL string

	cmd := &cobra.Command{
		Use:   "add [text...|url]",
		Short: "Add a new note; a lone URL captures the page text",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && pageURL == "" {
				return fmt.Errorf("nothing to add: pass note text or --url")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageURL == "" && len(args) == 1 && fetcher.IsURL(args[0]) {
				pageURL, args = args[0], nil
			}
			content := strings.Join(args, " ")

			if pageURL != "" {
				page, err := fetcher.New(nil).Fetch(cmd.Context(), pageURL)
				if err != nil {
					return err
				}
				captured := page.NoteContent(maxCapturedRunes)
				if content != "" {
					content += " | " + captured
				} else {
					content = captured
				}
			}

			note, err := a.vault.Add(cmd.Context(), content, tags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Note saved: #%d\n", note.ID)
			fmt.Fprintf(out, "Tags: %s | Sentiment: %s\n", note.Tags, note.Sentiment)
			return nil
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags (skips automatic tagging)")
	cmd.Flags().StringVar(&pageURL, "url", "", "capture the readable text of a web page")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	var limit int
	var all, asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.List.Limit
			}

			var notes []domain.Note
			var err error
			if all {
				notes, err = a.vault.All(cmd.Context())
			} else {
				notes, err = a.vault.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			return printNotes(cmd.OutOrStdout(), notes, asJSON, "No notes yet. Use 'mindvault add' to create one.")
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of notes to show")
	cmd.Flags().BoolVar(&all, "all", false, "show every note")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func searchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search notes by content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.vault.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes, asJSON, "No matching notes found.")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func tagCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tag [tag]",
		Short: "Search notes by tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.vault.SearchTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes, asJSON, "No notes with that tag.")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show note counts per sentiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.vault.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Notes:    %d\n", stats.Total)
			for _, s := range []domain.Sentiment{domain.Positive, domain.Neutral, domain.Negative} {
				fmt.Fprintf(out, "%-9s %d\n", s.String()+":", stats.BySentiment[s])
			}
			return nil
		},
	}
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and add notes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(cmd.Context(), a.vault, a.cfg.List.Limit)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

func printNotes(out io.Writer, notes []domain.Note, asJSON bool, empty string) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Fprintln(out, empty)
		return nil
	}

	for _, n := range notes {
		fmt.Fprintf(out, "[%d] %s  %s | %s | %s\n",
			n.ID, n.DisplayTime(), n.Preview(80), n.Tags, n.Sentiment)
	}
	return nil
}
