// Package cmd implements the command-line interface for vgrab.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/history"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)
}

// historyCmd serves as the parent command for download history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the local download history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Format the history as a JSON array")
	historyListCmd.SetOut(os.Stdout)
}

// historyListCmd displays recorded downloads, newest first.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display recorded downloads, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List()
		handleErr(err)

		printHistory(cmd, records, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	historyCmd.AddCommand(historySearchCmd)
	historySearchCmd.Flags().BoolP("json", "j", false, "Format the matches as a JSON array")
	historySearchCmd.SetOut(os.Stdout)
}

// historySearchCmd fuzzy-matches recorded downloads against a query.
var historySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recorded downloads by title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Search(args[0])
		handleErr(err)

		printHistory(cmd, records, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
	historyRemoveCmd.SetOut(os.Stdout)
}

// historyRemoveCmd drops the records whose titles match a query.
var historyRemoveCmd = &cobra.Command{
	Use:     "remove [query]",
	Short:   "Remove recorded downloads matching a title",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Search(args[0])
		handleErr(err)

		if len(records) == 0 {
			cmd.Println(style.Faint("nothing matched " + args[0]))
			return
		}

		for _, record := range records {
			handleErr(history.Remove(record))
			cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(record.Title))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}

// historyClearCmd removes the history file entirely.
var historyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all recorded downloads",
	Aliases: []string{"delete"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		fmt.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func printHistory(cmd *cobra.Command, records []*history.SavedDownload, asJson bool) {
	if asJson {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
		return
	}

	if len(records) == 0 {
		cmd.Println(style.Faint("history is empty"))
		return
	}

	for _, record := range records {
		cmd.Printf(
			"%s %s %s\n  %s\n",
			style.Fg(color.Purple)(record.DownloadedAt.Format("2006-01-02 15:04")),
			style.Bold(record.Title),
			style.Faint(util.FormatBytes(uint64(record.Size))),
			style.Faint(record.Path),
		)
	}
}
