package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/provider"
	"github.com/vgrab-cli/vgrab/style"
)

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.SetOut(os.Stdout)
}

// providersCmd lists the registered extractors and whether their external
// prerequisites are currently met.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the available metadata extractors",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range provider.All() {
			status := style.Fg(color.Green)(icon.Get(icon.Success))
			if err := p.New().Require(); err != nil {
				status = style.Fg(color.Red)(icon.Get(icon.Fail))
			}

			cmd.Printf("%s %s %s\n", status, style.Bold(p.Name), style.Faint(p.ID))
		}
	},
}
