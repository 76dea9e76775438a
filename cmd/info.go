// Package cmd implements the command-line interface for vgrab.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/provider"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/util"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolP("json", "j", false, "Format the catalog as a JSON object")
	infoCmd.Flags().Bool("schema", false, "Generate the JSON Schema for catalog objects")
	infoCmd.SetOut(os.Stdout)
}

// infoCmd extracts and displays the rendition catalog without downloading.
var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "Display the rendition catalog for a media URL",
	Args:  cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("schema")) && len(args) == 0 {
			handleErr(fmt.Errorf("url is required unless --schema is set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true

			schema := reflector.Reflect(&media.Info{})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
			return
		}

		p, ok := provider.Get("ytdlp")
		if !ok {
			handleErr(fmt.Errorf("no extractor registered"))
		}

		extractor := p.New()
		handleErr(extractor.Require())

		e := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), args[0]))
		info, err := extractor.Info(cmd.Context(), args[0])
		e()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		printInfo(cmd, info)
	},
}

func printInfo(cmd *cobra.Command, info *media.Info) {
	label := style.New().Bold(true).Foreground(color.Purple).Render

	cmd.Printf("%s %s\n", label("Title"), info.Title)
	cmd.Printf("%s %s\n", label("ID"), info.ID)

	if info.Duration > 0 {
		cmd.Printf("%s %s\n", label("Duration"), util.FormatDuration(info.Duration))
	}
	if channel, ok := info.Channel.Get(); ok {
		cmd.Printf("%s %s\n", label("Channel"), channel)
	}
	if date, ok := info.UploadDate.Get(); ok {
		cmd.Printf("%s %s\n", label("Uploaded"), date.Format("2006-01-02"))
	}
	if views, ok := info.ViewCount.Get(); ok {
		cmd.Printf("%s %s\n", label("Views"), util.Quantify(int(views), "view", "views"))
	}
	if description, ok := info.Description.Get(); ok && description != "" {
		width, _, err := util.TerminalSize()
		if err != nil {
			width = 80
		}
		cmd.Printf("\n%s\n", style.Faint(wordwrap.String(description, util.Min(width, 80))))
	}

	cmd.Println()
	cmd.Println(label("Streams"))
	for _, stream := range info.Streams {
		marker := icon.Get(icon.Video)
		if stream.AudioOnly {
			marker = icon.Get(icon.Audio)
		}
		cmd.Printf("  %s %-10s %-6s %s\n", marker, stream.Quality, stream.Format, style.Faint(stream.FormattedSize()))
	}
}
