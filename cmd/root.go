// Package cmd implements the command-line interface for vgrab.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/constant"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/log"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/util"
	"github.com/vgrab-cli/vgrab/version"
	"github.com/vgrab-cli/vgrab/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record completed downloads in the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringP("quality", "q", "", "Rendition to pick (best, worst, 1080p, 720, 4k...)")
	lo.Must0(viper.BindPFlag(key.DownloadQuality, rootCmd.Flags().Lookup("quality")))

	rootCmd.Flags().StringP("output", "o", "", "Directory to write the downloaded file to")
	lo.Must0(viper.BindPFlag(key.DownloadPath, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().StringP("template", "t", "", "Filename template ({title}, {id}, {date}, {duration})")
	lo.Must0(viper.BindPFlag(key.DownloadTemplate, rootCmd.Flags().Lookup("template")))

	rootCmd.Flags().IntP("retries", "r", 0, "Maximum transfer attempts before giving up")
	lo.Must0(viper.BindPFlag(key.DownloadRetries, rootCmd.Flags().Lookup("retries")))

	rootCmd.Flags().StringP("format", "f", "", "Target format for audio-only downloads (mp3, m4a, flac...)")
	lo.Must0(viper.BindPFlag(key.FormatAudio, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().BoolP("overwrite", "w", false, "Replace an existing destination file without asking")
	lo.Must0(viper.BindPFlag(key.DownloadOverwrite, rootCmd.Flags().Lookup("overwrite")))

	rootCmd.Flags().BoolP("audio-only", "a", false, "Download the best audio rendition instead of video")
	rootCmd.Flags().BoolP("exact", "e", false, "Require the exact quality instead of the closest one below it")
	rootCmd.Flags().BoolP("interactive", "i", false, "Pick the stream from an interactive list")
	rootCmd.Flags().Bool("quiet", false, "Suppress the progress display")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Vgrab + " [url]",
	Short: "A command-line downloader for media streams",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A resilient command-line downloader for media streams"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		handleErr(runDownload(cmd, args[0]))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
