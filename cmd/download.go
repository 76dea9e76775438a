// Package cmd implements the command-line interface for vgrab.
package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/color"
	"github.com/vgrab-cli/vgrab/downloader"
	"github.com/vgrab-cli/vgrab/encoder"
	"github.com/vgrab-cli/vgrab/errs"
	"github.com/vgrab-cli/vgrab/history"
	"github.com/vgrab-cli/vgrab/icon"
	"github.com/vgrab-cli/vgrab/key"
	"github.com/vgrab-cli/vgrab/media"
	"github.com/vgrab-cli/vgrab/progress"
	"github.com/vgrab-cli/vgrab/provider"
	"github.com/vgrab-cli/vgrab/style"
	"github.com/vgrab-cli/vgrab/tui"
	"github.com/vgrab-cli/vgrab/util"
)

// runDownload resolves the configured extractor and performs one download.
func runDownload(cmd *cobra.Command, url string) error {
	p, ok := provider.Get("ytdlp")
	if !ok {
		return errors.New("no extractor registered")
	}

	extractor := p.New()
	if err := extractor.Require(); err != nil {
		printMissingDependencyError(p.Name)
		return err
	}

	options := downloader.DefaultOptions()
	options.AudioOnly = lo.Must(cmd.Flags().GetBool("audio-only"))
	options.Confirm = confirmOverwrite

	if lo.Must(cmd.Flags().GetBool("exact")) {
		options.Filter = media.ParseFilter(viper.GetString(key.DownloadQuality), true)
	}

	if lo.Must(cmd.Flags().GetBool("quiet")) {
		options.Reporter = progress.Discard()
	}

	dl := downloader.New(options, extractor, encoder.NewFFmpeg())

	var (
		result *downloader.Result
		err    error
	)

	if lo.Must(cmd.Flags().GetBool("interactive")) {
		result, err = downloadInteractive(cmd, dl, extractor, &options, url)
	} else {
		result, err = dl.Download(cmd.Context(), url)
	}

	if err != nil {
		suggestQuality(err)
		return err
	}

	fmt.Printf(
		"%s downloaded %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Bold(result.Path),
		style.Faint(fmt.Sprintf("(%s)", util.FormatBytes(uint64(result.Size)))),
	)

	if viper.GetBool(key.HistorySaveOnDownload) {
		if err := history.Save(result); err != nil {
			fmt.Printf("%s could not save history: %s\n", icon.Get(icon.Fail), err)
		}
	}

	return nil
}

// downloadInteractive extracts the catalog first, lets the user pick the
// rendition, then transfers that specific stream.
func downloadInteractive(cmd *cobra.Command, dl *downloader.Downloader, extractor provider.Extractor, options *downloader.Options, url string) (*downloader.Result, error) {
	e := util.PrintErasable(fmt.Sprintf("%s Extracting %s...", icon.Get(icon.Progress), url))
	info, err := extractor.Info(cmd.Context(), url)
	e()
	if err != nil {
		return nil, err
	}

	stream, err := tui.Run(&tui.Options{
		Info:      info,
		AudioOnly: options.AudioOnly,
	})
	if err != nil {
		return nil, err
	}

	return dl.DownloadStream(cmd.Context(), info, stream)
}

// confirmOverwrite asks the user before replacing an existing file.
func confirmOverwrite(path string) bool {
	var overwrite bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		Default: false,
	}

	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false
	}

	return overwrite
}

// suggestQuality prints a closest-match hint for unavailable qualities.
func suggestQuality(err error) {
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.KindQualityNotAvailable {
		return
	}

	if closest, ok := media.ClosestQuality(e.Requested, e.Available).Get(); ok {
		fmt.Printf(
			"%s did you mean %s?\n",
			icon.Get(icon.Question),
			style.Fg(color.Yellow)(closest),
		)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install yt-dlp"
	case "linux":
		installCmd = "pip install yt-dlp"
	case "windows":
		installCmd = "scoop install yt-dlp"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
