// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Download Behavior - these keys govern where and how media files are written to disk.
const (
	DownloadPath        = "download.path"
	DownloadTemplate    = "download.template"
	DownloadRetries     = "download.retries"
	DownloadQuality     = "download.quality"
	DownloadOverwrite   = "download.overwrite"
	DownloadCreateDirs  = "download.create_dirs"
	DownloadFingerprint = "download.fingerprint"
)

// Format Selection - these keys define the preferred audio encoding.
const (
	FormatAudio = "format.audio"
)

// History Tracking - these keys configure the persistence of completed download records.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Extractor Integration - these keys manage the external metadata extraction binary.
const (
	ExtractorPath = "extractor.path"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive stream picker's styling and logic.
const (
	TUIItemSpacing  = "tui.item_spacing"
	TUIShowURLs     = "tui.show_urls"
	TUIPromptString = "tui.prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
