// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys select and configure the video surface.
const (
	Player                = "player.default"
	PlayerStartMuted      = "player.start_muted"
	PlayerLoop            = "player.loop"
	PlayerLaunchOnMount   = "player.launch_on_mount"
	PlayerSynthesizeReady = "player.synthesize_ready"
)

// Transport Controls - these keys govern the controls overlay and its affordances.
const (
	ControlsEnabled         = "controls.enabled"
	ControlsAutoHideSeconds = "controls.auto_hide_seconds"
	ControlsShowOnPause     = "controls.show_on_pause"
	ControlsCloseButton     = "controls.close_button"
	ControlsStopButton      = "controls.stop_button"
	ControlsResizeButton    = "controls.resize_button"
)

// Terminal User Interface (TUI) - these keys define the hosting screen's presentation.
const (
	TUISmall             = "tui.small"
	TUIFrameRate         = "tui.frame_rate"
	TUIShowThumbnailPath = "tui.show_thumbnail_path"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
