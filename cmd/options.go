package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/curtain-cli/curtain/filesystem"
	"github.com/curtain-cli/curtain/key"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/tui"
	"github.com/curtain-cli/curtain/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// thumbnailExtensions are tried, in order, next to a local video without --thumbnail.
var thumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var errNoVideo = errors.New("no such video")

// playFlags are the play options that have no config key.
type playFlags struct {
	thumbnail  string
	title      string
	noControls bool
	noLaunch   bool
}

// playOptions resolves the video and merges flags over the configuration.
func playOptions(source string, flags playFlags) (*tui.Options, error) {
	source, err := resolveSource(source)
	if err != nil {
		return nil, err
	}

	thumbnail := flags.thumbnail
	if thumbnail == "" {
		thumbnail = findThumbnail(source)
	} else if !isRemote(thumbnail) {
		thumbnail = lo.Must(filepath.Abs(thumbnail))
	}

	title := flags.title
	if title == "" {
		title = util.FileStem(source)
	}

	return &tui.Options{
		Session: session.Options{
			VideoSource:         source,
			ThumbnailSource:     thumbnail,
			ControlsEnabled:     viper.GetBool(key.ControlsEnabled) && !flags.noControls,
			ShowControlsOnPause: viper.GetBool(key.ControlsShowOnPause),
			AutoHideInterval:    time.Duration(viper.GetInt(key.ControlsAutoHideSeconds)) * time.Second,
			Loop:                viper.GetBool(key.PlayerLoop),
			StartMuted:          viper.GetBool(key.PlayerStartMuted),
			LaunchOnMount:       viper.GetBool(key.PlayerLaunchOnMount) && !flags.noLaunch,
			SmallPresentation:   viper.GetBool(key.TUISmall),
			CloseButtonEnabled:  viper.GetBool(key.ControlsCloseButton),
			StopButtonEnabled:   viper.GetBool(key.ControlsStopButton),
			ResizeButtonEnabled: viper.GetBool(key.ControlsResizeButton),
		},
		Player:            viper.GetString(key.Player),
		SynthesizeReady:   viper.GetBool(key.PlayerSynthesizeReady),
		Title:             title,
		FrameRate:         viper.GetInt(key.TUIFrameRate),
		ShowThumbnailPath: viper.GetBool(key.TUIShowThumbnailPath),
	}, nil
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// resolveSource makes local videos absolute and checks they exist. URLs pass through.
func resolveSource(source string) (string, error) {
	if isRemote(source) {
		return source, nil
	}

	source = strings.TrimPrefix(source, "file://")
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", err
	}

	exists, err := filesystem.API().Exists(abs)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", errNoVideo, source)
	}

	return abs, nil
}

// findThumbnail looks for an image sharing the video's stem.
func findThumbnail(source string) string {
	if isRemote(source) {
		return ""
	}

	base := filepath.Join(filepath.Dir(source), util.FileStem(source))
	for _, ext := range thumbnailExtensions {
		candidate := base + ext
		if exists, err := filesystem.API().Exists(candidate); err == nil && exists {
			return candidate
		}
	}

	return ""
}
