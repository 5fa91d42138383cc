// Package cmd implements the command-line interface for curtain.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/icon"
	"github.com/curtain-cli/curtain/key"
	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/player"
	"github.com/curtain-cli/curtain/style"
	"github.com/curtain-cli/curtain/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("player", "p", "", "Video surface to play with")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.Flags().Lookup("player")))

	rootCmd.Flags().BoolP("loop", "l", false, "Restart from the beginning at the end of the video")
	lo.Must0(viper.BindPFlag(key.PlayerLoop, rootCmd.Flags().Lookup("loop")))

	rootCmd.Flags().BoolP("muted", "m", false, "Start with audio muted")
	lo.Must0(viper.BindPFlag(key.PlayerStartMuted, rootCmd.Flags().Lookup("muted")))

	rootCmd.Flags().Bool("small", false, "Small presentation with only play/pause and close")
	lo.Must0(viper.BindPFlag(key.TUISmall, rootCmd.Flags().Lookup("small")))

	rootCmd.Flags().Bool("synthesize-ready", false, "Treat the loaded signal as ready for display")
	lo.Must0(viper.BindPFlag(key.PlayerSynthesizeReady, rootCmd.Flags().Lookup("synthesize-ready")))

	rootCmd.Flags().StringP("thumbnail", "t", "", "Preview image shown until the first frame")
	rootCmd.Flags().String("title", "", "Title shown above the player")
	rootCmd.Flags().Bool("no-controls", false, "Hide the transport controls")
	rootCmd.Flags().Bool("no-launch", false, "Wait for a key press before loading the video")
}

// rootCmd plays a single video.
var rootCmd = &cobra.Command{
	Use:   constant.Curtain + " [video]",
	Short: "Play a video in an external player, driven from the terminal",
	Long: style.New().Bold(true).Foreground(color.HiRed).Render(constant.Curtain) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Play a video in an external player, driven from the terminal"),
	Args: cobra.MaximumNArgs(1),
	Example: strings.Join([]string{
		"  " + constant.Curtain + " workout.mp4",
		"  " + constant.Curtain + " https://example.com/trailer.mp4 --thumbnail poster.jpg --loop",
		"  " + constant.Curtain + " intro.webm --small --muted",
	}, "\n"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		options, err := playOptions(args[0], playFlags{
			thumbnail:  lo.Must(cmd.Flags().GetString("thumbnail")),
			title:      lo.Must(cmd.Flags().GetString("title")),
			noControls: lo.Must(cmd.Flags().GetBool("no-controls")),
			noLaunch:   lo.Must(cmd.Flags().GetBool("no-launch")),
		})
		handleErr(err)

		CheckDependencies(options.Player)
		handleErr(tui.Run(options))
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
		log.Errorf("%v", err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
