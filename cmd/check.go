package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/icon"
	"github.com/curtain-cli/curtain/player"
	"github.com/curtain-cli/curtain/style"
	"github.com/curtain-cli/curtain/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd reports which players are usable on this machine.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which video players are installed and usable",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range player.Available() {
			if err := checkPlayer(cmd.Context(), name); err != nil {
				cmd.Printf("%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Bold(name), style.Faint(err.Error()))
				continue
			}
			cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(name))
		}
	},
}

// CheckDependencies exits with install instructions when the chosen player is missing.
// An outdated mpv only warns.
func CheckDependencies(name string) {
	if err := checkPlayer(context.Background(), name); err != nil {
		if _, missing := err.(*exec.Error); missing {
			printMissingDependencyError(name)
			os.Exit(1)
		}
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Mark)), err)
	}
}

func checkPlayer(ctx context.Context, name string) error {
	switch name {
	case player.MPVName:
		if _, err := exec.LookPath("mpv"); err != nil {
			return err
		}

		v, err := player.MPVVersion(ctx)
		if err != nil {
			return err
		}

		ok, err := version.AtLeast(v, player.MinMPVVersion)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("mpv %s is older than %s; seeking and progress may not work", v, player.MinMPVVersion)
		}
	case player.IINAName:
		if runtime.GOOS != constant.Darwin {
			return fmt.Errorf("only available on macOS")
		}
		if _, err := exec.LookPath("open"); err != nil {
			return err
		}
	default:
		_, err := player.New(name)
		return err
	}

	return nil
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.", dep))

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
