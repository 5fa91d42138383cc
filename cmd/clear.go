package cmd

import (
	"fmt"
	"os"

	"github.com/curtain-cli/curtain/filesystem"
	"github.com/curtain-cli/curtain/util"
	"github.com/curtain-cli/curtain/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// clearTarget is a directory `clear` can empty.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"player sockets", "sockets", mo.Some("s"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes logs and sockets left behind by players that were killed.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove logs and stale player sockets",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				count := countFiles(target.location())
				handleErr(util.Delete(target.location()))
				success("cleared %s (%s)", target.name, util.Quantify(count, "file", "files"))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

func countFiles(root string) int {
	var count int
	_ = afero.Walk(filesystem.API(), root, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			count++
		}
		return nil
	})
	return count
}
