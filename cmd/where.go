package cmd

import (
	"os"

	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/style"
	"github.com/curtain-cli/curtain/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// whereTarget is a directory curtain writes to.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort string
}

var wherePaths = []whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Logs", where.Logs, "logs", "l"},
	{"Player sockets", where.Temp, "sockets", "s"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		whereCmd.Flags().BoolP(n.argLong, n.argShort, false, n.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the directories curtain uses. With a flag only that path is
// printed, for scripting.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the directories curtain reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, n := range wherePaths {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())
		}
	},
}
