package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for grady",
	Long:  `Display detailed help for all grady commands, flags and editor keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 ██████╗ ██████╗  █████╗ ██████╗ ██╗   ██╗
██╔════╝ ██╔══██╗██╔══██╗██╔══██╗╚██╗ ██╔╝
██║  ███╗██████╔╝███████║██║  ██║ ╚████╔╝
██║   ██║██╔══██╗██╔══██║██║  ██║  ╚██╔╝
╚██████╔╝██║  ██║██║  ██║██████╔╝   ██║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝    ╚═╝

grady - Terminal Gradient Builder

COMMANDS:

  grady [syntax]          Open the gradient editor
    --type                Gradient type: linear|radial
    --repeat              Repeat mode: none|repeat|reflect
    --no-prefs            Don't load or save editor preferences

    Editor keys:
      1 / 2         Linear / radial (starts over with two stops)
      tab           Toggle gradient type
      ↑/↓           Select stop
      ←/→           Move stop by 1%
      shift+←/→     Move stop by 10% (also H / L)
      enter, e      Edit color
      p             Edit percent
      a, +          Add stop after the selected one
      d, x, -       Delete selected stop (at least 2 stay)
      r             Cycle repeat mode
      esc/q         Quit and print the gradient

    Example:
      grady "linear-gradient(repeat, #FF0000 0%, #0000FF 100%)"

  build                   Print a gradient from flags
    -s, --stop            Color stop "<color> <percent>" (repeatable)
    --type                Gradient type: linear|radial
    --repeat              Repeat mode: none|repeat|reflect
    --from, --to          Linear points "X Y" in percent
    --center              Radial center "X Y" in percent
    --radius              Radial radius in percent
    --focus-angle         Radial focus angle in degrees
    --focus-distance      Radial focus distance in percent

    Example:
      grady build -s "#FF0000 0%" -s "#00FF00 50%" -s "#0000FF 100%"

  preview [syntax]        Paint a gradient onto a rectangle and a circle
    --width               Panel width in cells
    --height              Panel height in cells

  css [syntax]            Print a stylesheet rule with the gradient
    --selector            Selectors (comma-separated)
    --read                Rewrite gradients of an existing stylesheet (file or -)

  prefs                   Show stored editor preferences
    --reset               Delete them
    --json                JSON output

  version                 Show version
  help                    Show this help

Use --verbose with any command to log database statements.

`)
}
