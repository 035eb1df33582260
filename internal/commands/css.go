package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/stylesheet"
)

var cssCmd = &cobra.Command{
	Use:   "css [syntax]",
	Short: "Print a stylesheet applying a gradient",
	Long: `Print a stylesheet rule that sets the gradient as the background of the
given selectors. Without an argument the default red to blue gradient is used.

With --read, an existing stylesheet is read instead (a file, or - for stdin)
and its gradient backgrounds are printed back in canonical form, one rule per
selector. --selector then limits which selectors are kept.

Examples:
  grady css "linear-gradient(#FF0000 0%, #0000FF 100%)"
  grady css "radial-gradient(reflect, white 0%, black 100%)" --selector .button --selector .pane
  grady css --read theme.css
  cat theme.css | grady css --read - --selector .rectangle`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selectors, _ := cmd.Flags().GetStringSlice("selector")
		source, _ := cmd.Flags().GetString("read")

		if source != "" {
			if len(args) == 1 {
				fmt.Println("Error: give either a gradient or --read, not both")
				return
			}
			if !cmd.Flags().Changed("selector") {
				selectors = nil
			}
			out, err := rewriteStylesheet(source, os.Stdin, selectors)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Print(out)
			return
		}

		syntax := gradient.NewBuilder(nil, nil).Active().Syntax()
		if len(args) == 1 {
			syntax = args[0]
		}

		out, err := stylesheet.Render(syntax, selectors...)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(out)
	},
}

// rewriteStylesheet reads the stylesheet at source ("-" reads stdin) and
// rewrites its gradient backgrounds
func rewriteStylesheet(source string, stdin io.Reader, selectors []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return stylesheet.Rewrite(string(data), selectors...)
}

func init() {
	cssCmd.Flags().StringSlice("selector", stylesheet.DefaultSelectors, "Selectors the rule applies to (comma-separated)")
	cssCmd.Flags().String("read", "", "Read an existing stylesheet (file or - for stdin) and rewrite its gradients")
}
