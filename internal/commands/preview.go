package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/grady/internal/db"
	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [syntax]",
	Short: "Paint a gradient into the terminal",
	Long: `Paint a gradient onto a rectangle and a circle, the same previews the
editor shows. Without an argument the default red to blue gradient is used.
Needs a terminal with color support.

Examples:
  grady preview "linear-gradient(repeat, #FF0000 0%, #FFFF00 50%, #0000FF 100%)"
  grady preview "radial-gradient(center 30% 30%, radius 60%, white 0%, black 100%)" --width 20`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		syntax := gradient.NewBuilder(nil, nil).Active().Syntax()
		if len(args) == 1 {
			syntax = args[0]
		}

		out, err := renderPreview(syntax, width, height)
		if err != nil {
			fmt.Printf("❌ Can't preview: %v\n", err)
			return
		}
		fmt.Println(out)
	},
}

// renderPreview applies syntax to a rectangle and a circle panel and lays
// them out side by side with their captions
func renderPreview(syntax string, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("preview size must be at least 1x1, got %dx%d", width, height)
	}

	rect := preview.NewRectangle(width, height)
	circle := preview.NewCircle(width, height)
	preview.NewApplier(rect, circle).ApplyBackground(syntax)
	if err := rect.Err(); err != nil {
		return "", err
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, rect.Render(), rect.Caption()),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, circle.Render(), circle.Caption()),
	), nil
}

func init() {
	previewCmd.Flags().Int("width", db.DefaultPreviewWidth, "Panel width in cells")
	previewCmd.Flags().Int("height", db.DefaultPreviewHeight, "Panel height in cells")
}
