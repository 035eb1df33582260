package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/grady/internal/db"
	"github.com/balkashynov/grady/internal/models"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or reset stored editor preferences",
	Long: `Show the editor preferences grady remembers between runs: the last
gradient type, repeat mode and preview size. Gradients themselves are never stored.

Examples:
  grady prefs
  grady prefs --json
  grady prefs --reset`,
	Args: cobra.NoArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		reset, _ := cmd.Flags().GetBool("reset")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if reset {
			n, err := db.ResetPreferences()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✅ Cleared %d preference(s)\n", n)
			return
		}

		prefs, err := db.ListPreferences()
		if err != nil {
			fmt.Printf("Error loading preferences: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			renderPrefsJSON(prefs)
			return
		}
		fmt.Print(renderPrefsTable(prefs))
	}),
}

// renderPrefsJSON outputs preferences as a name -> value object
func renderPrefsJSON(prefs []models.Preference) {
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		out[p.Name] = p.Value
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// renderPrefsTable lists preferences one per line with their last update
func renderPrefsTable(prefs []models.Preference) string {
	if len(prefs) == 0 {
		return "No preferences stored yet. They are saved when you leave the editor.\n"
	}

	width := 0
	for _, p := range prefs {
		width = max(width, len(p.Name))
	}

	out := ""
	for _, p := range prefs {
		out += fmt.Sprintf("%-*s  %-10s  (updated %s)\n", width, p.Name, p.Value, p.UpdatedAt.Format("02/01/2006 15:04"))
	}
	return out
}

func init() {
	prefsCmd.Flags().Bool("reset", false, "Delete every stored preference")
	prefsCmd.Flags().Bool("json", false, "Output as JSON")
}
