package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/grady/internal/db"
	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "grady [syntax]",
	Short: "A terminal gradient builder",
	Long: `grady is a terminal editor for linear and radial gradients.
Edit color stops, watch a rectangle and a circle repaint live, and copy the
resulting gradient syntax when you are done.

Examples:
  grady
  grady --type radial --repeat reflect
  grady "linear-gradient(red 0%, blue 100%)"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEditor,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

func runEditor(cmd *cobra.Command, args []string) {
	noPrefs, _ := cmd.Flags().GetBool("no-prefs")

	prefs := db.DefaultEditorPrefs()
	if !noPrefs {
		initDB()
		stored, err := db.LoadEditorPrefs()
		if err != nil {
			fmt.Printf("⚠️  Could not load preferences: %v\n", err)
		} else {
			prefs = stored
		}
	}

	opts, err := editorOptions(cmd, args, prefs)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := tui.RunBuilderTUI(opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if !noPrefs {
		err := db.SaveEditorPrefs(db.EditorPrefs{
			Kind:          result.Kind,
			Repeat:        result.Repeat,
			PreviewWidth:  result.PreviewWidth,
			PreviewHeight: result.PreviewHeight,
		})
		if err != nil {
			fmt.Printf("⚠️  Could not save preferences: %v\n", err)
		}
	}

	fmt.Println(result.Syntax)
}

// editorOptions merges stored prefs, flags and an optional syntax argument.
// Flags win over prefs; a syntax argument decides the type on its own.
func editorOptions(cmd *cobra.Command, args []string, prefs db.EditorPrefs) (tui.Options, error) {
	opts := tui.Options{
		Kind:          prefs.Kind,
		Repeat:        prefs.Repeat,
		PreviewWidth:  prefs.PreviewWidth,
		PreviewHeight: prefs.PreviewHeight,
	}

	if cmd.Flags().Changed("type") {
		value, _ := cmd.Flags().GetString("type")
		kind, err := gradient.ParseKind(value)
		if err != nil {
			return opts, err
		}
		opts.Kind = kind
	}
	if cmd.Flags().Changed("repeat") {
		value, _ := cmd.Flags().GetString("repeat")
		mode, err := gradient.ParseRepeatMode(value)
		if err != nil {
			return opts, err
		}
		opts.Repeat = mode
	}

	if len(args) == 1 {
		d, err := gradient.ParseSyntax(args[0])
		if err != nil {
			return opts, err
		}
		opts.Initial = &d
	}
	return opts, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("type", "linear", "Gradient type: linear|radial")
	rootCmd.Flags().String("repeat", "none", "Repeat mode: none|repeat|reflect")
	rootCmd.Flags().Bool("no-prefs", false, "Don't load or save editor preferences")
	rootCmd.PersistentFlags().BoolVarP(&db.Verbose, "verbose", "v", false, "Log SQL statements")

	// Add subcommands here
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
