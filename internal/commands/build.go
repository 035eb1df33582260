package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/parser"
)

// buildRequest is the raw flag input of the build command
type buildRequest struct {
	Kind   string
	Repeat string
	Stops  []string

	From string
	To   string

	Center        string
	Radius        string
	FocusAngle    string
	FocusDistance string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Print a gradient without opening the editor",
	Long: `Build a gradient from flags and print its syntax.

Each --stop is "<color> <percent>", e.g. "#FF0000 0%" or "rgba(0, 0, 255, 0.5) 100".
Stops are kept in the order given. With fewer than two stops the default
red and blue stops fill in the rest.

Examples:
  grady build --stop "#FF0000 0%" --stop "#00FF00 50%" --stop "#0000FF 100%"
  grady build --repeat reflect --from "0 0" --to "100 100"
  grady build --type radial --center "30 30" --radius 40 --focus-angle 45`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		req := buildRequest{}
		req.Kind, _ = cmd.Flags().GetString("type")
		req.Repeat, _ = cmd.Flags().GetString("repeat")
		req.Stops, _ = cmd.Flags().GetStringArray("stop")
		req.From, _ = cmd.Flags().GetString("from")
		req.To, _ = cmd.Flags().GetString("to")
		req.Center, _ = cmd.Flags().GetString("center")
		req.Radius, _ = cmd.Flags().GetString("radius")
		req.FocusAngle, _ = cmd.Flags().GetString("focus-angle")
		req.FocusDistance, _ = cmd.Flags().GetString("focus-distance")

		syntax, err := buildGradient(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(syntax)
	},
}

// buildGradient turns a request into gradient syntax by replaying it through
// a fresh builder
func buildGradient(req buildRequest) (string, error) {
	d, err := req.descriptor()
	if err != nil {
		return "", err
	}
	return gradient.NewBuilder(nil, nil).Load(d).Syntax(), nil
}

func (req buildRequest) descriptor() (gradient.Descriptor, error) {
	var d gradient.Descriptor

	kind, err := gradient.ParseKind(orDefault(req.Kind, "linear"))
	if err != nil {
		return d, err
	}
	d.Kind = kind

	repeat, err := gradient.ParseRepeatMode(orDefault(req.Repeat, "none"))
	if err != nil {
		return d, err
	}
	d.Repeat = repeat

	d.Stops, err = parser.ParseStops(req.Stops)
	if err != nil {
		return d, err
	}

	switch kind {
	case gradient.Linear:
		if req.From == "" && req.To == "" {
			break
		}
		lp := gradient.DefaultLinearParams()
		if req.From != "" {
			if lp.From, err = parser.ParsePoint(req.From); err != nil {
				return d, err
			}
		}
		if req.To != "" {
			if lp.To, err = parser.ParsePoint(req.To); err != nil {
				return d, err
			}
		}
		d.Linear = &lp

	case gradient.Radial:
		if req.Center == "" && req.Radius == "" && req.FocusAngle == "" && req.FocusDistance == "" {
			break
		}
		rp := gradient.DefaultRadialParams()
		if req.Center != "" {
			if rp.Center, err = parser.ParsePoint(req.Center); err != nil {
				return d, err
			}
		}
		if req.Radius != "" {
			if rp.Radius, err = parser.ParsePercent(req.Radius); err != nil {
				return d, err
			}
		}
		if req.FocusDistance != "" {
			if rp.FocusDistance, err = parser.ParsePercent(req.FocusDistance); err != nil {
				return d, err
			}
		}
		if req.FocusAngle != "" {
			if rp.FocusAngle, err = parseAngle(req.FocusAngle); err != nil {
				return d, err
			}
		}
		d.Radial = &rp
	}

	return d, nil
}

// parseAngle reads "45" or "45deg"
func parseAngle(input string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "deg"))
	angle, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q. Use degrees, e.g. 45 or 45deg", input)
	}
	return angle, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func init() {
	buildCmd.Flags().String("type", "linear", "Gradient type: linear|radial")
	buildCmd.Flags().String("repeat", "none", "Repeat mode: none|repeat|reflect")
	buildCmd.Flags().StringArrayP("stop", "s", nil, "Color stop \"<color> <percent>\" (repeatable)")
	buildCmd.Flags().String("from", "", "Linear start point \"X Y\" in percent")
	buildCmd.Flags().String("to", "", "Linear end point \"X Y\" in percent")
	buildCmd.Flags().String("center", "", "Radial center \"X Y\" in percent")
	buildCmd.Flags().String("radius", "", "Radial radius in percent")
	buildCmd.Flags().String("focus-angle", "", "Radial focus angle in degrees")
	buildCmd.Flags().String("focus-distance", "", "Radial focus distance in percent of the radius")
}
