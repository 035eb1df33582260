// Package stylesheet wraps gradient strings into stylesheet rules
package stylesheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/balkashynov/grady/internal/gradient"
)

// BackgroundProperty is the property the previews paint with
const BackgroundProperty = "-fx-background-color"

// DefaultSelectors match the two preview shapes
var DefaultSelectors = []string{".rectangle", ".circle"}

// Rule builds a stylesheet rule applying background to every selector.
// The background must be a readable gradient string.
func Rule(background string, selectors ...string) (*css.Rule, error) {
	if _, err := gradient.ParseSyntax(background); err != nil {
		return nil, err
	}
	if len(selectors) == 0 {
		selectors = DefaultSelectors
	}

	rule := css.NewRule(css.QualifiedRule)
	rule.Selectors = selectors
	rule.Prelude = strings.Join(selectors, ", ")

	decl := css.NewDeclaration()
	decl.Property = BackgroundProperty
	decl.Value = background
	rule.Declarations = append(rule.Declarations, decl)
	return rule, nil
}

// Render returns the stylesheet text for background on selectors
func Render(background string, selectors ...string) (string, error) {
	rule, err := Rule(background, selectors...)
	if err != nil {
		return "", err
	}
	sheet := css.NewStylesheet()
	sheet.Rules = append(sheet.Rules, rule)
	return sheet.String(), nil
}

// Backgrounds reads a stylesheet and returns the background value declared for
// each selector, last declaration winning
func Backgrounds(text string) (map[string]string, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}
	out := make(map[string]string)
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, d := range r.Declarations {
			if d.Property != BackgroundProperty && d.Property != "background" {
				continue
			}
			for _, sel := range r.Selectors {
				out[sel] = d.Value
			}
		}
	}
	return out, nil
}

// Rewrite reads the gradient backgrounds of an existing stylesheet and writes
// them back as one rule per selector, each gradient rebuilt into canonical
// form. Backgrounds that are not gradients are dropped. With selectors given,
// only those are kept.
func Rewrite(text string, selectors ...string) (string, error) {
	backgrounds, err := Backgrounds(text)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(backgrounds))
	for sel := range backgrounds {
		if len(selectors) > 0 && !slices.Contains(selectors, sel) {
			continue
		}
		names = append(names, sel)
	}
	slices.Sort(names)

	sheet := css.NewStylesheet()
	for _, sel := range names {
		d, err := gradient.ParseSyntax(backgrounds[sel])
		if err != nil {
			continue
		}
		rule, err := Rule(gradient.NewBuilder(nil, nil).Load(d).Syntax(), sel)
		if err != nil {
			return "", err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	if len(sheet.Rules) == 0 {
		return "", fmt.Errorf("no gradient backgrounds found")
	}
	return sheet.String(), nil
}
