package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules configures the text cleaner and dish classifier. The zero value is
// not usable; start from DefaultRules.
type Rules struct {
	// TrailingBoilerplate lists literal phrases stripped from the end of a
	// cleaned fragment (kitchen annotations that are not part of the dish).
	TrailingBoilerplate []string `yaml:"trailing_boilerplate"`

	// DishKeywords lists category labels that mark a line as a dish even
	// when the category separator is missing. Matching is case-insensitive.
	DishKeywords []string `yaml:"dish_keywords"`
}

// DefaultRules returns the built-in cleaning rules for the Olavstoppen
// canteen decks.
func DefaultRules() Rules {
	return Rules{
		TrailingBoilerplate: []string{
			"64 grader",
			"62 grader",
		},
		DishKeywords: []string{
			"Varmrett",
			"Suppe",
			"Temadag",
		},
	}
}

// LoadRules reads a YAML rules file. Fields absent from the file keep their
// defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return rules, nil
}
