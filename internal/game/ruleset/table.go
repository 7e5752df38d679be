// Package ruleset loads scoring rule tables from YAML content files so house
// variants (different awards, extra rules) can be played without a rebuild.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/yahtzee/internal/game/scoring"
)

// RuleDef is one rule entry in a YAML rule table. Only the parameter field
// used by Strategy is read; the others must be zero.
type RuleDef struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Strategy    scoring.Kind `yaml:"strategy"`
	Face        int          `yaml:"face"`
	MinCount    int          `yaml:"min_count"`
	Award       int          `yaml:"award"`
}

// Table is the document shape of a rule table file.
type Table struct {
	Rules []RuleDef `yaml:"rules"`
}

// Rule builds the scoring.Rule described by d.
//
// Postcondition: Returns a valid Rule, or an error naming the rule.
func (d RuleDef) Rule() (scoring.Rule, error) {
	var s scoring.Strategy
	switch d.Strategy {
	case scoring.KindFaceTotal:
		s = scoring.FaceTotal{Face: d.Face}
	case scoring.KindSumIfRepeated:
		s = scoring.SumIfRepeated{MinCount: d.MinCount}
	case scoring.KindThreeAndTwo:
		s = scoring.ThreeAndTwo{Award: d.Award}
	case scoring.KindRunOfFour:
		s = scoring.RunOfFour{Award: d.Award}
	case scoring.KindRunOfFive:
		s = scoring.RunOfFive{Award: d.Award}
	case scoring.KindAllSame:
		s = scoring.AllSame{Award: d.Award}
	default:
		return scoring.Rule{}, fmt.Errorf("rule %q: unknown strategy %q", d.Name, d.Strategy)
	}
	if unused := d.unusedParams(); len(unused) > 0 {
		return scoring.Rule{}, fmt.Errorf("rule %q: strategy %s does not take %s",
			d.Name, d.Strategy, strings.Join(unused, ", "))
	}
	return scoring.NewRule(d.Name, d.Description, s)
}

func (d RuleDef) unusedParams() []string {
	var unused []string
	if d.Face != 0 && d.Strategy != scoring.KindFaceTotal {
		unused = append(unused, "face")
	}
	if d.MinCount != 0 && d.Strategy != scoring.KindSumIfRepeated {
		unused = append(unused, "min_count")
	}
	if d.Award != 0 && (d.Strategy == scoring.KindFaceTotal || d.Strategy == scoring.KindSumIfRepeated) {
		unused = append(unused, "award")
	}
	return unused
}

// Parse decodes a rule table document and adds its rules to reg.
//
// Precondition: reg must be non-nil.
// Postcondition: On error reg may hold the rules decoded before the failure.
func Parse(data []byte, reg *scoring.Registry) error {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decoding rule table: %w", err)
	}
	if len(table.Rules) == 0 {
		return fmt.Errorf("rule table has no rules")
	}
	for _, def := range table.Rules {
		if _, dup := reg.Lookup(def.Name); dup {
			return fmt.Errorf("rule %q defined more than once", def.Name)
		}
		rule, err := def.Rule()
		if err != nil {
			return err
		}
		reg.Register(rule)
	}
	return nil
}

// LoadFile reads one rule table file into a new Registry.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a non-empty Registry or a non-nil error.
func LoadFile(path string) (*scoring.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	reg := scoring.NewRegistry()
	if err := Parse(data, reg); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}
	return reg, nil
}

// LoadDir reads every .yaml/.yml file in dir, in lexicographic order, into a
// single Registry. Rule names must be unique across files.
//
// Precondition: dir must be a readable directory holding at least one table.
// Postcondition: Returns a non-empty Registry or a non-nil error.
func LoadDir(dir string) (*scoring.Registry, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no rule files in %s", dir)
	}
	reg := scoring.NewRegistry()
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := Parse(data, reg); err != nil {
			return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
		}
	}
	return reg, nil
}

// Load reads path as a directory of tables or a single table file.
// An empty path yields the standard catalog.
func Load(path string) (*scoring.Registry, error) {
	if path == "" {
		return scoring.Standard(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
