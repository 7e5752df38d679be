package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
	"github.com/cory-johannsen/yahtzee/internal/game/ruleset"
	"github.com/cory-johannsen/yahtzee/internal/game/scoring"
)

const standardRules = "../../../content/rules/standard.yaml"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFile_StandardMatchesCatalog(t *testing.T) {
	reg, err := ruleset.LoadFile(standardRules)
	require.NoError(t, err)
	assert.Equal(t, scoring.Standard().Names(), reg.Names())
	for _, want := range scoring.StandardRules() {
		got, ok := reg.Lookup(want.Name)
		require.True(t, ok, want.Name)
		assert.Equal(t, want, got)
	}
}

// TestLoadFile_StandardScoresLikeCatalog_Property verifies the shipped table
// scores every hand exactly like the built-in catalog.
func TestLoadFile_StandardScoresLikeCatalog_Property(t *testing.T) {
	reg, err := ruleset.LoadFile(standardRules)
	require.NoError(t, err)
	std := scoring.Standard()
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(1, 6), 5, 5).Draw(rt, "values")
		h := dice.MustHand(values...)
		assert.Equal(rt, std.Scorecard(h).Entries, reg.Scorecard(h).Entries)
	})
}

func TestLoadFile_HouseVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.yaml")
	writeFile(t, path, `
rules:
  - name: yahtzee
    description: "Score 100"
    strategy: all_same
    award: 100
  - name: pairPlus
    strategy: sum_if_repeated
    min_count: 2
`)
	reg, err := ruleset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"yahtzee", "pairPlus"}, reg.Names())

	score, err := reg.Evaluate("yahtzee", dice.MustHand(3, 3, 3, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	score, err = reg.Evaluate("pairPlus", dice.MustHand(1, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 11, score)
}

func TestLoadFile_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown strategy": `
rules:
  - name: x
    strategy: five_high
`,
		"face out of range": `
rules:
  - name: sevens
    strategy: face_total
    face: 7
`,
		"min count out of range": `
rules:
  - name: x
    strategy: sum_if_repeated
    min_count: 6
`,
		"negative award": `
rules:
  - name: x
    strategy: run_of_four
    award: -30
`,
		"missing name": `
rules:
  - strategy: all_same
    award: 50
`,
		"duplicate name": `
rules:
  - name: x
    strategy: all_same
    award: 50
  - name: x
    strategy: all_same
    award: 60
`,
		"stray parameter": `
rules:
  - name: x
    strategy: face_total
    face: 2
    award: 10
`,
		"empty table": `rules: []`,
		"bad yaml":    "rules: [",
	}
	for name, doc := range cases {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		writeFile(t, path, doc)
		_, err := ruleset.LoadFile(path)
		assert.Error(t, err, name)
		if err != nil {
			assert.Contains(t, err.Error(), path, name)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := ruleset.LoadFile("/nonexistent/rules.yaml")
	assert.Error(t, err)
}

func TestLoadDir_MergesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b_lower.yml"), `
rules:
  - name: chance
    strategy: sum_if_repeated
`)
	writeFile(t, filepath.Join(dir, "a_upper.yaml"), `
rules:
  - name: sixes
    strategy: face_total
    face: 6
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	reg, err := ruleset.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"sixes", "chance"}, reg.Names())
}

func TestLoadDir_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	doc := `
rules:
  - name: chance
    strategy: sum_if_repeated
`
	writeFile(t, filepath.Join(dir, "a.yaml"), doc)
	writeFile(t, filepath.Join(dir, "b.yaml"), doc)
	_, err := ruleset.LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := ruleset.LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_Dispatch(t *testing.T) {
	reg, err := ruleset.Load("")
	require.NoError(t, err)
	assert.Equal(t, 13, reg.Len())

	reg, err = ruleset.Load(filepath.Dir(standardRules))
	require.NoError(t, err)
	assert.Equal(t, 13, reg.Len())

	reg, err = ruleset.Load(standardRules)
	require.NoError(t, err)
	assert.Equal(t, 13, reg.Len())

	_, err = ruleset.Load("/nonexistent")
	assert.Error(t, err)
}
