package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/config"
	"github.com/cory-johannsen/npcgen/internal/content"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
	"github.com/cory-johannsen/npcgen/internal/narrator"
)

type stubNarrator struct{}

func (stubNarrator) Narrate(_ context.Context, p npc.Profile) (string, error) {
	return "The tale of " + p.Name + ".", nil
}

func testFactory(t *testing.T, mutate func(*App)) appFactory {
	t.Helper()
	tables, err := content.LoadEmbedded()
	require.NoError(t, err)
	return func(ConfigPath) (*App, func(), error) {
		logger := zaptest.NewLogger(t)
		app := &App{
			Config:    config.Config{Generator: config.GeneratorConfig{InstructionLimit: 1000}},
			Logger:    logger,
			Tables:    tables,
			Generator: npc.NewGenerator(tables, nil, logger),
			Narrator:  narrator.Disabled{},
		}
		if mutate != nil {
			mutate(app)
		}
		return app, func() {}, nil
	}
}

func execute(t *testing.T, factory appFactory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(factory)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate_JSONIsDeterministic(t *testing.T) {
	f := testFactory(t, nil)
	args := []string{"generate", "--seed", "42", "--zone", "european", "--era", "medieval"}

	first, err := execute(t, f, args...)
	require.NoError(t, err)
	second, err := execute(t, f, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &doc))
	assert.Equal(t, "EUROPEAN", doc["zone"])
	assert.Equal(t, "MEDIEVAL", doc["era"])
	assert.EqualValues(t, 42, doc["seed"])
	assert.NotEmpty(t, doc["name"])
	assert.NotContains(t, doc, "biography")
}

func TestGenerate_CountProducesConsecutiveSeeds(t *testing.T) {
	out, err := execute(t, testFactory(t, nil), "generate", "--seed", "100", "--count", "3")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 3)
	for i, d := range docs {
		assert.EqualValues(t, 100+i, d["seed"])
	}
}

func TestGenerate_YAML(t *testing.T) {
	out, err := execute(t, testFactory(t, nil), "generate", "--seed", "7", "--zone", "MENA", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "MENA", doc["zone"])
	assert.Contains(t, doc, "clothing")
}

func TestGenerate_DefaultSeedFromConfig(t *testing.T) {
	f := testFactory(t, func(a *App) { a.Config.Generator.DefaultSeed = 9 })
	out, err := execute(t, f, "generate")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 9, doc["seed"])
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	f := testFactory(t, nil)
	cases := [][]string{
		{"generate", "--format", "xml"},
		{"generate", "--zone", "atlantis"},
		{"generate", "--era", "jurassic"},
		{"generate", "--gender", "x"},
		{"generate", "--wealth", "filthy"},
		{"generate", "--count", "0"},
		{"generate", "--age=-3"},
	}
	for _, args := range cases {
		_, err := execute(t, f, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestGenerate_Template(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guild.yaml"), []byte(`
id: guild
description: Weavers' guild hall.
zone: EUROPEAN
era: RENAISSANCE
wealth: comfortable
count: 2
`), 0644))

	out, err := execute(t, testFactory(t, nil),
		"generate", "--seed", "1", "--template", "guild", "--templates-dir", dir)
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "RENAISSANCE", d["era"])
	}

	_, err = execute(t, testFactory(t, nil),
		"generate", "--template", "missing", "--templates-dir", dir)
	assert.ErrorContains(t, err, "not found")
}

func TestGenerate_NarrateDisabled(t *testing.T) {
	_, err := execute(t, testFactory(t, nil), "generate", "--seed", "1", "--narrate")
	assert.ErrorContains(t, err, "narration is disabled")
}

func TestGenerate_NarrateAttachesBiography(t *testing.T) {
	f := testFactory(t, func(a *App) { a.Narrator = stubNarrator{} })
	out, err := execute(t, f, "generate", "--seed", "1", "--narrate")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "The tale of "+doc["name"].(string)+".", doc["biography"])
}

func TestClothing_DirectHit(t *testing.T) {
	out, err := execute(t, testFactory(t, nil),
		"clothing", "--zone", "MENA", "--era", "MEDIEVAL", "--wealth", "poor", "--gender", "male", "--seed", "3")
	require.NoError(t, err)

	var doc clothingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "direct", string(doc.Result.Stage))
	assert.NotEmpty(t, doc.Result.Set.Garments)
	assert.EqualValues(t, 3, doc.Seed)
}

func TestClothing_RequiresCoordinate(t *testing.T) {
	_, err := execute(t, testFactory(t, nil), "clothing", "--zone", "MENA")
	assert.Error(t, err)
}

func TestTemplates_ListsBundledTemplates(t *testing.T) {
	out, err := execute(t, testFactory(t, nil), "templates", "--templates-dir", "../../templates")
	require.NoError(t, err)
	assert.Contains(t, out, "venice_harbor")
	assert.Contains(t, out, "highland_wedding")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, testFactory(t, nil), "version")
	require.NoError(t, err)
	assert.Equal(t, "npcgen "+version+"\n", out)
}

func TestProvideScripts_EmptyDirDisablesScripting(t *testing.T) {
	scripts, cleanup, err := provideScripts(config.Config{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer cleanup()
	assert.Nil(t, scripts)
}

func TestProvideScripts_LoadsBundledTree(t *testing.T) {
	cfg := config.Config{Generator: config.GeneratorConfig{ScriptsDir: "../../scripts", InstructionLimit: 100000}}
	scripts, cleanup, err := provideScripts(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, scripts)
}

func TestInitApp_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: error
  format: json
generator:
  scripts_dir: ../../scripts
`), 0644))

	app, cleanup, err := initApp(ConfigPath(path))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "error", app.Config.Logging.Level)
	assert.IsType(t, narrator.Disabled{}, app.Narrator)
	p := app.Generator.Generate(npc.Request{Seed: 1})
	assert.NotEmpty(t, p.Name)
}
