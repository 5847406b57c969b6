package npc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
)

const harborYAML = `id: venice_harbor
description: Dock crowd on the Grand Canal.
zone: EUROPEAN
era: RENAISSANCE
region: Venice
preferred_role: sailor
count: 4
`

func TestLoadTemplates_ValidDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harbor.yaml"), []byte(harborYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	templates, err := npc.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	assert.Equal(t, "venice_harbor", tmpl.ID)
	assert.Equal(t, 4, tmpl.Size())

	req := tmpl.Request(77)
	assert.Equal(t, int64(77), req.Seed)
	assert.Equal(t, culture.ZoneEuropean, req.Zone)
	assert.Equal(t, culture.EraRenaissance, req.Era)
	assert.Equal(t, "Venice", req.Region)
	assert.Equal(t, "sailor", req.PreferredRole)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	_, err := npc.LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadTemplateFromBytes_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"missing id":     "zone: MENA\nera: MEDIEVAL\n",
		"unknown zone":   "id: x\nzone: ATLANTIS\nera: MEDIEVAL\n",
		"unknown era":    "id: x\nzone: MENA\nera: BRONZE\n",
		"unknown gender": "id: x\nzone: MENA\nera: MEDIEVAL\ngender: Other\n",
		"negative count": "id: x\nzone: MENA\nera: MEDIEVAL\ncount: -1\n",
		"bad yaml":       "id: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := npc.LoadTemplateFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestTemplate_SizeDefaultsToOne(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte("id: x\nzone: MENA\nera: MEDIEVAL\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, tmpl.Size())
}
