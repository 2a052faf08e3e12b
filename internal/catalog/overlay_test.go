package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOverlay = `
dlls:
  MyLib.dll:
    summary: In-house helper library.
    functions:
      - name: DoThing
        description: Does the thing.
      - name: Undo
        description: Reverts the thing.
  kernel32.dll:
    functions:
      - name: CreateFile
        description: Overridden description.
`

func TestParseOverlay(t *testing.T) {
	overlay, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)
	require.Equal(t, 2, overlay.Len())

	entries := overlay.Entries()
	assert.Equal(t, "kernel32.dll", entries[0].Name)
	assert.Equal(t, "mylib.dll", entries[1].Name)
	assert.Equal(t, []Function{{"DoThing", "Does the thing."}, {"Undo", "Reverts the thing."}}, entries[1].Functions)

	merged := Default().Merge(overlay)
	assert.Equal(t, Default().Len()+1, merged.Len())
	assert.Equal(t, "In-house helper library.", merged.Summary("mylib.dll"))
	assert.Equal(t, Default().Summary("kernel32.dll"), merged.Summary("kernel32.dll"))

	desc, ok := merged.Describe("kernel32.dll", "CreateFile")
	require.True(t, ok)
	assert.Equal(t, "Overridden description.", desc)

	desc, _ = Default().Describe("kernel32.dll", "CreateFile")
	assert.NotEqual(t, "Overridden description.", desc)
}

func TestParseOverlayErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "dlls: [unclosed"},
		{name: "empty function name", data: "dlls:\n  a.dll:\n    functions:\n      - description: x\n"},
		{name: "blank dll name", data: "dlls:\n  \" \":\n    summary: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverlay([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleOverlay), 0o600))

	overlay, err := LoadOverlay(path)
	require.NoError(t, err)
	assert.Equal(t, 2, overlay.Len())

	_, err = LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
