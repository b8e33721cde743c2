package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

const sampleJSON = `{
  "classes": [
    {
      "name": "Car",
      "fields": [
        {
          "name": "speed",
          "type": "int"
        }
      ],
      "methods": [
        {
          "name": "drive",
          "return_type": "void",
          "params": [
            {
              "name": "to",
              "type": "str"
            }
          ]
        }
      ],
      "position": {
        "x": 3,
        "y": 4
      }
    },
    {
      "name": "Engine",
      "fields": [],
      "methods": [],
      "position": {
        "x": 0,
        "y": 0
      }
    }
  ],
  "relationships": [
    {
      "source": "Car",
      "destination": "Engine",
      "type": "Composition"
    }
  ]
}`

func TestEncodeJSON(t *testing.T) {
	d, err := Decode([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	data, err := d.Encode(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(data))
}

func TestEncodeEmptyDiagram(t *testing.T) {
	data, err := New().Encode(FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"classes":[],"relationships":[]}`, string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"diagram.json", "diagram.yaml", "diagram.yml"} {
		t.Run(name, func(t *testing.T) {
			d, err := Decode([]byte(sampleJSON), FormatJSON)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, d.Save(path))

			loaded := New()
			require.NoError(t, loaded.Load(path))
			assert.Equal(t, d, loaded)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	d := New()
	require.NoError(t, d.AddClass("A"))
	require.NoError(t, d.Save(path))

	loaded := New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []string{"A"}, loaded.ClassNames())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "dangling relationship",
			doc:     `{"classes":[{"name":"A"}],"relationships":[{"source":"A","destination":"B","type":"Composition"}]}`,
			wantErr: "Error: Relationship(s) contain nonexistent class(es)",
		},
		{
			name:    "duplicate class",
			doc:     `{"classes":[{"name":"A"},{"name":"A"}],"relationships":[]}`,
			wantErr: "Error: Duplicate class exist",
		},
		{
			name: "duplicate relationship",
			doc: `{"classes":[{"name":"A"},{"name":"B"}],"relationships":[
				{"source":"A","destination":"B","type":"Composition"},
				{"source":"A","destination":"B","type":"Inheritance"}]}`,
			wantErr: "Error: Duplicate relationship exist",
		},
		{
			name:    "bad relationship type",
			doc:     `{"classes":[{"name":"A"}],"relationships":[{"source":"A","destination":"A","type":"Friendship"}]}`,
			wantErr: "Error: invalid relationship type: 'Friendship'",
		},
		{
			name:    "bad class name",
			doc:     `{"classes":[{"name":"A<int>"}],"relationships":[]}`,
			wantErr: "Error: Invalid class name: 'A<int>'. Reason: extra characters encountered: <int>",
		},
		{
			name:    "duplicate method signature",
			doc:     `{"classes":[{"name":"A","methods":[{"name":"f","return_type":"int","params":[]},{"name":"f","return_type":"str","params":[]}]}]}`,
			wantErr: "Error: a method with the signature already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "d.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			d := New()
			require.NoError(t, d.AddClass("Existing"))
			err := d.Load(path)
			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, []string{"Existing"}, d.ClassNames(), "diagram unchanged on failure")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	d := New()
	err := d.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeIO))
	assert.Contains(t, err.Error(), "Error: ")
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	err := New().Load(path)
	require.Error(t, err)
	assert.True(t, mumlerr.HasCode(err, mumlerr.CodeIO))
}
