package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildSchemaFromYAML(t *testing.T) {
	raw, err := os.ReadFile("testdata/events.yaml")
	require.NoError(t, err)

	var doc schemaDoc
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	s, err := buildSchema(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.IndexSize())
	assert.True(t, s.CanEqual())
	// The bytes-free kinds here are all ordered, but "closed" is unit
	// and still participates.
	assert.Equal(t, "unit", s.AltAt(2).PayloadType())
}

func TestBuildSchemaReportsDuplicateTags(t *testing.T) {
	doc := schemaDoc{
		Name: "bad",
		Alternatives: []altDoc{
			{Tag: "x", Kind: "u32"},
			{Tag: "x", Kind: "string"},
		},
	}
	_, err := buildSchema(doc)
	assert.ErrorContains(t, err, "duplicate tag")
}

func TestAltForKindRejectsUnknownKind(t *testing.T) {
	_, err := altForKind("x", "quaternion")
	assert.Error(t, err)
}
