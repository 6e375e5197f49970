package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Apply(t *testing.T) {
	name := "renamed"
	description := ""

	tests := []struct {
		name     string
		project  Project
		patch    ProjectPatch
		expected Project
	}{
		{
			name:     "empty patch leaves project untouched",
			project:  Project{Name: "alpha", Description: "first", Attributes: map[string]any{"a": 1}},
			patch:    ProjectPatch{},
			expected: Project{Name: "alpha", Description: "first", Attributes: map[string]any{"a": 1}},
		},
		{
			name:     "name only",
			project:  Project{Name: "alpha", Description: "first"},
			patch:    ProjectPatch{Name: &name},
			expected: Project{Name: "renamed", Description: "first"},
		},
		{
			name:     "description can be cleared",
			project:  Project{Name: "alpha", Description: "first"},
			patch:    ProjectPatch{Description: &description},
			expected: Project{Name: "alpha", Description: ""},
		},
		{
			name:     "attributes merge per key and nil removes",
			project:  Project{Name: "alpha", Attributes: map[string]any{"a": 1, "b": 2}},
			patch:    ProjectPatch{Attributes: map[string]any{"b": nil, "c": "x"}},
			expected: Project{Name: "alpha", Attributes: map[string]any{"a": 1, "c": "x"}},
		},
		{
			name:     "attributes created when absent",
			project:  Project{Name: "alpha"},
			patch:    ProjectPatch{Attributes: map[string]any{"c": true}},
			expected: Project{Name: "alpha", Attributes: map[string]any{"c": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := tt.project
			project.Apply(tt.patch)
			assert.Equal(t, tt.expected, project)
		})
	}
}

func TestProjectPatch_IsEmpty(t *testing.T) {
	name := "x"

	assert.True(t, ProjectPatch{}.IsEmpty())
	assert.False(t, ProjectPatch{Name: &name}.IsEmpty())
	assert.False(t, ProjectPatch{Attributes: map[string]any{}}.IsEmpty())
}
