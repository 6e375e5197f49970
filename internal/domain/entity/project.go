package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a named work item with free-form attributes.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Attributes  map[string]any // Caller-supplied fields stored as-is.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Attributes  map[string]any
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Attributes == nil
}

// Apply merges the supplied fields into the project. Attribute keys are merged
// individually; a nil value removes the key.
func (p *Project) Apply(patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Attributes != nil {
		if p.Attributes == nil {
			p.Attributes = make(map[string]any, len(patch.Attributes))
		}
		for key, value := range patch.Attributes {
			if value == nil {
				delete(p.Attributes, key)

				continue
			}
			p.Attributes[key] = value
		}
	}
}
