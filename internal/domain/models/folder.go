package models

import (
	"time"
)

// Folder is a single node of a user's folder hierarchy. ParentID is nil for
// root-level folders. OwnerID is immutable after creation.
type Folder struct {
	ID          string    `json:"id" db:"id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	ParentID    *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Color       string    `json:"color,omitempty" db:"color"` // #RRGGBB
	Icon        string    `json:"icon,omitempty" db:"icon"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FolderDetail is a folder together with the notes directly inside it and
// its immediate child folders (one level only, not the full subtree).
type FolderDetail struct {
	Folder   *Folder    `json:"folder"`
	Notes    []NoteMeta `json:"notes"`
	Children []Folder   `json:"children"`
}
