package models

import "time"

// FolderTreeNode is a folder in the assembled hierarchy with nested
// children. Note entries carry metadata only, never content.
type FolderTreeNode struct {
	ID          string            `json:"id"`
	ParentID    *string           `json:"parent_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Color       string            `json:"color,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Folders     []*FolderTreeNode `json:"folders"` // Pointers for proper nesting
	Notes       []NoteMeta        `json:"notes"`
}
