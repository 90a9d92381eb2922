package models

import (
	"time"
)

// Highlight is a client-maintained annotation span. Position is not
// validated against content length; the client owns this data.
type Highlight struct {
	Text     string            `json:"text"`
	Color    string            `json:"color"`
	Position HighlightPosition `json:"position"`
}

// HighlightPosition is a character span within the note content.
type HighlightPosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Drawing is an opaque canvas blob anchored at a position. Unvalidated.
type Drawing struct {
	CanvasData string          `json:"canvas_data"`
	Position   DrawingPosition `json:"position"`
}

// DrawingPosition is a free-form x/y anchor.
type DrawingPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Note is a Markdown note. FolderID is required (notes do not nest and
// always live in exactly one folder). OwnerID is immutable after creation.
type Note struct {
	ID         string      `json:"id" db:"id"`
	OwnerID    string      `json:"owner_id" db:"owner_id"`
	FolderID   string      `json:"folder_id" db:"folder_id"`
	Title      string      `json:"title" db:"title"`
	Content    string      `json:"content" db:"content"`
	Tags       []string    `json:"tags" db:"tags"`
	Highlights []Highlight `json:"highlights" db:"highlights"`
	Drawings   []Drawing   `json:"drawings" db:"drawings"`
	Category   string      `json:"category" db:"category"`
	Episode    *int        `json:"episode,omitempty" db:"episode"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`

	// Folder display fields joined in on single-note reads, not stored
	// on the note itself.
	FolderName  string `json:"folder_name,omitempty"`
	FolderIcon  string `json:"folder_icon,omitempty"`
	FolderColor string `json:"folder_color,omitempty"`
}

// NoteMeta is note metadata without content, used in folder listings and
// the tree.
type NoteMeta struct {
	ID        string    `json:"id" db:"id"`
	FolderID  string    `json:"folder_id" db:"folder_id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Episode   *int      `json:"episode,omitempty" db:"episode"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NotePage is one page of a note listing.
type NotePage struct {
	Notes      []Note     `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the page window of a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
