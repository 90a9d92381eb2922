package config

const (
	// MaxNoteTitleLength is the maximum length for note titles.
	MaxNoteTitleLength = 200

	// MaxNoteContentLength is the maximum length for note content in
	// characters. A megabyte of Markdown is far beyond any realistic
	// note; anything larger indicates a misbehaving client.
	MaxNoteContentLength = 1_000_000

	// MaxFolderNameLength is the maximum length for folder names.
	MaxFolderNameLength = 100

	// MaxFolderDescriptionLength is the maximum length for folder
	// descriptions.
	MaxFolderDescriptionLength = 500

	// MaxFolderIconLength is the maximum length for folder icons
	// (an emoji or short glyph string).
	MaxFolderIconLength = 10

	// MaxFolderDepth bounds recursion for cascade deletion and ancestor
	// walks. The folder chain shape is owner-controlled, so an unbounded
	// walk would let a pathological chain exhaust the stack.
	MaxFolderDepth = 1000

	// DefaultNotePageSize is the page size for note listings when the
	// client does not specify one.
	DefaultNotePageSize = 20

	// MaxNotePageSize caps the page size for note listings.
	MaxNotePageSize = 100
)
