package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
)

// PostgresNoteRepository implements the NoteRepository interface. As with
// folders, owner_id is a mandatory filter on every query.
type PostgresNoteRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(config *RepositoryConfig) repositories.NoteRepository {
	return &PostgresNoteRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const noteColumns = "id, owner_id, folder_id, title, content, tags, highlights, drawings, category, episode, created_at, updated_at"

// Create creates a new note
func (r *PostgresNoteRepository) Create(ctx context.Context, note *models.Note) error {
	tags, highlights, drawings, err := marshalNoteBlobs(note)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, folder_id, title, content, tags, highlights, drawings, category, episode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, r.tables.Notes)

	err = GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		note.OwnerID,
		note.FolderID,
		note.Title,
		note.Content,
		tags,
		highlights,
		drawings,
		note.Category,
		note.Episode,
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

// GetByID retrieves a note owned by ownerID, with its folder's display
// fields joined in.
func (r *PostgresNoteRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Note, error) {
	query := fmt.Sprintf(`
		SELECT n.id, n.owner_id, n.folder_id, n.title, n.content, n.tags, n.highlights, n.drawings,
		       n.category, n.episode, n.created_at, n.updated_at,
		       COALESCE(f.name, ''), COALESCE(f.icon, ''), COALESCE(f.color, '')
		FROM %s n
		LEFT JOIN %s f ON f.id = n.folder_id AND f.owner_id = n.owner_id
		WHERE n.id = $1 AND n.owner_id = $2
	`, r.tables.Notes, r.tables.Folders)

	var note models.Note
	var tags, highlights, drawings []byte
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, ownerID).Scan(
		&note.ID,
		&note.OwnerID,
		&note.FolderID,
		&note.Title,
		&note.Content,
		&tags,
		&highlights,
		&drawings,
		&note.Category,
		&note.Episode,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.FolderName,
		&note.FolderIcon,
		&note.FolderColor,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	if err := unmarshalNoteBlobs(&note, tags, highlights, drawings); err != nil {
		return nil, err
	}

	return &note, nil
}

// Update updates a note
func (r *PostgresNoteRepository) Update(ctx context.Context, note *models.Note) error {
	tags, highlights, drawings, err := marshalNoteBlobs(note)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, title = $2, content = $3, tags = $4, highlights = $5,
		    drawings = $6, category = $7, episode = $8, updated_at = $9
		WHERE id = $10 AND owner_id = $11
	`, r.tables.Notes)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		note.FolderID,
		note.Title,
		note.Content,
		tags,
		highlights,
		drawings,
		note.Category,
		note.Episode,
		note.UpdatedAt,
		note.ID,
		note.OwnerID,
	)

	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", note.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a note owned by ownerID
func (r *PostgresNoteRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Notes)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns one page of notes plus the total match count. Search is a
// case-insensitive substring match over title and content.
func (r *PostgresNoteRepository) List(ctx context.Context, ownerID string, opts repositories.NoteListOptions) ([]models.Note, int, error) {
	where := "owner_id = $1"
	args := []interface{}{ownerID}

	if opts.Search != "" {
		where += " AND (title ILIKE $2 OR content ILIKE $2)"
		args = append(args, "%"+opts.Search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, r.tables.Notes, where)

	var total int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	offset := (opts.Page - 1) * opts.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d
	`, noteColumns, r.tables.Notes, where, opts.Limit, offset)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, *note)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, total, nil
}

// ListMetaByFolder lists note metadata inside one folder, ordered by
// episode ascending (NULLs last) then created_at descending.
func (r *PostgresNoteRepository) ListMetaByFolder(ctx context.Context, folderID, ownerID string) ([]models.NoteMeta, error) {
	query := fmt.Sprintf(`
		SELECT id, folder_id, title, category, episode, updated_at
		FROM %s
		WHERE folder_id = $1 AND owner_id = $2
		ORDER BY episode ASC NULLS LAST, created_at DESC
	`, r.tables.Notes)

	return r.queryNoteMeta(ctx, query, folderID, ownerID)
}

// GetAllMetaByOwner retrieves metadata for every note of one owner
func (r *PostgresNoteRepository) GetAllMetaByOwner(ctx context.Context, ownerID string) ([]models.NoteMeta, error) {
	query := fmt.Sprintf(`
		SELECT id, folder_id, title, category, episode, updated_at
		FROM %s
		WHERE owner_id = $1
		ORDER BY episode ASC NULLS LAST, created_at DESC
	`, r.tables.Notes)

	return r.queryNoteMeta(ctx, query, ownerID)
}

// DeleteByFolder deletes every note directly inside a folder
func (r *PostgresNoteRepository) DeleteByFolder(ctx context.Context, folderID, ownerID string) (int, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE folder_id = $1 AND owner_id = $2
	`, r.tables.Notes)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, folderID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete notes in folder: %w", err)
	}

	return int(result.RowsAffected()), nil
}

func (r *PostgresNoteRepository) queryNoteMeta(ctx context.Context, query string, args ...interface{}) ([]models.NoteMeta, error) {
	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list note metadata: %w", err)
	}
	defer rows.Close()

	var metas []models.NoteMeta
	for rows.Next() {
		var meta models.NoteMeta
		err := rows.Scan(
			&meta.ID,
			&meta.FolderID,
			&meta.Title,
			&meta.Category,
			&meta.Episode,
			&meta.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan note metadata: %w", err)
		}
		metas = append(metas, meta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note metadata: %w", err)
	}

	return metas, nil
}

func scanNote(row pgx.Row) (*models.Note, error) {
	var note models.Note
	var tags, highlights, drawings []byte
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.FolderID,
		&note.Title,
		&note.Content,
		&tags,
		&highlights,
		&drawings,
		&note.Category,
		&note.Episode,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan note: %w", err)
	}

	if err := unmarshalNoteBlobs(&note, tags, highlights, drawings); err != nil {
		return nil, err
	}

	return &note, nil
}

// marshalNoteBlobs encodes the JSONB columns. Marshaling in the repository
// keeps the models free of storage concerns.
func marshalNoteBlobs(note *models.Note) (tags, highlights, drawings []byte, err error) {
	if note.Tags == nil {
		note.Tags = []string{}
	}
	if note.Highlights == nil {
		note.Highlights = []models.Highlight{}
	}
	if note.Drawings == nil {
		note.Drawings = []models.Drawing{}
	}

	if tags, err = json.Marshal(note.Tags); err != nil {
		return nil, nil, nil, fmt.Errorf("encode tags: %w", err)
	}
	if highlights, err = json.Marshal(note.Highlights); err != nil {
		return nil, nil, nil, fmt.Errorf("encode highlights: %w", err)
	}
	if drawings, err = json.Marshal(note.Drawings); err != nil {
		return nil, nil, nil, fmt.Errorf("encode drawings: %w", err)
	}
	return tags, highlights, drawings, nil
}

func unmarshalNoteBlobs(note *models.Note, tags, highlights, drawings []byte) error {
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	if err := json.Unmarshal(highlights, &note.Highlights); err != nil {
		return fmt.Errorf("decode highlights: %w", err)
	}
	if err := json.Unmarshal(drawings, &note.Drawings); err != nil {
		return fmt.Errorf("decode drawings: %w", err)
	}
	return nil
}
