package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

const messageViewColumns = `
	id, name, email, phone, subject, body, is_read, created_at`

func (r *MessageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	const query = `
		SELECT ` + messageViewColumns + `
		FROM contact_messages
		WHERE id = $1`

	view, err := scanMessageView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find message by ID", err)
	}

	return view, nil
}

func (r *MessageReadStore) Find(ctx context.Context, unreadOnly bool, limit, offset int32) ([]*queries.MessageView, error) {
	const query = `
		SELECT ` + messageViewColumns + `
		FROM contact_messages
		WHERE (NOT $1::bool OR NOT is_read)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, unreadOnly, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	result := []*queries.MessageView{}
	for rows.Next() {
		view, err := scanMessageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message rows", err)
	}

	return result, nil
}

func scanMessageView(row rowScanner) (*queries.MessageView, error) {
	var (
		view      queries.MessageView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Email,
		&view.Phone,
		&view.Subject,
		&view.Body,
		&view.IsRead,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
