package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type contactRepo struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Save inserts a contact message and populates its timestamps from the
// RETURNING clause. The insert is a single atomic statement; a failed
// write leaves no partial state behind.
func (r *contactRepo) Save(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, company, subject, message, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Company,
		msg.Subject, msg.Message, msg.IP, msg.UserAgent,
	).Scan(&msg.CreatedAt, &msg.UpdatedAt)
}
