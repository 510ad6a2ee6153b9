package repository

import (
	"context"
	"database/sql"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	"github.com/allisson/resumevault/internal/database"
	apperrors "github.com/allisson/resumevault/internal/errors"
)

// PostgreSQLCandidateRepository implements candidate persistence for PostgreSQL databases.
type PostgreSQLCandidateRepository struct {
	db *sql.DB
}

// Create inserts a new candidate into the PostgreSQL database.
func (p *PostgreSQLCandidateRepository) Create(
	ctx context.Context,
	candidate *candidateDomain.StoredCandidate,
) error {
	querier := database.GetTx(ctx, p.db)

	columns, err := marshalProfile(candidate.Profile)
	if err != nil {
		return err
	}

	query := `INSERT INTO candidates (id, name_ciphertext, name_nonce, name_auth_tag,
			  email_ciphertext, email_nonce, email_auth_tag, education, experience, skills, summary, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = querier.ExecContext(
		ctx,
		query,
		candidate.ID,
		candidate.Name.Ciphertext,
		candidate.Name.Nonce,
		candidate.Name.AuthTag,
		candidate.Email.Ciphertext,
		candidate.Email.Nonce,
		candidate.Email.AuthTag,
		columns.education,
		columns.experience,
		columns.skills,
		candidate.Summary,
		candidate.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create candidate")
	}
	return nil
}

// ListAll returns every stored candidate ordered by creation time.
func (p *PostgreSQLCandidateRepository) ListAll(ctx context.Context) ([]*candidateDomain.StoredCandidate, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name_ciphertext, name_nonce, name_auth_tag,
			  email_ciphertext, email_nonce, email_auth_tag, education, experience, skills, summary, created_at
			  FROM candidates
			  ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list candidates")
	}
	defer func() {
		_ = rows.Close()
	}()

	candidates := make([]*candidateDomain.StoredCandidate, 0)
	for rows.Next() {
		var candidate candidateDomain.StoredCandidate
		var education, experience, skills []byte
		var summary string

		err := rows.Scan(
			&candidate.ID,
			&candidate.Name.Ciphertext,
			&candidate.Name.Nonce,
			&candidate.Name.AuthTag,
			&candidate.Email.Ciphertext,
			&candidate.Email.Nonce,
			&candidate.Email.AuthTag,
			&education,
			&experience,
			&skills,
			&summary,
			&candidate.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan candidate")
		}

		candidate.Profile, err = unmarshalProfile(education, experience, skills, summary)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, &candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate candidates")
	}

	return candidates, nil
}

// NewPostgreSQLCandidateRepository creates a new PostgreSQL candidate repository instance.
func NewPostgreSQLCandidateRepository(db *sql.DB) *PostgreSQLCandidateRepository {
	return &PostgreSQLCandidateRepository{db: db}
}
