package repository

import (
	"context"
	"database/sql"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	"github.com/allisson/resumevault/internal/database"
	apperrors "github.com/allisson/resumevault/internal/errors"
)

// MySQLCandidateRepository implements candidate persistence for MySQL databases.
type MySQLCandidateRepository struct {
	db *sql.DB
}

// Create inserts a new candidate into the MySQL database.
func (m *MySQLCandidateRepository) Create(
	ctx context.Context,
	candidate *candidateDomain.StoredCandidate,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := candidate.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal candidate id")
	}

	columns, err := marshalProfile(candidate.Profile)
	if err != nil {
		return err
	}

	query := `INSERT INTO candidates (id, name_ciphertext, name_nonce, name_auth_tag,
			  email_ciphertext, email_nonce, email_auth_tag, education, experience, skills, summary, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLCandidateRepository) ListAll(ctx context.Context) ([]*candidateDomain.StoredCandidate, error) {
	querier := database.GetTx(ctx, m.db)

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
		var id, education, experience, skills []byte
		var summary string

		err := rows.Scan(
			&id,
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

		if err := candidate.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal candidate id")
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

// NewMySQLCandidateRepository creates a new MySQL candidate repository instance.
func NewMySQLCandidateRepository(db *sql.DB) *MySQLCandidateRepository {
	return &MySQLCandidateRepository{db: db}
}
