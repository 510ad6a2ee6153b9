package service

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	cryptoService "github.com/allisson/resumevault/internal/crypto/service"
)

// recordCodec implements RecordCodec on top of a FieldCipher.
type recordCodec struct {
	fieldCipher cryptoService.FieldCipher
	parallelism int
}

// NewRecordCodec creates a RecordCodec. Batch decoding runs at most
// GOMAXPROCS decryptions at a time.
func NewRecordCodec(fieldCipher cryptoService.FieldCipher) RecordCodec {
	return &recordCodec{
		fieldCipher: fieldCipher,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

func (r *recordCodec) ToStorage(candidate *candidateDomain.Candidate) (*candidateDomain.StoredCandidate, error) {
	name, err := r.fieldCipher.Encrypt(candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt name: %w", err)
	}

	email, err := r.fieldCipher.Encrypt(candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt email: %w", err)
	}

	return &candidateDomain.StoredCandidate{
		ID:        candidate.ID,
		Name:      name,
		Email:     email,
		Profile:   candidate.Profile,
		CreatedAt: candidate.CreatedAt,
	}, nil
}

func (r *recordCodec) FromStorage(stored *candidateDomain.StoredCandidate) (*candidateDomain.Candidate, error) {
	name, err := r.fieldCipher.Decrypt(stored.Name)
	if err != nil {
		return nil, err
	}

	email, err := r.fieldCipher.Decrypt(stored.Email)
	if err != nil {
		return nil, err
	}

	return &candidateDomain.Candidate{
		ID:        stored.ID,
		Name:      name,
		Email:     email,
		Profile:   stored.Profile,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (r *recordCodec) FromStorageBatch(
	ctx context.Context,
	stored []*candidateDomain.StoredCandidate,
) ([]*candidateDomain.Candidate, []uuid.UUID, error) {
	results := make([]*candidateDomain.Candidate, len(stored))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, record := range stored {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// A failed record keeps its nil slot and is reported below.
			results[i], _ = r.FromStorage(record)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	decoded := make([]*candidateDomain.Candidate, 0, len(stored))
	var dropped []uuid.UUID
	for i, candidate := range results {
		if candidate == nil {
			dropped = append(dropped, stored[i].ID)
			continue
		}
		decoded = append(decoded, candidate)
	}

	return decoded, dropped, nil
}
