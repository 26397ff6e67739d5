package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors surfaced by repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	// ErrInvalidValue covers values the schema rejects: too long, not null, check constraints.
	ErrInvalidValue = errors.New("invalid value")
)

// MapPgError translates common Postgres error codes to domain errors.
// Only codes handled at higher layers are mapped; everything else passes through.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrConflict
		case pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.NotNullViolation,
			pgerrcode.CheckViolation:
			return ErrInvalidValue
		}
	}
	return err
}
