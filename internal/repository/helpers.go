package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

// translateNotFound maps gorm's missing-row error onto the given typed error
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// fkTarget pairs a fragment of a foreign key constraint name with the error for its missing row
type fkTarget struct {
	fragment string
	notFound error
}

// translateForeignKey maps a foreign key violation onto the not-found error of the first target
// whose fragment appears in the constraint name. Other errors pass through.
func translateForeignKey(err error, targets ...fkTarget) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return err
	}
	for _, target := range targets {
		if strings.Contains(pgErr.ConstraintName, target.fragment) {
			return target.notFound
		}
	}
	return err
}
