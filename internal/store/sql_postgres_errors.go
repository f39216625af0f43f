package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement is worth repeating.
// Repositories attach it to their error logs; nothing retries automatically.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// retryablePgCodes are the connection (08), rollback (40) and
// cannot-connect-now (57P03) codes. Constraint, data and syntax errors fail
// the same way on every attempt.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports a 23505, raised for a taken username.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
