package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
)

// DB is the query surface shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// track opens a span for a store operation and returns a func that records
// its outcome. Domain errors (not found, conflict) are not counted as failures.
func track(ctx context.Context, operation string) (context.Context, func(err error)) {
	ctx, span := tracing.StartSpan(ctx, "postgres."+operation,
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", operation),
	)
	start := time.Now()

	return ctx, func(err error) {
		duration := metrics.MeasureDuration(start)

		status := "success"
		var spanErr error
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrStore):
			status = "error"
			spanErr = err
		default:
			status = "rejected"
		}

		metrics.RecordDBOperation(operation, status, duration)
		if spanErr != nil {
			logger.LogAPICall(ctx, "postgres", operation, status, duration, zap.Error(err))
		} else {
			logger.LogAPICall(ctx, "postgres", operation, status, duration)
		}
		tracing.EndSpan(span, spanErr)
	}
}

// escapeLike escapes LIKE metacharacters so term matches literally
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// limitArg maps a zero limit to SQL NULL, which Postgres reads as LIMIT ALL
func limitArg(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
