package errors

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg says no"}
}

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		state string
		want  ErrorCode
	}{
		{pgErrUniqueViolation, ErrorCodeDuplicateKey},
		{pgErrForeignKeyViolation, ErrorCodeInvalidArgument},
		{pgErrNotNullViolation, ErrorCodeValidation},
		{pgErrCheckViolation, ErrorCodeValidation},
		{pgErrInvalidTextRepresentation, ErrorCodeInvalidArgument},
		{pgErrSerializationFailure, ErrorCodeDB},
		{pgErrCannotConnectNow, ErrorCodeUnavailable},
		{"99999", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.state))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v ok=%v, want %v", c.state, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("not pg")); ok {
		t.Fatalf("foreign error should report !ok")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}
	e := FromPostgres(pgErr(pgErrUniqueViolation), "like upsert")
	if !IsCode(e, ErrorCodeDuplicateKey) {
		t.Fatalf("unique violation should map to duplicate key: %v", e)
	}
	if !IsDuplicateKey(e) {
		t.Fatalf("IsDuplicateKey should see through the wrap")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatalf("nil is not retryable")
	}
	if IsRetryable(context.Canceled) || IsRetryable(context.DeadlineExceeded) {
		t.Fatalf("local cancellation is not retryable")
	}
	if !IsRetryable(pgErr(pgErrDeadlockDetected)) {
		t.Fatalf("deadlock should be retryable")
	}
	if IsRetryable(pgErr(pgErrUniqueViolation)) {
		t.Fatalf("unique violation is not retryable")
	}
	if !IsRetryable(stderrs.New("ERROR: deadlock detected (SQLSTATE 40P01)")) {
		t.Fatalf("text fallback should catch deadlock phrasing")
	}
}
