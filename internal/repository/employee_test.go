package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
)

var employeeRowColumns = []string{"id", "name", "email", "position", "phone", "active", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestEmployeeRepositoryInsert(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees (name, email, position, phone, active, created_at)")).
		WithArgs("Alice", "alice@example.com", "", "", true, createdAt).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(int64(1), "Alice", "alice@example.com", "", "", true, createdAt))

	got, err := repo.Insert(context.Background(), employee.Employee{
		Name:      "Alice",
		Email:     "alice@example.com",
		Active:    true,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got.ID != 1 || !got.Active || !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected employee: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryInsertDuplicate(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Alice", "alice@example.com", "", "", true, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	_, err := repo.Insert(context.Background(), employee.Employee{
		Name:      "Alice",
		Email:     "alice@example.com",
		Active:    true,
		CreatedAt: time.Now(),
	})
	if !errors.Is(err, employee.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatal("driver error should stay in the chain")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryFindByIDAndActiveNotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1 AND active")).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByIDAndActive(context.Background(), 9)
	if !errors.Is(err, employee.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryFindByIDReturnsInactive(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(int64(3), "Bob", "", "Clerk", "", false, createdAt))

	got, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Active || got.Position != "Clerk" {
		t.Fatalf("unexpected employee: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryExistsByID(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByID(context.Background(), 4)
	if err != nil || !exists {
		t.Fatalf("ExistsByID = %v, %v", exists, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositorySaveDoesNotWriteCreatedAt(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE employees")).
		WithArgs(int64(2), "Carol", "", "Lead", "+14155550100", true).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(int64(2), "Carol", "", "Lead", "+14155550100", true, createdAt))

	got, err := repo.Save(context.Background(), employee.Employee{
		ID:       2,
		Name:     "Carol",
		Position: "Lead",
		Phone:    "+14155550100",
		Active:   true,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v", got.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryFindAllActive(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE active ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).
			AddRow(int64(1), "Alice", "", "", "", true, createdAt).
			AddRow(int64(3), "Carol", "", "", "", true, createdAt))

	got, err := repo.FindAllActive(context.Background())
	if err != nil {
		t.Fatalf("FindAllActive: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected employees: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryFindAllActiveEmpty(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE active ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	got, err := repo.FindAllActive(context.Background())
	if err != nil {
		t.Fatalf("FindAllActive: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
