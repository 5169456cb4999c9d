package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of pgx shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const employeeColumns = `id, name, COALESCE(email, ''), COALESCE(position, ''), COALESCE(phone, ''), active, created_at`

// EmployeeRepository is the PostgreSQL employee.Store.
type EmployeeRepository struct {
	db Queryer
}

var _ employee.Store = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db Queryer) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Insert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	const query = `
		INSERT INTO employees (name, email, position, phone, active, created_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING ` + employeeColumns

	row := r.db.QueryRow(ctx, query, e.Name, e.Email, e.Position, e.Phone, e.Active, e.CreatedAt)
	created, err := scanEmployee(row)
	if err != nil {
		return employee.Employee{}, translateEmployeePgError("insert employee", err)
	}
	return created, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError("find employee", err)
	}
	return found, nil
}

func (r *EmployeeRepository) FindByIDAndActive(ctx context.Context, id int64) (employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND active`

	found, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError("find active employee", err)
	}
	return found, nil
}

func (r *EmployeeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check employee exists: %w", err)
	}
	return exists, nil
}

// Save overwrites the record identified by e.ID. created_at is left untouched.
func (r *EmployeeRepository) Save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	const query = `
		UPDATE employees
		SET name = $2, email = NULLIF($3, ''), position = NULLIF($4, ''), phone = NULLIF($5, ''), active = $6
		WHERE id = $1
		RETURNING ` + employeeColumns

	row := r.db.QueryRow(ctx, query, e.ID, e.Name, e.Email, e.Position, e.Phone, e.Active)
	saved, err := scanEmployee(row)
	if err != nil {
		return employee.Employee{}, translateEmployeePgError("save employee", err)
	}
	return saved, nil
}

func (r *EmployeeRepository) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE active ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return out, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Phone, &e.Active, &e.CreatedAt)
	return e, err
}

// translateEmployeePgError maps driver errors onto the store sentinels,
// keeping the original error in the chain.
func translateEmployeePgError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, employee.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && sqlerr.MapCode(pgErr.Code) == sqlerr.UniqueViolation {
		return fmt.Errorf("%s: %w: %w", op, employee.ErrDuplicateKey, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
