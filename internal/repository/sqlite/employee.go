// Package sqlite is the SQLite employee.Store used for local runs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/mattn/go-sqlite3"
)

const employeeColumns = `id, name, COALESCE(email, ''), COALESCE(position, ''), COALESCE(phone, ''), active, created_at`

type EmployeeRepository struct {
	db *sql.DB
}

var _ employee.Store = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Insert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (name, email, position, phone, active, created_at)
		VALUES (?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), ?, ?)`,
		e.Name, e.Email, e.Position, e.Phone, e.Active, e.CreatedAt)
	if err != nil {
		return employee.Employee{}, translateError("insert employee", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return employee.Employee{}, translateError("find employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindByIDAndActive(ctx context.Context, id int64) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ? AND active = 1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return employee.Employee{}, translateError("find active employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check employee exists: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) Save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = NULLIF(?, ''), position = NULLIF(?, ''), phone = NULLIF(?, ''), active = ?
		WHERE id = ?`,
		e.Name, e.Email, e.Position, e.Phone, e.Active, e.ID)
	if err != nil {
		return employee.Employee{}, translateError("save employee", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("save employee: %w", err)
	}
	if n == 0 {
		return employee.Employee{}, fmt.Errorf("save employee: %w", employee.ErrRecordNotFound)
	}
	return r.FindByID(ctx, e.ID)
}

func (r *EmployeeRepository) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE active = 1 ORDER BY id`)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Phone, &e.Active, &e.CreatedAt)
	return e, err
}

func translateError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, employee.ErrRecordNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%s: %w: %w", op, employee.ErrDuplicateKey, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
