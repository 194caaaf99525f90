package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/pkg/database"
)

// userRepository reads the access system's personnel view.
type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, code, name, username, fond_percent, role_admin, role_hip, department`

// FindByUsername implements user.UserRepository.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (user.UserInfo, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM view_users WHERE username = $1`, username)
	info, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.UserInfo{}, user.ErrUserNotFound
		}
		return user.UserInfo{}, fmt.Errorf("failed to get user: %w", err)
	}
	return info, nil
}

// FindAll implements user.UserRepository.
func (r *userRepository) FindAll(ctx context.Context) ([]user.UserInfo, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM view_users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// FindAllByDepartment implements user.UserRepository.
func (r *userRepository) FindAllByDepartment(ctx context.Context, department string) ([]user.UserInfo, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+userColumns+` FROM view_users WHERE department = $1 ORDER BY username`, department)
	if err != nil {
		return nil, fmt.Errorf("failed to query department users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUser(row pgx.Row) (user.UserInfo, error) {
	var info user.UserInfo
	err := row.Scan(
		&info.ID, &info.Code, &info.Name, &info.Username,
		&info.FondPercent, &info.RoleAdmin, &info.RoleHip, &info.Department,
	)
	return info, err
}

func scanUsers(rows pgx.Rows) ([]user.UserInfo, error) {
	var users []user.UserInfo
	for rows.Next() {
		info, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, info)
	}
	return users, rows.Err()
}
