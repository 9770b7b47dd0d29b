package postgres

import (
	"context"
	"errors"

	"dsmovie/user"

	"gorm.io/gorm"
)

// UserModel represents the database model for users
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Username string `gorm:"not null;unique"`
	Password string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// RoleModel represents the database model for roles
type RoleModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Authority string `gorm:"not null;unique"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel is the join table between users and roles
type UserRoleModel struct {
	UserID int64 `gorm:"column:user_id;primaryKey"`
	RoleID int64 `gorm:"column:role_id;primaryKey"`
}

// TableName specifies the table name for GORM
func (UserRoleModel) TableName() string {
	return "user_role"
}

// UserRepository implements user.Repository interface
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername fetches a user and its role set.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	roles, err := r.rolesForUser(ctx, model.ID)
	if err != nil {
		return user.User{}, err
	}

	return user.User{
		ID:           model.ID,
		Name:         model.Name,
		Username:     model.Username,
		PasswordHash: model.Password,
		Roles:        roles,
	}, nil
}

// SearchDetailsByUsername returns the flattened login projection, one row
// per (user, role) pair.
func (r *UserRepository) SearchDetailsByUsername(ctx context.Context, username string) ([]user.Detail, error) {
	const sql = `
SELECT users.username AS username,
       users.password AS password,
       roles.id AS role_id,
       roles.authority AS authority
FROM users
JOIN user_role ON user_role.user_id = users.id
JOIN roles ON roles.id = user_role.role_id
WHERE users.username = ?
ORDER BY roles.id`

	var rows []userDetailRow
	if err := r.db.WithContext(ctx).Raw(sql, username).Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]user.Detail, len(rows))
	for i, row := range rows {
		details[i] = user.Detail{
			Username:  row.Username,
			Password:  row.Password,
			RoleID:    row.RoleID,
			Authority: row.Authority,
		}
	}
	return details, nil
}

type userDetailRow struct {
	Username  string `gorm:"column:username"`
	Password  string `gorm:"column:password"`
	RoleID    int64  `gorm:"column:role_id"`
	Authority string `gorm:"column:authority"`
}

func (r *UserRepository) rolesForUser(ctx context.Context, userID int64) ([]user.Role, error) {
	const sql = `
SELECT roles.id AS id, roles.authority AS authority
FROM roles
JOIN user_role ON user_role.role_id = roles.id
WHERE user_role.user_id = ?
ORDER BY roles.id`

	var models []RoleModel
	if err := r.db.WithContext(ctx).Raw(sql, userID).Scan(&models).Error; err != nil {
		return nil, err
	}

	roles := make([]user.Role, len(models))
	for i, model := range models {
		roles[i] = user.Role{ID: model.ID, Authority: model.Authority}
	}
	return roles, nil
}
