// Package users provides database operations for users and their roles.
//
// Deleting a role deletes every user holding it.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	role, err := repo.CreateRole(ctx, "reader")
//	user, err := repo.CreateUser(ctx, "arjuna", "arjuna@example.com", &role.ID)
package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/entities"
)

var UserFilters = query.FilterSet{
	Exact: map[string]string{"role": "role_id"},
}

// Repository handles all user and role database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListRoles returns all roles ordered by id.
func (r *Repository) ListRoles(ctx context.Context) ([]entities.Role, error) {
	roles := []entities.Role{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

// GetRoleByID retrieves a role or returns database.ErrNotFound.
func (r *Repository) GetRoleByID(ctx context.Context, id uint) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &role, nil
}

// CreateRole creates a role with a unique name.
func (r *Repository) CreateRole(ctx context.Context, name string) (*entities.Role, error) {
	role := &entities.Role{Name: name}
	err := r.db.WithContext(ctx).Create(role).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, database.NewValidationError("name", "role with this name already exists.")
	}
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// DeleteRole deletes a role together with every user that holds it.
// It returns the number of users removed.
func (r *Repository) DeleteRole(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := database.Exists(tx, &entities.Role{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("role %d: %w", id, database.ErrNotFound)
		}
		result := tx.Where("role_id = ?", id).Delete(&entities.User{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return tx.Delete(&entities.Role{}, id).Error
	})
	return removed, err
}

// ListUsers returns users matching filter with their role loaded.
func (r *Repository) ListUsers(ctx context.Context, filter query.Filter) ([]entities.User, error) {
	users := []entities.User{}
	err := filter.Apply(r.db.WithContext(ctx).Preload("Role")).Find(&users).Error
	return users, err
}

// GetUserByID retrieves a user with its role.
func (r *Repository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

// CreateUser creates a user, optionally holding roleID.
func (r *Repository) CreateUser(ctx context.Context, username, email string, roleID *uint) (*entities.User, error) {
	user := &entities.User{Username: username, Email: email, RoleID: roleID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if roleID != nil {
			ok, err := database.Exists(tx, &entities.Role{}, *roleID)
			if err != nil {
				return err
			}
			if !ok {
				return database.NewValidationError("role", database.MissingReference(*roleID))
			}
		}
		err := tx.Omit("Role").Create(user).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return database.NewValidationError("username", "user with this username already exists.")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetUserByID(ctx, user.ID)
}

// DeleteUser removes a single user.
func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, database.ErrNotFound)
	}
	return nil
}
