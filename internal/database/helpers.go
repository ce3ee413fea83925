package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Exists reports whether model has a row with the given primary key.
func Exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountWhere counts rows of model whose column equals value.
func CountWhere(tx *gorm.DB, model any, column string, value uint) (int64, error) {
	var count int64
	err := tx.Model(model).Where(column+" = ?", value).Count(&count).Error
	return count, err
}

// Restrict fails with ErrIntegrity when model still has rows pointing at
// the parent through column. what names the children in the error.
func Restrict(tx *gorm.DB, model any, column string, parentID uint, what string) error {
	count, err := CountWhere(tx, model, column, parentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: still referenced by %d %s", ErrIntegrity, count, what)
	}
	return nil
}
