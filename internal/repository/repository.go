// Package repository implements the persistence layer over gorm. Each
// repository translates gorm's storage errors into the application error
// taxonomy so the services never see driver details.
package repository

import (
	"errors"
	"fmt"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"gorm.io/gorm"
)

func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s not found", apperrors.ErrNotFound, what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s already exists", apperrors.ErrConflict, what)
	default:
		return err
	}
}
