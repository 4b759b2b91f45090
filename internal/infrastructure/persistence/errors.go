package persistence

import (
	"errors"

	"github.com/pizzeria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps driver errors onto the domain taxonomy. It relies on gorm's
// TranslateError so the classification is by error identity, never by message text.
// conflictMsg is used for unique violations; op describes the failed operation.
func translateError(err error, entity, conflictMsg, op string) error {
	if err == nil {
		return nil
	}

	var domainErr *shared.DomainError
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if conflictMsg == "" {
			conflictMsg = entity + " already exists"
		}
		return shared.NewConflictError(conflictMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewConflictError(entity + " references a record that does not exist or is still referenced")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return shared.NewValidationError(entity + " violates a value constraint")
	default:
		return shared.NewStoreError(op, err)
	}
}

// requireRowsAffected converts a zero-row write into a not-found error
func requireRowsAffected(result *gorm.DB, entity, op string) error {
	if result.Error != nil {
		return translateError(result.Error, entity, "", op)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(entity)
	}
	return nil
}
