package persistence

import (
	"errors"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// first loads one row into dest, mapping a missing row to notFound
func first(query *gorm.DB, dest any, notFound error) error {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return err
	}
	return nil
}

// deleteByID removes the row of model with id, NOT_FOUND when nothing was deleted
func deleteByID(db *gorm.DB, model any, id uuid.UUID, notFound error) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func count(query *gorm.DB) (int64, error) {
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func exists(query *gorm.DB) (bool, error) {
	n, err := count(query)
	return n > 0, err
}

// nextNumber allocates the next sequential number of table. PostgreSQL
// draws from the <table>_number_seq sequence created by the migrations;
// SQLite, which runs with a single connection, uses MAX(number)+1.
func nextNumber(db *gorm.DB, table string) (int64, error) {
	var n int64
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		if err := db.Raw("SELECT nextval(?::regclass)", table+"_number_seq").Scan(&n).Error; err != nil {
			return 0, err
		}
		return n, nil
	}
	if err := db.Table(table).Select("COALESCE(MAX(number), 0) + 1").Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// versioned is implemented by every aggregate root
type versioned interface {
	IsNew() bool
	PersistedVersion() int
	MarkPersisted()
}

// saveVersioned inserts a new aggregate or updates an existing one on the
// condition that the stored version is the one it was loaded with.
func saveVersioned(db *gorm.DB, model any, agg versioned, omit ...string) error {
	if len(omit) > 0 {
		db = db.Omit(omit...)
	}
	if agg.IsNew() {
		if err := db.Create(model).Error; err != nil {
			return translateError(err)
		}
		agg.MarkPersisted()
		return nil
	}

	result := db.Model(model).Where("version = ?", agg.PersistedVersion()).Select("*").Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	agg.MarkPersisted()
	return nil
}

// translateError maps constraint violations to domain errors
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewDomainError("INVALID_REFERENCE", "A referenced record does not exist or is still in use")
	}
	return err
}

var errInvalidFilter = shared.NewDomainError("INVALID_FILTER", "Invalid filter value")
