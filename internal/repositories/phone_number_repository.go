package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/noshow_platform/internal/models"
	"gorm.io/gorm"
)

// ErrPhoneNumberConflict indicates a record for that number already exists.
var ErrPhoneNumberConflict = errors.New("a record for this phone number already exists")

// ErrRecordNotFound indicates the requested record does not exist.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrPhoneNumberAlreadyAssigned indicates the conditional assignment update
// matched no rows because the number is already owned by an assistant.
var ErrPhoneNumberAlreadyAssigned = errors.New("phone number is already assigned to an assistant")

// PhoneNumberRepository defines the Number Store access layer.
type PhoneNumberRepository interface {
	CreatePhoneNumber(ctx context.Context, phoneNumber *models.PhoneNumber) (*models.PhoneNumber, error)
	GetAllPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	GetUnassignedPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	GetPhoneNumbersByAssistant(ctx context.Context, assistantID string) ([]models.PhoneNumber, error)
	GetPhoneNumberByID(ctx context.Context, id int64) (*models.PhoneNumber, error)
	GetPhoneNumberByNumber(ctx context.Context, number string) (*models.PhoneNumber, error)
	GetPhoneNumberByCarrierRef(ctx context.Context, carrierRef string) (*models.PhoneNumber, error)
	// AssignPhoneNumber sets is_assigned/assistant_id in one conditional UPDATE.
	// It returns ErrPhoneNumberAlreadyAssigned when the row exists but is
	// already owned, so concurrent assignment attempts cannot both succeed.
	AssignPhoneNumber(ctx context.Context, id int64, assistantID string) (*models.PhoneNumber, error)
	// UnassignPhoneNumber clears both assignment fields. Idempotent.
	UnassignPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error)
	// DeletePhoneNumber removes the rows matching the provided identifiers
	// (number and/or carrier ref; at least one must be non-empty) and
	// returns the rows it removed.
	DeletePhoneNumber(ctx context.Context, number, carrierRef string) ([]models.PhoneNumber, error)
}

// gormPhoneNumberRepository is the GORM implementation of PhoneNumberRepository.
type gormPhoneNumberRepository struct {
	db *gorm.DB
}

// NewGormPhoneNumberRepository creates a new gormPhoneNumberRepository instance.
func NewGormPhoneNumberRepository(db *gorm.DB) PhoneNumberRepository {
	return &gormPhoneNumberRepository{db: db}
}

// CreatePhoneNumber inserts a new phone number record.
// The number column is unique; a duplicate insert is reported as
// ErrPhoneNumberConflict rather than a generic store error.
func (r *gormPhoneNumberRepository) CreatePhoneNumber(ctx context.Context, phoneNumber *models.PhoneNumber) (*models.PhoneNumber, error) {
	var existing models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("number = ?", phoneNumber.Number).First(&existing).Error; err == nil {
		return nil, ErrPhoneNumberConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(phoneNumber).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") || strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			// lost the insert race against another request for the same number
			return nil, ErrPhoneNumberConflict
		}
		return nil, err
	}
	return phoneNumber, nil
}

// GetAllPhoneNumbers returns every row in the store, newest first.
func (r *gormPhoneNumberRepository) GetAllPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// GetUnassignedPhoneNumbers returns the shared pool of available numbers,
// most recently created first.
func (r *gormPhoneNumberRepository) GetUnassignedPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("is_assigned = ?", false).Order("created_at desc").Find(&numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// GetPhoneNumbersByAssistant returns the rows currently assigned to the given
// assistant. An empty result is not an error.
func (r *gormPhoneNumberRepository) GetPhoneNumbersByAssistant(ctx context.Context, assistantID string) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("assistant_id = ?", assistantID).Order("created_at desc").Find(&numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// GetPhoneNumberByID fetches a single row by primary key.
func (r *gormPhoneNumberRepository) GetPhoneNumberByID(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	var phoneNumber models.PhoneNumber
	if err := r.db.WithContext(ctx).First(&phoneNumber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &phoneNumber, nil
}

// GetPhoneNumberByNumber fetches a single row by its E.164 number string.
func (r *gormPhoneNumberRepository) GetPhoneNumberByNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	var phoneNumber models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &phoneNumber, nil
}

// GetPhoneNumberByCarrierRef fetches a single row by the carrier's identifier.
func (r *gormPhoneNumberRepository) GetPhoneNumberByCarrierRef(ctx context.Context, carrierRef string) (*models.PhoneNumber, error) {
	var phoneNumber models.PhoneNumber
	if err := r.db.WithContext(ctx).Where("carrier_ref = ?", carrierRef).First(&phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &phoneNumber, nil
}

// AssignPhoneNumber binds a number to an assistant with a single conditional
// UPDATE (WHERE id = ? AND is_assigned = false). The store evaluates the
// guard, so two concurrent requests race there and exactly one observes
// RowsAffected = 1; the loser is translated into
// ErrPhoneNumberAlreadyAssigned. A read-then-write pair would reintroduce
// the check-then-act race.
func (r *gormPhoneNumberRepository) AssignPhoneNumber(ctx context.Context, id int64, assistantID string) (*models.PhoneNumber, error) {
	result := r.db.WithContext(ctx).Model(&models.PhoneNumber{}).
		Where("id = ? AND is_assigned = ?", id, false).
		Updates(map[string]interface{}{
			"is_assigned":  true,
			"assistant_id": assistantID,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means either the row does not exist or it is already
		// assigned; a follow-up read distinguishes the two.
		var existing models.PhoneNumber
		if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRecordNotFound
			}
			return nil, err
		}
		return nil, ErrPhoneNumberAlreadyAssigned
	}

	var updated models.PhoneNumber
	if err := r.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// UnassignPhoneNumber clears is_assigned and assistant_id unconditionally.
// Unassigning an already-unassigned number succeeds as a no-op.
func (r *gormPhoneNumberRepository) UnassignPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	result := r.db.WithContext(ctx).Model(&models.PhoneNumber{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_assigned":  false,
			"assistant_id": nil,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var updated models.PhoneNumber
	if err := r.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePhoneNumber removes the rows matching the given number and/or carrier
// ref. Carrier-side release is deliberately not part of this method; the
// boundary layer composes the two legs and reports a partial success when
// they diverge.
func (r *gormPhoneNumberRepository) DeletePhoneNumber(ctx context.Context, number, carrierRef string) ([]models.PhoneNumber, error) {
	if number == "" && carrierRef == "" {
		return nil, errors.New("at least one of number or carrier ref is required")
	}

	query := r.db.WithContext(ctx).Model(&models.PhoneNumber{})
	if number != "" {
		query = query.Where("number = ?", number)
	}
	if carrierRef != "" {
		query = query.Where("carrier_ref = ?", carrierRef)
	}

	var matched []models.PhoneNumber
	if err := query.Find(&matched).Error; err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, ErrRecordNotFound
	}

	ids := make([]int64, 0, len(matched))
	for _, m := range matched {
		ids = append(ids, m.ID)
	}
	// Hard delete, so the unique index on number frees up for a later
	// re-import or re-purchase of the same number.
	if err := r.db.WithContext(ctx).Unscoped().Delete(&models.PhoneNumber{}, ids).Error; err != nil {
		return nil, err
	}
	return matched, nil
}
