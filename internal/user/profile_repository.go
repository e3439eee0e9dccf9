package user

import (
	"context"

	"gorm.io/gorm"

	"profnet/internal/dbmysql"
)

// ProfileRepository stores the per-user work experience and education
// entries. Reads and deletes are scoped to the owning user.
type ProfileRepository interface {
	AddWorkExperience(ctx context.Context, entry *dbmysql.WorkExperience) error
	GetWorkExperience(ctx context.Context, userID, entryID uint64) (*dbmysql.WorkExperience, error)
	ListWorkExperience(ctx context.Context, userID uint64) ([]*dbmysql.WorkExperience, error)
	SaveWorkExperience(ctx context.Context, entry *dbmysql.WorkExperience) error
	DeleteWorkExperience(ctx context.Context, userID, entryID uint64) error

	AddEducation(ctx context.Context, entry *dbmysql.Education) error
	ListEducation(ctx context.Context, userID uint64) ([]*dbmysql.Education, error)
	DeleteEducation(ctx context.Context, userID, entryID uint64) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) AddWorkExperience(ctx context.Context, entry *dbmysql.WorkExperience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *profileRepository) GetWorkExperience(ctx context.Context, userID, entryID uint64) (*dbmysql.WorkExperience, error) {
	var entry dbmysql.WorkExperience
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *profileRepository) ListWorkExperience(ctx context.Context, userID uint64) ([]*dbmysql.WorkExperience, error) {
	var entries []*dbmysql.WorkExperience
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *profileRepository) SaveWorkExperience(ctx context.Context, entry *dbmysql.WorkExperience) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *profileRepository) DeleteWorkExperience(ctx context.Context, userID, entryID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&dbmysql.WorkExperience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, entry *dbmysql.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *profileRepository) ListEducation(ctx context.Context, userID uint64) ([]*dbmysql.Education, error) {
	var entries []*dbmysql.Education
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, entryID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&dbmysql.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
