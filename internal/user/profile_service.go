package user

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"profnet/internal/common"
	"profnet/internal/dbmysql"
	"profnet/pkg/errors"
)

func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	start, err := common.ParseDate(startDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := common.ParseDate(endDate)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, errors.ErrDateRangeInverted
	}
	return start, end, nil
}

func (s *userService) AddWorkExperience(ctx context.Context, userID uint64, company, role, location, startDate, endDate string) (*dbmysql.WorkExperience, error) {
	if company == "" || role == "" {
		return nil, errors.InvalidArg("company and role are required")
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entry := &dbmysql.WorkExperience{
		UserID:    userID,
		Company:   company,
		Role:      role,
		Location:  location,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.profileRepo.AddWorkExperience(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateWorkExperience rewrites one of the caller's own entries. Empty
// fields keep their stored value; dates are replaced when given.
func (s *userService) UpdateWorkExperience(ctx context.Context, userID, entryID uint64, company, role, location, startDate, endDate string) error {
	entry, err := s.profileRepo.GetWorkExperience(ctx, userID, entryID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrProfileEntryNotFound
		}
		return err
	}

	if company != "" {
		entry.Company = company
	}
	if role != "" {
		entry.Role = role
	}
	if location != "" {
		entry.Location = location
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return err
	}
	if start != nil {
		entry.StartDate = start
	}
	if end != nil {
		entry.EndDate = end
	}

	return s.profileRepo.SaveWorkExperience(ctx, entry)
}

func (s *userService) ListWorkExperience(ctx context.Context, userID uint64) ([]*dbmysql.WorkExperience, error) {
	return s.profileRepo.ListWorkExperience(ctx, userID)
}

func (s *userService) DeleteWorkExperience(ctx context.Context, userID, entryID uint64) error {
	err := s.profileRepo.DeleteWorkExperience(ctx, userID, entryID)
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrProfileEntryNotFound
	}
	return err
}

func (s *userService) AddEducation(ctx context.Context, userID uint64, institution, degree, major, startDate, endDate string) (*dbmysql.Education, error) {
	if institution == "" {
		return nil, errors.InvalidArg("institution is required")
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	entry := &dbmysql.Education{
		UserID:      userID,
		Institution: institution,
		Degree:      degree,
		Major:       major,
		StartDate:   start,
		EndDate:     end,
	}
	if err := s.profileRepo.AddEducation(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *userService) ListEducation(ctx context.Context, userID uint64) ([]*dbmysql.Education, error) {
	return s.profileRepo.ListEducation(ctx, userID)
}

func (s *userService) DeleteEducation(ctx context.Context, userID, entryID uint64) error {
	err := s.profileRepo.DeleteEducation(ctx, userID, entryID)
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrProfileEntryNotFound
	}
	return err
}
