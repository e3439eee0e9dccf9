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

type UserService interface {
	Register(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, name, email, birthdate string) error
	ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error
	IsNewAccount(ctx context.Context, userID uint64) (bool, error)

	AddWorkExperience(ctx context.Context, userID uint64, company, role, location, startDate, endDate string) (*dbmysql.WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, userID, entryID uint64, company, role, location, startDate, endDate string) error
	ListWorkExperience(ctx context.Context, userID uint64) ([]*dbmysql.WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, userID, entryID uint64) error

	AddEducation(ctx context.Context, userID uint64, institution, degree, major, startDate, endDate string) (*dbmysql.Education, error)
	ListEducation(ctx context.Context, userID uint64) ([]*dbmysql.Education, error)
	DeleteEducation(ctx context.Context, userID, entryID uint64) error
}

type userService struct {
	userRepo         UserRepository
	profileRepo      ProfileRepository
	newAccountWindow time.Duration
}

func NewUserService(userRepo UserRepository, profileRepo ProfileRepository, newAccountDays int) UserService {
	return &userService{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		newAccountWindow: time.Duration(newAccountDays) * 24 * time.Hour,
	}
}

func (s *userService) Register(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", errors.ErrHandleTaken
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Handle:       handle,
		Email:        email,
		PasswordHash: hashed,
		Status:       "active",
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	if handle == "" || password == "" {
		return nil, "", errors.InvalidArg("handle and password required")
	}

	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.ErrUserNotFound
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", errors.ErrInvalidPassword
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, name, email, birthdate string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return err
		}
		user.Email = email
	}
	if birthdate != "" {
		parsed, err := common.ParseBirthdate(birthdate)
		if err != nil {
			return err
		}
		user.Birthdate = parsed
	}

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return err
	}

	if err := common.CheckPassword(oldPassword, user.PasswordHash); err != nil {
		return errors.ErrInvalidPassword
	}
	if err := common.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := common.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed

	return s.userRepo.UpdateUser(ctx, user)
}

// IsNewAccount backs the messaging gate's relaxed-cap policy: accounts
// younger than the configured window are classified as new.
func (s *userService) IsNewAccount(ctx context.Context, userID uint64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.ErrUserNotFound
		}
		return false, err
	}
	return time.Since(user.CreatedAt) < s.newAccountWindow, nil
}
