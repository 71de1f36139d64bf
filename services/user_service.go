package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileIncomplete = errors.New("all profile fields are required")
)

type ProfileInput struct {
	Age              int     `json:"age"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Gender           string  `json:"gender"`
	ActivityLevel    string  `json:"activityLevel"`
	DailyCalorieGoal float64 `json:"dailyCalorieGoal"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile requires every field; a successful update marks the
// profile complete.
func (s *UserService) UpdateProfile(userID uint, in ProfileInput) (*models.User, error) {
	if in.Age <= 0 || in.Weight <= 0 || in.Height <= 0 ||
		in.Gender == "" || in.ActivityLevel == "" || in.DailyCalorieGoal <= 0 {
		return nil, ErrProfileIncomplete
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.Age = in.Age
	user.Weight = in.Weight
	user.Height = in.Height
	user.Gender = in.Gender
	user.ActivityLevel = in.ActivityLevel
	user.DailyCalorieGoal = in.DailyCalorieGoal
	user.ProfileComplete = true

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CalorieGoal estimates the daily calorie goal from the stored profile.
func (s *UserService) CalorieGoal(userID uint) (int, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return 0, err
	}
	return utils.EstimateDailyCalories(user.Age, user.Weight, user.Height, user.Gender, user.ActivityLevel)
}
