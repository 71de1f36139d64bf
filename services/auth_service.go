package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

func RegisterUser(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if user.Password == "" || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// UpsertGoogleUser creates the account on first Google sign-in; a
// password account with the same email is linked instead of duplicated.
func UpsertGoogleUser(googleID, email, name string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("google_id = ? AND google_id <> ''", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = config.DB.Where("email = ?", email).First(&user).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{GoogleID: googleID, Email: email, Name: name}
		if err := config.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.GoogleID == "" {
		user.GoogleID = googleID
		if err := config.DB.Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}
