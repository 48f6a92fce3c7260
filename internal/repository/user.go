package repository

import (
	"context"

	"netracare-go/internal/database"
	"netracare-go/internal/models"
)

func CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	user := &models.User{Name: name, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := database.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := database.DB.WithContext(ctx).Where("email = ?", email).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := database.DB.WithContext(ctx).First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserProfile(ctx context.Context, id int, name string, age *int, sex *string) error {
	return database.DB.WithContext(ctx).Model(&models.User{ID: id}).
		Updates(map[string]interface{}{"name": name, "age": age, "sex": sex}).Error
}

func UpdateUserPassword(ctx context.Context, id int, password string) error {
	user := &models.User{}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{ID: id}).
		Update("password_hash", user.PasswordHash).Error
}

// DeleteUser removes the user and every test record they own.
func DeleteUser(ctx context.Context, id int) error {
	tx := database.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	for _, model := range []interface{}{&models.EyeTrackingTest{}, &models.ColourVisionTest{}, &models.VisualAcuityTest{}} {
		if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	if err := tx.Delete(&models.User{}, id).Error; err != nil {
		return err
	}
	return tx.Commit().Error
}
