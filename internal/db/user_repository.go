package db

import (
	"strings"

	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", normalize(email)).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindAdminByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.
		Where("username = ? AND role = ?", username, models.RoleAdmin).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsernameOrEmail(username string, email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ? OR lower(trim(email)) = ?", username, normalize(email)).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Create maps uniqueness violations on username/email to ErrDuplicate.
func (repo *UserRepository) Create(user *models.User) error {
	return translateWriteError(repo.database.Create(user).Error)
}

func (repo *UserRepository) List(limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
