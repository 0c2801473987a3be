package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

var (
	ErrConflict           = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	FindByID(userID string) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindAdminByUsername(username string) (models.User, error)
	ExistsByUsernameOrEmail(username string, email string) (bool, error)
	Create(user *models.User) error
}

type AuthSettingsRepository interface {
	Upsert(userID string, settings models.UserSettings) (models.UserSettings, error)
}

type Registration struct {
	Username  string
	Email     string
	Password  string
	FullName  string
	City      string
	Latitude  float64
	Longitude float64
}

type AuthService struct {
	users       AuthUserRepository
	settings    AuthSettingsRepository
	credentials *CredentialService
}

func NewAuthService(users AuthUserRepository, settings AuthSettingsRepository, credentials *CredentialService) *AuthService {
	return &AuthService{users: users, settings: settings, credentials: credentials}
}

// Register creates the user plus their initial settings row. The pre-check
// yields a friendly conflict early; the unique constraints on username and
// email are the backstop when two identical registrations race.
func (service *AuthService) Register(registration Registration) (models.User, error) {
	taken, err := service.users.ExistsByUsernameOrEmail(registration.Username, registration.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrConflict
	}

	passwordHash, err := service.credentials.HashPassword(registration.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           models.NewID(),
		Username:     strings.TrimSpace(registration.Username),
		Email:        strings.ToLower(strings.TrimSpace(registration.Email)),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(registration.FullName),
		IsActive:     true,
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}

	settings := models.UserSettings{
		SelectedCity: registration.City,
		Latitude:     registration.Latitude,
		Longitude:    registration.Longitude,
		Preferences:  map[string]any{},
	}
	if settings.SelectedCity == "" {
		settings = models.DefaultSettings(user.ID)
	}
	if _, err := service.settings.Upsert(user.ID, settings); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Authenticate resolves the login email to an active user with a matching
// password. Missing user, bad password and deactivated account are
// indistinguishable to the caller.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !service.credentials.VerifyPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// AuthenticateAdmin is the username-based login for users carrying the
// admin role.
func (service *AuthService) AuthenticateAdmin(username string, password string) (models.User, error) {
	admin, err := service.users.FindAdminByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !service.credentials.VerifyPassword(password, admin.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return admin, nil
}

// RegisterAdmin creates a user with the admin role. Admins have no real
// mailbox, so the email is synthesized from the username.
func (service *AuthService) RegisterAdmin(username string, password string) (models.User, error) {
	passwordHash, err := service.credentials.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	admin := models.User{
		ID:           models.NewID(),
		Username:     strings.TrimSpace(username),
		Email:        fmt.Sprintf("%s@aerosense.admin", strings.TrimSpace(username)),
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&admin); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}
	return admin, nil
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	return service.users.FindByID(userID)
}
