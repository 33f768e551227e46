package database

import (
	"errors"

	"pos-backend/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demo credential table for the shop's staff accounts
var demoUsers = []struct {
	Username string
	Email    string
	Password string
	Role     string
}{
	{"admin", "admin@islandtea.com", "admin123", model.RoleAdmin},
	{"cashier", "cashier@islandtea.com", "cashier123", model.RoleCashier},
	{"admin2", "admin2@islandtea.com", "admin456", model.RoleAdmin},
	{"cashier2", "cashier2@islandtea.com", "cashier456", model.RoleCashier},
}

// SeedDemoUsers creates the demo staff accounts if they do not exist yet.
// Passwords are bcrypt-hashed at seed time; existing accounts are left alone.
func SeedDemoUsers(db *gorm.DB, logger *logrus.Logger) error {
	for _, u := range demoUsers {
		var existing model.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := model.User{
			Username: u.Username,
			Email:    u.Email,
			Password: string(hashed),
			Role:     u.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{"email": u.Email, "role": u.Role}).Info("seeded demo user")
	}
	return nil
}
