package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dpletzke/LightBnB/internal/model"
)

type UserDao interface {
	// GetByID returns (nil, nil) when no user has the id.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

type userDao struct{ db *gorm.DB }

func NewUserDao(db *gorm.DB) UserDao { return &userDao{db: db} }

func (d *userDao) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (d *userDao) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (d *userDao) Create(ctx context.Context, u *model.User) error {
	return d.db.WithContext(ctx).Create(u).Error
}
