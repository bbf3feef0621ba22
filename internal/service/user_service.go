package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dpletzke/LightBnB/internal/dao"
	"github.com/dpletzke/LightBnB/internal/logging"
	"github.com/dpletzke/LightBnB/internal/metrics"
	"github.com/dpletzke/LightBnB/internal/model"
)

type UserService struct {
	dao     dao.UserDao
	metrics *metrics.Metrics
}

func NewUserService(d dao.UserDao, m *metrics.Metrics) *UserService {
	return &UserService{dao: d, metrics: m}
}

// Create stores a new user. The password is bcrypt-hashed before it reaches
// the database; the returned user carries the generated id.
func (s *UserService) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{Name: name, Email: email, Password: string(hash)}

	start := time.Now()
	err = s.dao.Create(ctx, u)
	s.metrics.ObserveQuery("user_create", start, err)
	if err != nil {
		return nil, err
	}
	logging.Info(ctx, "user created", zap.Int64("user_id", u.ID))
	return u, nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()
	u, err := s.dao.GetByID(ctx, id)
	s.metrics.ObserveQuery("user_lookup", start, err)
	return u, err
}

// GetByEmail returns (nil, nil) when the email is unknown.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	u, err := s.dao.GetByEmail(ctx, email)
	s.metrics.ObserveQuery("user_lookup", start, err)
	return u, err
}
