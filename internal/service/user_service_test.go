package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dpletzke/LightBnB/internal/model"
)

// stubUserDao implements dao.UserDao for UserService tests
type stubUserDao struct {
	byID    map[int64]*model.User
	byEmail map[string]*model.User
	nextID  int64
}

func newStubUserDao() *stubUserDao {
	return &stubUserDao{byID: map[int64]*model.User{}, byEmail: map[string]*model.User{}}
}

func (s *stubUserDao) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.byID[id], nil
}

func (s *stubUserDao) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUserDao) Create(ctx context.Context, u *model.User) error {
	s.nextID++
	u.ID = s.nextID
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
	return nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newStubUserDao(), nil)

	u, err := svc.Create(context.Background(), "Eve Stanley", "eve@example.com", "s3cret")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected generated id")
	}
	if u.Password == "s3cret" {
		t.Fatal("expected password to be hashed before storage")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestLookupAbsentUserIsNotAnError(t *testing.T) {
	svc := NewUserService(newStubUserDao(), nil)

	u, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}

	u, err = svc.GetByID(context.Background(), 404)
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
	}
}

func TestLookupFindsCreatedUser(t *testing.T) {
	svc := NewUserService(newStubUserDao(), nil)

	created, err := svc.Create(context.Background(), "Eve", "eve@example.com", "pw")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetByEmail(context.Background(), "eve@example.com")
	if err != nil || got == nil || got.ID != created.ID {
		t.Fatalf("expected created user back, got (%+v, %v)", got, err)
	}

	got, err = svc.GetByID(context.Background(), created.ID)
	if err != nil || got == nil || got.Email != "eve@example.com" {
		t.Fatalf("expected created user back, got (%+v, %v)", got, err)
	}
}
