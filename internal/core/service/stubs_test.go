package service

import (
	"context"
	"strconv"
	"time"

	"github.com/techstore/storefront-api/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository for service tests.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) ListCreatedSince(_ context.Context, since time.Time) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if !u.CreatedAt.Before(since) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

type stubProductRepo struct {
	count int64
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return r.count, nil
}

type stubOrderRepo struct {
	orders []*domain.Order
}

func (r *stubOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) ListCreatedSince(_ context.Context, since time.Time) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubSettingsRepo struct {
	stored *domain.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if r.stored == nil {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, settings *domain.Settings) error {
	clone := *settings
	r.stored = &clone
	return nil
}
