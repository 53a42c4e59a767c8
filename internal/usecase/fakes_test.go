package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
)

type fakeUserStorage struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserStorage) UpdateUser(_ context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

type fakeItemStorage struct {
	items map[uuid.UUID]*domain.Item
	seq   int
}

func newFakeItemStorage() *fakeItemStorage {
	return &fakeItemStorage{items: make(map[uuid.UUID]*domain.Item)}
}

func (f *fakeItemStorage) CreateItem(_ context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	// Возрастающие отметки времени дают детерминированный порядок
	f.seq++
	item.CreatedAt = time.Unix(int64(f.seq), 0)
	item.UpdatedAt = item.CreatedAt
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItemStorage) GetItemByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	if it, ok := f.items[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeItemStorage) matching(filter domain.ItemFilter) []domain.Item {
	var result []domain.Item
	for _, it := range f.items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !it.IsAvailable {
			continue
		}
		result = append(result, *it)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (f *fakeItemStorage) ListItems(_ context.Context, filter domain.ItemFilter, page, perPage int) ([]domain.Item, error) {
	all := f.matching(filter)
	offset := (page - 1) * perPage
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeItemStorage) CountItems(_ context.Context, filter domain.ItemFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeItemStorage) UpdateItem(_ context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now()
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItemStorage) DeleteItem(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(hash, password string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) Verify(token string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return uuid.Nil, fmt.Errorf("bad token")
	}
	return uuid.Parse(raw)
}
