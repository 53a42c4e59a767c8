package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func newItemUseCaseForTest(store *fakeItemStorage) ItemUseCase {
	return NewItemUseCase(store, slog.Default())
}

func validCreateInput() CreateItemInput {
	return CreateItemInput{
		Name:        "iPhone 13",
		Description: "Latest model of iPhone with advanced features",
		Category:    "Electronics",
		Price:       floatPtr(999.99),
	}
}

func TestCreateItem_OwnerForcedToCaller(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())
	owner := uuid.New()

	item, err := uc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, owner, item.OwnerID)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestCreateItem_MissingPrice(t *testing.T) {
	store := newFakeItemStorage()
	uc := newItemUseCaseForTest(store)

	input := validCreateInput()
	input.Price = nil

	_, err := uc.Create(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	// Хранилище не тронуто
	assert.Empty(t, store.items)
}

func TestCreateItem_ZeroPriceAllowed(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	input := validCreateInput()
	input.Price = floatPtr(0)

	item, err := uc.Create(context.Background(), uuid.New(), input)
	require.NoError(t, err)
	assert.Equal(t, float64(0), item.Price)
}

func TestCreateItem_Defaults(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	item, err := uc.Create(context.Background(), uuid.New(), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.IsAvailable)
}

func TestCreateItem_ExplicitFalseRespected(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	input := validCreateInput()
	input.Quantity = intPtr(7)
	input.IsAvailable = boolPtr(false)

	item, err := uc.Create(context.Background(), uuid.New(), input)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
	assert.False(t, item.IsAvailable)
}

func TestGetItem_NotFound(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	_, err := uc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUpdateItem_NotOwner(t *testing.T) {
	store := newFakeItemStorage()
	uc := newItemUseCaseForTest(store)

	ownerB := uuid.New()
	item, err := uc.Create(context.Background(), ownerB, validCreateInput())
	require.NoError(t, err)

	actorA := uuid.New()
	_, err = uc.Update(context.Background(), actorA, item.ID, UpdateItemInput{
		Name: strPtr("Hacked"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.Equal(t, "Not authorized to update this item", err.Error())

	// Предмет остался без изменений
	stored, err := uc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", stored.Name)
}

func TestUpdateItem_PartialMerge(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	owner := uuid.New()
	item, err := uc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), owner, item.ID, UpdateItemInput{
		Price:       floatPtr(899.99),
		IsAvailable: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 899.99, updated.Price)
	assert.False(t, updated.IsAvailable)
	// Не переданные поля сохранили прежние значения
	assert.Equal(t, "iPhone 13", updated.Name)
	assert.Equal(t, "Electronics", updated.Category)
}

func TestUpdateItem_MergedDocumentStillValidated(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	owner := uuid.New()
	item, err := uc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), owner, item.ID, UpdateItemInput{
		Name: strPtr(""),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.Update(context.Background(), owner, item.ID, UpdateItemInput{
		Price: floatPtr(-5),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestRemoveItem_NotOwner(t *testing.T) {
	store := newFakeItemStorage()
	uc := newItemUseCaseForTest(store)

	ownerB := uuid.New()
	item, err := uc.Create(context.Background(), ownerB, validCreateInput())
	require.NoError(t, err)

	err = uc.Remove(context.Background(), uuid.New(), item.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.Equal(t, "Not authorized to delete this item", err.Error())
	assert.Len(t, store.items, 1)
}

func TestRemoveItem_Success(t *testing.T) {
	store := newFakeItemStorage()
	uc := newItemUseCaseForTest(store)

	owner := uuid.New()
	item, err := uc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, uc.Remove(context.Background(), owner, item.ID))
	assert.Empty(t, store.items)

	err = uc.Remove(context.Background(), owner, item.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestListItems_FilterAndOrdering(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())
	owner := uuid.New()

	mk := func(name, category string, available bool) {
		input := CreateItemInput{
			Name:        name,
			Description: "d",
			Category:    category,
			Price:       floatPtr(10),
			IsAvailable: boolPtr(available),
		}
		_, err := uc.Create(context.Background(), owner, input)
		require.NoError(t, err)
	}

	mk("old-electronics", "Electronics", true)
	mk("books", "Books", true)
	mk("unavailable-electronics", "Electronics", false)
	mk("new-electronics", "Electronics", true)

	page, err := uc.List(context.Background(), domain.ItemFilter{
		Category:      "Electronics",
		AvailableOnly: true,
	}, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	// Новые предметы первыми
	assert.Equal(t, "new-electronics", page.Items[0].Name)
	assert.Equal(t, "old-electronics", page.Items[1].Name)
	assert.Equal(t, int64(2), page.Pagination.Total)
}

func TestListItems_PaginationMath(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), owner, validCreateInput())
		require.NoError(t, err)
	}

	page, err := uc.List(context.Background(), domain.ItemFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, int64(2), page.Pagination.Pages)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.PerPage)

	// Страница за пределами диапазона: пустой список, корректный total
	beyond, err := uc.List(context.Background(), domain.ItemFilter{}, 5, 2)
	require.NoError(t, err)
	assert.NotNil(t, beyond.Items)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(3), beyond.Pagination.Total)
	assert.Equal(t, 5, beyond.Pagination.CurrentPage)
}

func TestListItems_Defaults(t *testing.T) {
	uc := newItemUseCaseForTest(newFakeItemStorage())

	// Нулевые и отрицательные значения заменяются значениями по умолчанию
	page, err := uc.List(context.Background(), domain.ItemFilter{}, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 10, page.Pagination.PerPage)
}
