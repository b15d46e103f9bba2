package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"storefront-main/internal/auth"
	"storefront-main/internal/mocks"
	"storefront-main/internal/storage"
	typesCart "storefront-main/internal/types/cart"
	typesCatalog "storefront-main/internal/types/catalog"
	myErr "storefront-main/internal/types/errors"
)

func setupService(
	t *testing.T,
	provider auth.Provider,
	seed typesCart.Cart,
) (*Service, *mocks.MockCartGateway, *mocks.MockCatalogRepo, *storage.MemoryCartStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := zaptest.NewLogger(t).Sugar()
	gateway := mocks.NewMockCartGateway(ctrl)
	catalogRepo := mocks.NewMockCatalogRepo(ctrl)
	cartStorage := storage.NewMemoryCartStorage(logger)

	ctx := context.Background()
	if seed != nil {
		assert.NoError(t, cartStorage.Save(ctx, seed))
	}

	svc := NewService(ctx, logger, gateway, catalogRepo, cartStorage, provider)

	return svc, gateway, catalogRepo, cartStorage
}

func guest() auth.Provider {
	return &auth.StaticProvider{}
}

func authed() auth.Provider {
	return &auth.StaticProvider{UserID: "user-1", Token: "token-1"}
}

// Гостевая сессия никогда не трогает удалённый шлюз:
// у моков нет ни одного EXPECT, любой вызов провалит тест
func TestGuestNeverCallsGateway(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)
	ctx := context.Background()

	id, err := svc.Add(ctx, typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 2})
	assert.NoError(t, err)
	assert.NoError(t, svc.UpdateQuantity(ctx, id, 5))
	assert.NoError(t, svc.Remove(ctx, id))

	_, err = svc.FetchAndEnrich(ctx)
	assert.NoError(t, err)

	svc.Clear(ctx)
}

func TestAddGuest(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)

	id, err := svc.Add(context.Background(), typesCart.AddEntry{
		ItemID:    "sku-1",
		ItemTitle: "Shoe",
		Quantity:  2,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "sku-1", id)

	lines := svc.Lines()
	assert.Len(t, lines, 1)
	line := lines[id]
	assert.Equal(t, "sku-1", line.ItemID)
	assert.Equal(t, "Shoe", line.ItemTitle)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.IsTemporary)
}

// Добавление и удаление одной позиции возвращают корзину в пустое состояние
func TestAddThenRemoveRoundTrip(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)
	ctx := context.Background()

	id, err := svc.Add(ctx, typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe"})
	assert.NoError(t, err)
	assert.Len(t, svc.Lines(), 1)

	assert.NoError(t, svc.Remove(ctx, id))
	assert.Empty(t, svc.Lines())
}

// UpdateQuantity(id, 0) эквивалентен Remove(id)
func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)
	ctx := context.Background()

	id, err := svc.Add(ctx, typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe"})
	assert.NoError(t, err)

	assert.NoError(t, svc.UpdateQuantity(ctx, id, 0))
	assert.Empty(t, svc.Lines())
}

func TestUpdateQuantityUnknownLineIsNoop(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)

	assert.NoError(t, svc.UpdateQuantity(context.Background(), "no-such-line", 3))
	assert.Empty(t, svc.Lines())
}

// Успешный апсерт при добавлении атомарно заменяет временный ключ
// серверным и переносит локальный снапшот варианта
func TestAddAuthenticatedRekeysToServerID(t *testing.T) {
	svc, gateway, _, _ := setupService(t, authed(), nil)

	variant := &typesCatalog.Variant{ID: "var-9", Color: "red", Price: 49.9, Stock: 3}
	gateway.EXPECT().
		Upsert(gomock.Any(), "token-1", typesCart.UpsertLine{ItemID: "sku-1", VariantID: "var-9", Quantity: 1}).
		Return(&typesCart.ServerCartLine{ID: "srv-42", ItemID: "sku-1", VariantID: "var-9", Quantity: 1}, nil)

	id, err := svc.Add(context.Background(), typesCart.AddEntry{
		ItemID:    "sku-1",
		ItemTitle: "Shoe",
		VariantID: "var-9",
		Variant:   variant,
	})
	assert.NoError(t, err)
	assert.Equal(t, "srv-42", id)

	lines := svc.Lines()
	assert.Len(t, lines, 1)
	line, ok := lines["srv-42"]
	assert.True(t, ok)
	assert.False(t, line.IsTemporary)
	assert.Equal(t, variant, line.Variant)
	assert.Equal(t, "Shoe", line.ItemTitle)
}

// Сбой апсерта при добавлении не оставляет следов попытки
func TestAddAuthenticatedUpsertFails(t *testing.T) {
	svc, gateway, _, _ := setupService(t, authed(), nil)

	gateway.EXPECT().
		Upsert(gomock.Any(), "token-1", gomock.Any()).
		Return(nil, myErr.ErrNetwork)

	_, err := svc.Add(context.Background(), typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe"})
	assert.ErrorIs(t, err, myErr.ErrNetwork)
	assert.Empty(t, svc.Lines())
	assert.Empty(t, svc.InFlight())
}

// Откат количества точный, не приблизительный
func TestUpdateQuantityRollbackExact(t *testing.T) {
	seed := typesCart.Cart{
		"srv-1": {ID: "srv-1", ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 3},
	}
	svc, gateway, _, _ := setupService(t, authed(), seed)

	gateway.EXPECT().
		Upsert(gomock.Any(), "token-1", typesCart.UpsertLine{ItemID: "sku-1", Quantity: 7}).
		DoAndReturn(func(_ context.Context, _ string, _ typesCart.UpsertLine) (*typesCart.ServerCartLine, error) {
			// На время вызова позиция помечена "в полёте"
			assert.True(t, svc.InFlight()["srv-1"])
			return nil, myErr.ErrNetwork
		})

	err := svc.UpdateQuantity(context.Background(), "srv-1", 7)
	assert.ErrorIs(t, err, myErr.ErrNetwork)
	assert.Equal(t, 3, svc.Lines()["srv-1"].Quantity)
	// Метка "в полёте" снимается и при ошибке
	assert.Empty(t, svc.InFlight())
}

func TestUpdateQuantitySuccess(t *testing.T) {
	seed := typesCart.Cart{
		"srv-1": {ID: "srv-1", ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 3},
	}
	svc, gateway, _, cartStorage := setupService(t, authed(), seed)

	gateway.EXPECT().
		Upsert(gomock.Any(), "token-1", typesCart.UpsertLine{ItemID: "sku-1", Quantity: 7}).
		Return(&typesCart.ServerCartLine{ID: "srv-1", ItemID: "sku-1", Quantity: 7}, nil)

	assert.NoError(t, svc.UpdateQuantity(context.Background(), "srv-1", 7))
	assert.Equal(t, 7, svc.Lines()["srv-1"].Quantity)

	// Мутация синхронно отражена в долговременном слоте
	mirrored, err := cartStorage.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, mirrored["srv-1"].Quantity)
}

// Временная позиция не синхронизируется с сервером даже под логином
func TestUpdateQuantityTemporaryLineSkipsRemote(t *testing.T) {
	seed := typesCart.Cart{
		"tmp-1": {ID: "tmp-1", ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 1, IsTemporary: true},
	}
	svc, _, _, _ := setupService(t, authed(), seed)

	assert.NoError(t, svc.UpdateQuantity(context.Background(), "tmp-1", 4))
	assert.Equal(t, 4, svc.Lines()["tmp-1"].Quantity)
}

// Сбой удаления возвращает позицию с теми же полями
func TestRemoveRollbackReinsertsIdenticalLine(t *testing.T) {
	variant := &typesCatalog.Variant{ID: "var-9", Size: "M", Price: 19.5, Stock: 8}
	seed := typesCart.Cart{
		"srv-1": {
			ID:        "srv-1",
			ItemID:    "sku-1",
			ItemTitle: "Shoe",
			VariantID: "var-9",
			Quantity:  2,
			Variant:   variant,
		},
	}
	svc, gateway, _, _ := setupService(t, authed(), seed)

	gateway.EXPECT().
		Delete(gomock.Any(), "token-1", "srv-1").
		Return(myErr.ErrNetwork)

	err := svc.Remove(context.Background(), "srv-1")
	assert.ErrorIs(t, err, myErr.ErrNetwork)
	assert.Equal(t, seed["srv-1"], svc.Lines()["srv-1"])
	assert.Empty(t, svc.InFlight())
}

func TestRemoveSuccess(t *testing.T) {
	seed := typesCart.Cart{
		"srv-1": {ID: "srv-1", ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 2},
	}
	svc, gateway, _, _ := setupService(t, authed(), seed)

	gateway.EXPECT().Delete(gomock.Any(), "token-1", "srv-1").Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), "srv-1"))
	assert.Empty(t, svc.Lines())
}

func TestFetchAndEnrich(t *testing.T) {
	embedded := &typesCatalog.Item{
		ID:   "sku-1",
		Name: "Shoe",
		Variants: []typesCatalog.Variant{
			{ID: "var-9", Color: "red", Price: 49.9, Stock: 3},
		},
	}
	svc, gateway, catalogRepo, _ := setupService(t, authed(), nil)

	gateway.EXPECT().Fetch(gomock.Any(), "token-1").Return([]typesCart.ServerCartLine{
		// товар вложен в ответ шлюза, вариант ищется по точному id
		{ID: "srv-1", ItemID: "sku-1", VariantID: "var-9", Quantity: 2, Item: embedded},
		// товар резолвится через шлюз каталога
		{ID: "srv-2", ItemID: "sku-2", Quantity: 1},
		// сбой каталога: позиция включается без обогащения
		{ID: "srv-3", ItemID: "sku-3", Quantity: 4},
		// item id неопределим: позиция пропускается
		{ID: "srv-4", Quantity: 1},
	}, nil)

	catalogRepo.EXPECT().
		GetByID(gomock.Any(), "sku-2").
		Return(&typesCatalog.Item{ID: "sku-2", Name: "Hat", Price: 12}, nil)
	catalogRepo.EXPECT().
		GetByID(gomock.Any(), "sku-3").
		Return(nil, myErr.ErrNetwork)

	result, err := svc.FetchAndEnrich(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 3)

	assert.Equal(t, "Shoe", result["srv-1"].ItemTitle)
	assert.NotNil(t, result["srv-1"].Variant)
	assert.Equal(t, "var-9", result["srv-1"].Variant.ID)

	assert.Equal(t, "Hat", result["srv-2"].ItemTitle)
	assert.NotNil(t, result["srv-2"].Item)

	assert.Equal(t, "sku-3", result["srv-3"].ItemID)
	assert.Nil(t, result["srv-3"].Item)
	assert.Equal(t, 4, result["srv-3"].Quantity)

	// Результат стал новым авторитетным состоянием
	assert.Equal(t, result, svc.Lines())
}

// Сбой верхнеуровневого запроса отдаёт пустой результат без ошибки
func TestFetchAndEnrichTopLevelFailure(t *testing.T) {
	svc, gateway, _, _ := setupService(t, authed(), nil)

	gateway.EXPECT().Fetch(gomock.Any(), "token-1").Return(nil, myErr.ErrNetwork)

	result, err := svc.FetchAndEnrich(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, result)
}

// Гость получает только временные позиции текущего состояния
func TestFetchAndEnrichGuest(t *testing.T) {
	seed := typesCart.Cart{
		"tmp-1": {ID: "tmp-1", ItemID: "sku-1", Quantity: 1, IsTemporary: true},
		"srv-9": {ID: "srv-9", ItemID: "sku-9", Quantity: 2},
	}
	svc, _, _, _ := setupService(t, guest(), seed)

	result, err := svc.FetchAndEnrich(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Contains(t, result, "tmp-1")
}

// Очистка односторонняя: сбой удалённой очистки ничего не восстанавливает
func TestClearBestEffort(t *testing.T) {
	seed := typesCart.Cart{
		"srv-1": {ID: "srv-1", ItemID: "sku-1", Quantity: 2},
	}
	svc, gateway, _, cartStorage := setupService(t, authed(), seed)

	gateway.EXPECT().Clear(gomock.Any(), "token-1").Return(myErr.ErrNetwork)

	svc.Clear(context.Background())
	assert.Empty(t, svc.Lines())

	mirrored, err := cartStorage.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, mirrored)
}

// Слияние best-effort: сбой одной позиции не прерывает остальные,
// снапшот очищается безусловно, ошибка наружу не выходит
func TestMergeGuestInto(t *testing.T) {
	seed := typesCart.Cart{
		"tmp-1": {ID: "tmp-1", ItemID: "sku-1", Quantity: 2, IsTemporary: true},
		"tmp-2": {ID: "tmp-2", ItemID: "sku-2", Quantity: 1, IsTemporary: true},
		// не временная позиция в слияние не попадает
		"srv-9": {ID: "srv-9", ItemID: "sku-9", Quantity: 5},
	}
	svc, gateway, _, cartStorage := setupService(t, guest(), seed)

	gateway.EXPECT().
		Upsert(gomock.Any(), "fresh-token", typesCart.UpsertLine{ItemID: "sku-1", Quantity: 2}).
		Return(&typesCart.ServerCartLine{ID: "srv-1", ItemID: "sku-1", Quantity: 2}, nil)
	gateway.EXPECT().
		Upsert(gomock.Any(), "fresh-token", typesCart.UpsertLine{ItemID: "sku-2", Quantity: 1}).
		Return(nil, myErr.ErrNetwork)

	svc.MergeGuestInto(context.Background(), "fresh-token")

	snapshot, err := cartStorage.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc, _, _, _ := setupService(t, guest(), nil)

	id, err := svc.Add(context.Background(), typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe"})
	assert.NoError(t, err)
	assert.Equal(t, 1, svc.Lines()[id].Quantity)
}

func TestTempIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newTempID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

// Корзина переживает перезапуск сессии через долговременный слот
func TestSessionRestartKeepsCart(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cartStorage := storage.NewMemoryCartStorage(logger)
	ctx := context.Background()

	first := NewService(ctx, logger, mocks.NewMockCartGateway(ctrl), mocks.NewMockCatalogRepo(ctrl), cartStorage, guest())
	id, err := first.Add(ctx, typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe", Quantity: 2})
	assert.NoError(t, err)

	second := NewService(ctx, logger, mocks.NewMockCartGateway(ctrl), mocks.NewMockCatalogRepo(ctrl), cartStorage, guest())
	assert.Equal(t, first.Lines()[id], second.Lines()[id])
}

// Сбой записи в хранилище не ломает операцию
func TestStorageFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := zaptest.NewLogger(t).Sugar()
	cartStorage := mocks.NewMockCartStorage(ctrl)
	cartStorage.EXPECT().Load(gomock.Any()).Return(typesCart.Cart{}, nil)
	cartStorage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()

	svc := NewService(
		context.Background(),
		logger,
		mocks.NewMockCartGateway(ctrl),
		mocks.NewMockCatalogRepo(ctrl),
		cartStorage,
		guest(),
	)

	id, err := svc.Add(context.Background(), typesCart.AddEntry{ItemID: "sku-1", ItemTitle: "Shoe"})
	assert.NoError(t, err)
	assert.Len(t, svc.Lines(), 1)
	assert.NotEmpty(t, id)
}
