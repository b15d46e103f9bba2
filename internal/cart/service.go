package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-main/internal/auth"
	"storefront-main/internal/catalog"
	"storefront-main/internal/remote_cart"
	"storefront-main/internal/storage"
	typesCart "storefront-main/internal/types/cart"
	myErr "storefront-main/internal/types/errors"
)

// Service реализация CartEngine
//
// Не потокобезопасен: все операции вызываются последовательно из
// событийного цикла UI, мьютекса на позицию нет. Конкурирующие
// обновления одной позиции могут разойтись с сервером — это
// принятое ограничение, а не гарантируемое свойство
type Service struct {
	Logger  *zap.SugaredLogger
	Gateway remote_cart.CartGateway
	Catalog catalog.CatalogRepo
	Storage storage.CartStorage
	Auth    auth.Provider

	cart     typesCart.Cart
	inFlight map[string]struct{}
}

// NewService читает корзину из долговременного слота один раз на
// старте сессии; сбой чтения даёт пустую корзину и никогда не фатален
func NewService(
	ctx context.Context,
	logger *zap.SugaredLogger,
	gateway remote_cart.CartGateway,
	catalogRepo catalog.CatalogRepo,
	cartStorage storage.CartStorage,
	provider auth.Provider,
) *Service {
	c, err := cartStorage.Load(ctx)
	if err != nil {
		logger.Errorf("Failed to load cart snapshot, starting empty: %v", err)
		c = typesCart.Cart{}
	}

	return &Service{
		Logger:   logger,
		Gateway:  gateway,
		Catalog:  catalogRepo,
		Storage:  cartStorage,
		Auth:     provider,
		cart:     c,
		inFlight: make(map[string]struct{}),
	}
}

// Lines возвращает копию текущего состояния корзины
func (s *Service) Lines() typesCart.Cart {
	return s.cart.Clone()
}

// InFlight возвращает id позиций с незавершённым удалённым вызовом
func (s *Service) InFlight() map[string]bool {
	ids := make(map[string]bool, len(s.inFlight))
	for id := range s.inFlight {
		ids[id] = true
	}

	return ids
}

// Add добавляет товар в корзину
// Позиция сначала вставляется с временным id; при успешном апсерте
// временный ключ атомарно заменяется серверным с переносом локального
// снапшота варианта (ответ сервера его не гарантирует), при сбое
// временная позиция убирается и ошибка отдаётся вызывающему
func (s *Service) Add(ctx context.Context, entry typesCart.AddEntry) (string, error) {
	quantity := entry.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	tempID := newTempID()
	line := typesCart.CartLine{
		ID:          tempID,
		ItemID:      entry.ItemID,
		ItemTitle:   entry.ItemTitle,
		VariantID:   entry.VariantID,
		Quantity:    quantity,
		Variant:     entry.Variant,
		IsTemporary: true,
	}

	release := s.beginFlight(tempID)
	defer release()

	serverID := ""
	var remote func() error
	if token, authed := s.session(); authed {
		remote = func() error {
			saved, err := s.Gateway.Upsert(ctx, token, typesCart.UpsertLine{
				ItemID:    entry.ItemID,
				VariantID: entry.VariantID,
				Quantity:  quantity,
			})
			if err != nil {
				return err
			}

			persisted := line
			persisted.ID = saved.ID
			persisted.Quantity = saved.Quantity
			persisted.IsTemporary = false
			if saved.Item != nil {
				persisted.Item = saved.Item
				persisted.ItemTitle = saved.Item.Name
			}

			delete(s.cart, tempID)
			s.cart[saved.ID] = persisted
			serverID = saved.ID

			return nil
		}
	}

	err := s.applyWithRollback(ctx, opAdd,
		func() { s.cart[tempID] = line },
		func() { delete(s.cart, tempID) },
		remote,
	)
	if err != nil {
		return "", err
	}

	if serverID != "" {
		return serverID, nil
	}

	return tempID, nil
}

// UpdateQuantity выставляет количество позиции
// quantity <= 0 делегируется в Remove, неизвестный id — тихий no-op,
// при сбое апсерта количество восстанавливается точно
func (s *Service) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, lineID)
	}

	line, ok := s.cart[lineID]
	if !ok {
		return nil
	}

	release := s.beginFlight(lineID)
	defer release()

	prev := line.Quantity

	var remote func() error
	// Временные позиции не участвуют ни в какой удалённой синхронизации
	if token, authed := s.session(); authed && !line.IsTemporary {
		remote = func() error {
			_, err := s.Gateway.Upsert(ctx, token, typesCart.UpsertLine{
				ItemID:    line.ItemID,
				VariantID: line.VariantID,
				Quantity:  quantity,
			})

			return err
		}
	}

	return s.applyWithRollback(ctx, opUpdate,
		func() {
			updated := line
			updated.Quantity = quantity
			s.cart[lineID] = updated
		},
		func() {
			restored := line
			restored.Quantity = prev
			s.cart[lineID] = restored
		},
		remote,
	)
}

// Remove удаляет позицию
// При сбое удалённого вызова позиция возвращается с теми же полями
func (s *Service) Remove(ctx context.Context, lineID string) error {
	line, ok := s.cart[lineID]
	if !ok {
		return nil
	}

	release := s.beginFlight(lineID)
	defer release()

	var remote func() error
	if token, authed := s.session(); authed && !line.IsTemporary {
		remote = func() error {
			return s.Gateway.Delete(ctx, token, lineID)
		}
	}

	return s.applyWithRollback(ctx, opRemove,
		func() { delete(s.cart, lineID) },
		func() { s.cart[lineID] = line },
		remote,
	)
}

// FetchAndEnrich заменяет состояние корзины обогащённым серверным
// Гость получает временные позиции текущего состояния без сети.
// Сбой верхнеуровневого запроса отдаёт пустой результат без ошибки:
// защищать ещё нечего. Позиции без определимого item id пропускаются,
// позиции с неудавшимся обогащением включаются как есть
func (s *Service) FetchAndEnrich(ctx context.Context) (typesCart.Cart, error) {
	token, authed := s.session()
	if !authed {
		result := typesCart.Cart{}
		for id, line := range s.cart {
			if line.IsTemporary {
				result[id] = line
			}
		}

		return result, nil
	}

	serverLines, err := s.Gateway.Fetch(ctx, token)
	if err != nil {
		s.Logger.Errorf("Failed to fetch remote cart: %v", err)
		cartOperationsTotal.WithLabelValues(opFetch, statusError).Inc()

		return typesCart.Cart{}, nil
	}

	enriched := typesCart.Cart{}
	for _, serverLine := range serverLines {
		line, err := s.enrichLine(ctx, serverLine)
		if err != nil {
			s.Logger.Errorf("Skipping cart line %s: %v", serverLine.ID, err)
			continue
		}

		enriched[line.ID] = *line
	}

	s.cart = enriched
	s.persist(ctx)
	cartOperationsTotal.WithLabelValues(opFetch, statusOK).Inc()

	return s.cart.Clone(), nil
}

// Clear безусловно очищает корзину
// Удалённая очистка — fire-and-forget: сбой логируется, очищенные
// позиции не восстанавливаются, ошибка вызывающему не отдаётся
func (s *Service) Clear(ctx context.Context) {
	s.cart = typesCart.Cart{}
	s.persist(ctx)

	token, authed := s.session()
	if !authed {
		cartOperationsTotal.WithLabelValues(opClear, statusLocal).Inc()
		return
	}

	if err := s.Gateway.Clear(ctx, token); err != nil {
		s.Logger.Errorf("Failed to clear remote cart: %v", err)
		cartOperationsTotal.WithLabelValues(opClear, statusError).Inc()
		return
	}

	cartOperationsTotal.WithLabelValues(opClear, statusOK).Inc()
}

// MergeGuestInto переносит гостевые позиции в серверную корзину
// Читает долговременный снапшот независимо от состояния в памяти,
// апсертит временные позиции по одной; сбой позиции логируется и не
// прерывает остальные. Снапшот очищается безусловно: неслившиеся
// позиции позже не переигрываются
func (s *Service) MergeGuestInto(ctx context.Context, token string) {
	snapshot, err := s.Storage.Load(ctx)
	if err != nil {
		s.Logger.Errorf("Failed to load guest cart snapshot for merge: %v", err)
		snapshot = typesCart.Cart{}
	}

	merged, failed := 0, 0
	for id, line := range snapshot {
		if !line.IsTemporary {
			continue
		}

		_, err := s.Gateway.Upsert(ctx, token, typesCart.UpsertLine{
			ItemID:    line.ItemID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
		if err != nil {
			failed++
			s.Logger.Errorf("Failed to merge guest cart line %s (item %s): %v", id, line.ItemID, err)
			continue
		}
		merged++
	}

	if err := s.Storage.Clear(ctx); err != nil {
		s.Logger.Errorf("Failed to clear guest cart snapshot: %v", err)
	}

	cartMergedLinesTotal.WithLabelValues(statusOK).Add(float64(merged))
	cartMergedLinesTotal.WithLabelValues(statusError).Add(float64(failed))
	s.Logger.Infof("Guest cart merge finished: %d merged, %d failed", merged, failed)
}

// enrichLine собирает позицию корзины из строки ответа шлюза
// Ошибку возвращает только при неопределимом item id; неудавшееся
// обогащение даёт частичную позицию — это лучше её потери
func (s *Service) enrichLine(ctx context.Context, serverLine typesCart.ServerCartLine) (*typesCart.CartLine, error) {
	itemID := serverLine.ItemID
	if itemID == "" && serverLine.Item != nil {
		itemID = serverLine.Item.ID
	}
	if itemID == "" {
		return nil, myErr.ErrEmptyItemID
	}

	line := &typesCart.CartLine{
		ID:        serverLine.ID,
		ItemID:    itemID,
		VariantID: serverLine.VariantID,
		Quantity:  serverLine.Quantity,
		Item:      serverLine.Item,
	}

	item := serverLine.Item
	if item == nil {
		fetched, err := s.Catalog.GetByID(ctx, itemID)
		if err != nil {
			s.Logger.Warnf("Failed to enrich cart line %s with item %s: %v", serverLine.ID, itemID, err)
			return line, nil
		}

		item = fetched
		line.Item = fetched
	}

	line.ItemTitle = item.Name
	if line.VariantID != "" {
		line.Variant = item.FindVariant(line.VariantID)
		if line.Variant == nil {
			s.Logger.Warnf("Variant %s not found in item %s for cart line %s", line.VariantID, itemID, serverLine.ID)
		}
	}

	return line, nil
}

// applyWithRollback применяет оптимистичную мутацию, выполняет
// удалённый вызов и при его сбое применяет обратную мутацию —
// откат всегда парный прямой мутации. remote == nil означает
// чисто локальную операцию (гостевая сессия или временная позиция)
func (s *Service) applyWithRollback(
	ctx context.Context,
	op string,
	apply func(),
	rollback func(),
	remote func() error,
) error {
	apply()
	s.persist(ctx)

	if remote == nil {
		cartOperationsTotal.WithLabelValues(op, statusLocal).Inc()
		return nil
	}

	start := time.Now()
	err := remote()
	cartRemoteDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		rollback()
		cartRollbacksTotal.WithLabelValues(op).Inc()
		cartOperationsTotal.WithLabelValues(op, statusError).Inc()
	} else {
		cartOperationsTotal.WithLabelValues(op, statusOK).Inc()
	}

	s.persist(ctx)

	return err
}

// persist синхронно зеркалирует корзину в долговременный слот
// Запись best-effort: сбой логируется и не ломает операцию
func (s *Service) persist(ctx context.Context) {
	if err := s.Storage.Save(ctx, s.cart); err != nil {
		s.Logger.Errorf("Failed to mirror cart to storage: %v", err)
	}
}

// beginFlight помечает позицию как "в полёте" и возвращает снятие
// метки; снятие выполняется в defer, поэтому ошибка удалённого
// вызова метку не подвешивает
func (s *Service) beginFlight(lineID string) func() {
	s.inFlight[lineID] = struct{}{}

	return func() {
		delete(s.inFlight, lineID)
	}
}

// session возвращает токен и признак аутентифицированной сессии
func (s *Service) session() (string, bool) {
	token := s.Auth.CurrentToken()
	if token == "" || s.Auth.CurrentUserID() == "" {
		return "", false
	}

	return token, true
}

// newTempID генерирует временный id позиции: метка времени плюс
// uuid исключают коллизии в пределах сессии
func newTempID() string {
	return fmt.Sprintf("tmp-%d-%s", time.Now().UnixNano(), uuid.New().String())
}
