package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	typesCatalog "storefront-main/internal/types/catalog"
)

// MockCatalogRepo мок для catalog.CatalogRepo
type MockCatalogRepo struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogRepoMockRecorder
}

type MockCatalogRepoMockRecorder struct {
	mock *MockCatalogRepo
}

func NewMockCatalogRepo(ctrl *gomock.Controller) *MockCatalogRepo {
	mock := &MockCatalogRepo{ctrl: ctrl}
	mock.recorder = &MockCatalogRepoMockRecorder{mock}
	return mock
}

func (m *MockCatalogRepo) EXPECT() *MockCatalogRepoMockRecorder {
	return m.recorder
}

func (m *MockCatalogRepo) GetByID(ctx context.Context, itemID string) (*typesCatalog.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, itemID)
	ret0, _ := ret[0].(*typesCatalog.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCatalogRepoMockRecorder) GetByID(ctx, itemID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"GetByID",
		reflect.TypeOf((*MockCatalogRepo)(nil).GetByID),
		ctx, itemID,
	)
}

func (m *MockCatalogRepo) List(ctx context.Context) ([]typesCatalog.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]typesCatalog.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCatalogRepoMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"List",
		reflect.TypeOf((*MockCatalogRepo)(nil).List),
		ctx,
	)
}
