package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	typesCart "storefront-main/internal/types/cart"
)

// MockCartStorage мок для storage.CartStorage
type MockCartStorage struct {
	ctrl     *gomock.Controller
	recorder *MockCartStorageMockRecorder
}

type MockCartStorageMockRecorder struct {
	mock *MockCartStorage
}

func NewMockCartStorage(ctrl *gomock.Controller) *MockCartStorage {
	mock := &MockCartStorage{ctrl: ctrl}
	mock.recorder = &MockCartStorageMockRecorder{mock}
	return mock
}

func (m *MockCartStorage) EXPECT() *MockCartStorageMockRecorder {
	return m.recorder
}

func (m *MockCartStorage) Load(ctx context.Context) (typesCart.Cart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Load", ctx)
	ret0, _ := ret[0].(typesCart.Cart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCartStorageMockRecorder) Load(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Load",
		reflect.TypeOf((*MockCartStorage)(nil).Load),
		ctx,
	)
}

func (m *MockCartStorage) Save(ctx context.Context, c typesCart.Cart) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartStorageMockRecorder) Save(ctx, c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Save",
		reflect.TypeOf((*MockCartStorage)(nil).Save),
		ctx, c,
	)
}

func (m *MockCartStorage) Clear(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartStorageMockRecorder) Clear(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Clear",
		reflect.TypeOf((*MockCartStorage)(nil).Clear),
		ctx,
	)
}
