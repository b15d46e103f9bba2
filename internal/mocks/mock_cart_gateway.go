package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	typesCart "storefront-main/internal/types/cart"
)

// MockCartGateway мок для remote_cart.CartGateway
type MockCartGateway struct {
	ctrl     *gomock.Controller
	recorder *MockCartGatewayMockRecorder
}

type MockCartGatewayMockRecorder struct {
	mock *MockCartGateway
}

func NewMockCartGateway(ctrl *gomock.Controller) *MockCartGateway {
	mock := &MockCartGateway{ctrl: ctrl}
	mock.recorder = &MockCartGatewayMockRecorder{mock}
	return mock
}

func (m *MockCartGateway) EXPECT() *MockCartGatewayMockRecorder {
	return m.recorder
}

func (m *MockCartGateway) Fetch(ctx context.Context, token string) ([]typesCart.ServerCartLine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Fetch", ctx, token)
	ret0, _ := ret[0].([]typesCart.ServerCartLine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCartGatewayMockRecorder) Fetch(ctx, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Fetch",
		reflect.TypeOf((*MockCartGateway)(nil).Fetch),
		ctx, token,
	)
}

func (m *MockCartGateway) Upsert(
	ctx context.Context,
	token string,
	line typesCart.UpsertLine,
) (*typesCart.ServerCartLine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, token, line)
	ret0, _ := ret[0].(*typesCart.ServerCartLine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCartGatewayMockRecorder) Upsert(ctx, token, line interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Upsert",
		reflect.TypeOf((*MockCartGateway)(nil).Upsert),
		ctx, token, line,
	)
}

func (m *MockCartGateway) Delete(ctx context.Context, token string, lineID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, token, lineID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartGatewayMockRecorder) Delete(ctx, token, lineID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Delete",
		reflect.TypeOf((*MockCartGateway)(nil).Delete),
		ctx, token, lineID,
	)
}

func (m *MockCartGateway) Clear(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCartGatewayMockRecorder) Clear(ctx, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Clear",
		reflect.TypeOf((*MockCartGateway)(nil).Clear),
		ctx, token,
	)
}
