package rates

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFiatProvider struct {
	mock.Mock
}

func (m *MockFiatProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

type MockCryptoProvider struct {
	mock.Mock
}

func (m *MockCryptoProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}
