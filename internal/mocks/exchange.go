package mocks

import (
	"context"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
	"github.com/stretchr/testify/mock"
)

// TestifyMockExchange is a mock of commands.Exchange for use with testify/mock
type TestifyMockExchange struct {
	mock.Mock
}

var _ commands.Exchange = (*TestifyMockExchange)(nil)

// Export is a mock implementation of commands.Exchange.Export
func (m *TestifyMockExchange) Export(ctx context.Context, fileName string, cards []*domain.Flashcard) (string, error) {
	args := m.Called(ctx, fileName, cards)
	return args.String(0), args.Error(1)
}

// Import is a mock implementation of commands.Exchange.Import
func (m *TestifyMockExchange) Import(ctx context.Context, fileName string) ([]*domain.Flashcard, []error, error) {
	args := m.Called(ctx, fileName)
	var (
		cards   []*domain.Flashcard
		rowErrs []error
	)
	if c, ok := args.Get(0).([]*domain.Flashcard); ok {
		cards = c
	}
	if r, ok := args.Get(1).([]error); ok {
		rowErrs = r
	}
	return cards, rowErrs, args.Error(2)
}
