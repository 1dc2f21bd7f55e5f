package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewQuoteService_PanicsWithoutSource(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{
			Source: nil,
			Logger: slog.Default(),
		})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		Source: mocks.NewMockQuoteSource(t),
		Logger: nil,
	})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestQuoteService_Hitokoto(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*mocks.MockQuoteSource)
		expectedQuote domain.QuoteRecord
		errCheck      func(error) bool
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().FetchQuote(mock.Anything).
					Return(domain.Document{"id": float64(1), "hitokoto": "test"}, nil)
			},
			expectedQuote: domain.Document{"id": float64(1), "hitokoto": "test"},
		},
		{
			name: "source returns unavailable error",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().FetchQuote(mock.Anything).
					Return(nil, domain.NewUnavailableError("hitokoto", "unexpected HTTP 500"))
			},
			errCheck: domain.IsUnavailable,
		},
		{
			name: "source returns generic error",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().FetchQuote(mock.Anything).
					Return(nil, errors.New("network error"))
			},
			errCheck: func(err error) bool {
				return err != nil && err.Error() == "network error"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockQuoteSource(t)
			tt.setupMock(source)

			svc := NewQuoteService(QuoteServiceConfig{
				Source: source,
				Logger: discardLogger(),
			})

			quote, err := svc.Hitokoto(context.Background())

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedQuote, quote)
			}
		})
	}
}

func TestQuoteService_UserQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		source := mocks.NewMockQuoteSource(t)
		source.EXPECT().FetchUserQuote(mock.Anything).
			Return(domain.Document{"code": float64(200)}, nil)

		svc := NewQuoteService(QuoteServiceConfig{Source: source, Logger: discardLogger()})

		quote, err := svc.UserQuote(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float64(200), quote["code"])
	})

	t.Run("failure", func(t *testing.T) {
		source := mocks.NewMockQuoteSource(t)
		source.EXPECT().FetchUserQuote(mock.Anything).
			Return(nil, domain.NewUnavailableError("nsmao", ""))

		svc := NewQuoteService(QuoteServiceConfig{Source: source, Logger: discardLogger()})

		quote, err := svc.UserQuote(context.Background())
		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
		assert.Nil(t, quote)
	})
}
