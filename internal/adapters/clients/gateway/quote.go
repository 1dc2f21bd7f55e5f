package gateway

import (
	"context"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// FetchQuote fetches a random hitokoto sentence.
func (g *Gateway) FetchQuote(ctx context.Context) (domain.QuoteRecord, error) {
	g.logger.DebugContext(ctx, "fetching hitokoto quote")

	return g.getDocument(ctx, opQuote, g.hitokoto, hitokotoPath, nil)
}

// FetchUserQuote fetches a quote from the nsmao service using the embedded key.
func (g *Gateway) FetchUserQuote(ctx context.Context) (domain.QuoteRecord, error) {
	g.logger.DebugContext(ctx, "fetching user quote")

	return g.getDocument(ctx, opUserQuote, g.nsmao, nsmaoQuotePath, keyQuery(g.nsmaoKey))
}
