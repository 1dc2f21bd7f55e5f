package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/mocks"
)

func TestSiteLinksHandler_GetSiteLinks(t *testing.T) {
	source := mocks.NewMockSiteLinkSource(t)
	source.EXPECT().Links(mock.Anything).Return([]domain.SiteLink{
		{Name: "Blog", Link: "https://blog.example.com", Icon: "fa-blog"},
	}, nil)

	w := serve(t, NewSiteLinksHandler(source).RegisterSiteLinksRoutes, "/api/v1/site-links")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Blog","link":"https://blog.example.com","icon":"fa-blog"}]`, w.Body.String())
}

func TestSiteLinksHandler_GetSiteLinks_Error(t *testing.T) {
	source := mocks.NewMockSiteLinkSource(t)
	source.EXPECT().Links(mock.Anything).Return(nil, errors.New("reading site links: no such file"))

	w := serve(t, NewSiteLinksHandler(source).RegisterSiteLinksRoutes, "/api/v1/site-links")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "no such file")
}
