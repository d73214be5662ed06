//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-api/internal/handler/api"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/fakes"
	commonhttp "restaurant-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *fakes.MenuQueries
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.queries = &fakes.MenuQueries{}

	handler := api.NewMenuHandler(nil, s.queries)

	s.router.GET("/menu/categories", handler.ListCategories)
	s.router.GET("/search", handler.Search)
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestListCategories() {
	s.Run("includes the available item count per category", func() {
		now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		s.queries.Categories = []*queries.CategoryView{
			{
				ID:           uuid.New(),
				Name:         "Mains",
				Slug:         "mains",
				DisplayOrder: 1,
				ItemCount:    7,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:           uuid.New(),
				Name:         "Desserts",
				Slug:         "desserts",
				DisplayOrder: 2,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/menu/categories", nil, "")

		var resp []resdto.CategoryResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.EqualValues(7, resp[0].ItemCount)
		s.EqualValues(0, resp[1].ItemCount)
	})
}

func (s *MenuHandlerTestSuite) TestSearch() {
	s.Run("returns matching items", func() {
		s.queries.Items = []*queries.MenuItemView{
			{ID: uuid.New(), Name: "Margherita Pizza"},
		}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search?q=pizza", nil, "")

		var resp []resdto.MenuItemResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("Margherita Pizza", resp[0].Name)
	})

	s.Run("returns 400 for a query under two characters", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search?q=p", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "at least 2 characters")
	})

	s.Run("returns 400 for a whitespace-only query", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search?q=%20%20", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "at least 2 characters")
	})
}
