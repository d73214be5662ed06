package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuCommands commands.MenuCommands
	menuQueries  queries.MenuQueries
}

func NewMenuHandler(menuCommands commands.MenuCommands, menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
	}
}

// @Summary Full menu
// @Description Get all categories with their available items
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuSectionResponse
// @Router /menu [get]
func (h *MenuHandler) FullMenu(c *gin.Context) {
	sections, err := h.menuQueries.FullMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuSectionViews(sections))
}

// @Summary List categories
// @Description List all menu categories
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /menu/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	views, err := h.menuQueries.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Category by slug
// @Description Get a category with its available items by slug
// @Tags menu
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} resdto.MenuSectionResponse
// @Failure 404 {object} map[string]string
// @Router /menu/categories/{slug} [get]
func (h *MenuHandler) CategoryBySlug(c *gin.Context) {
	section, err := h.menuQueries.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuSectionView(section))
}

// @Summary Get menu item
// @Description Get a single menu item by ID
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/items/{id} [get]
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.menuQueries.GetItem(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Featured items
// @Description List featured available menu items
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu/featured [get]
func (h *MenuHandler) FeaturedItems(c *gin.Context) {
	views, err := h.menuQueries.FeaturedItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}

// @Summary Search menu
// @Description Search menu items by name or description
// @Tags menu
// @Produce json
// @Param q query string true "Search query (at least 2 characters)"
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *MenuHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query must be at least 2 characters",
		})
		return
	}

	views, err := h.menuQueries.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}

// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCategoryView(view))
}

// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category patch"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/menu/categories/{id} [patch]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Delete category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/menu/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.menuCommands.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleCategoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create menu item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.handleItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMenuItemView(view))
}

// @Summary Update menu item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Menu item patch"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/menu/items/{id} [patch]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		h.handleItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Delete menu item
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/menu/items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.menuCommands.DeleteItem(c.Request.Context(), id); err != nil {
		h.handleItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) handleCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A category with this name already exists",
		})
	case errors.Is(err, commands.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category still has menu items",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *MenuHandler) handleItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
		})
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
