package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// InventoryHandler exposes the car-search aggregation routes.
type InventoryHandler struct {
	service ports.InventoryService
	logger  zerolog.Logger
}

func NewInventoryHandler(service ports.InventoryService, logger zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{service: service, logger: logger}
}

type carsEnvelope struct {
	Status int             `json:"status"`
	Cars   json.RawMessage `json:"cars"`
}

type fullInventoryResponse struct {
	Status      int             `json:"status"`
	Cars        json.RawMessage `json:"cars"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

type makesModelsResponse struct {
	Status      int             `json:"status"`
	MakesModels json.RawMessage `json:"makes_models"`
}

// DealerInventory looks up one dealer's cars, applying at most one filter
// dimension by priority (year, make, model, mileage, price). A downstream
// failure is logged and shows up as a null car list, matching the dealer
// listing's behaviour.
//
// @Summary      Get a dealer's inventory
// @Tags         inventory
// @Produce      json
// @Param        id       path      int     true   "Dealer id"
// @Param        year     query     string  false  "Model year"
// @Param        make     query     string  false  "Make name"
// @Param        model    query     string  false  "Model name"
// @Param        mileage  query     string  false  "Maximum mileage"
// @Param        price    query     string  false  "Maximum price"
// @Success      200  {object}  carsEnvelope
// @Failure      400  {object}  statusMessage
// @Router       /get_inventory/{id} [get]
func (h *InventoryHandler) DealerInventory(c echo.Context) error {
	dealerID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c)
	}

	filters := ports.InventoryFilters{
		Year:    c.QueryParam("year"),
		Make:    c.QueryParam("make"),
		Model:   c.QueryParam("model"),
		Mileage: c.QueryParam("mileage"),
		Price:   c.QueryParam("price"),
	}

	cars, err := h.service.DealerInventory(c.Request().Context(), dealerID, filters)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			return badRequest(c)
		}
		h.logger.Error().Err(err).Int("dealer_id", dealerID).Msg("dealer inventory lookup failed")
		cars = nil
	}
	return c.JSON(http.StatusOK, carsEnvelope{Status: http.StatusOK, Cars: cars})
}

// FullInventory queries the paginated inventory with all supplied filters.
// Range filters need both bounds or are dropped entirely.
//
// @Summary      Search the full inventory
// @Tags         inventory
// @Produce      json
// @Param        page        query     int     false  "Page (default 1)"
// @Param        per_page    query     int     false  "Page size (default 10)"
// @Param        mileageMin  query     string  false  "Mileage lower bound"
// @Param        mileageMax  query     string  false  "Mileage upper bound"
// @Param        priceMin    query     string  false  "Price lower bound"
// @Param        priceMax    query     string  false  "Price upper bound"
// @Param        make        query     string  false  "Make name"
// @Param        model       query     string  false  "Model name"
// @Param        year        query     string  false  "Model year"
// @Success      200  {object}  fullInventoryResponse
// @Failure      500  {object}  statusError
// @Router       /full_inventory [get]
func (h *InventoryHandler) FullInventory(c echo.Context) error {
	q := ports.InventoryQuery{
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "per_page"),
		MileageMin: c.QueryParam("mileageMin"),
		MileageMax: c.QueryParam("mileageMax"),
		PriceMin:   c.QueryParam("priceMin"),
		PriceMax:   c.QueryParam("priceMax"),
		Make:       c.QueryParam("make"),
		Model:      c.QueryParam("model"),
		Year:       c.QueryParam("year"),
	}

	page, err := h.service.FullInventory(c.Request().Context(), q)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, fullInventoryResponse{
		Status:      http.StatusOK,
		Cars:        page.Cars,
		Total:       page.Total,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	})
}

// MakesModels proxies the make/model listing of the car-search service.
//
// @Summary      List known makes and models
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  makesModelsResponse
// @Failure      500  {object}  statusError
// @Router       /makes_models [get]
func (h *InventoryHandler) MakesModels(c echo.Context) error {
	if c.Request().Method != http.MethodGet {
		return methodNotAllowed(c)
	}
	res, err := h.service.MakesModels(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, makesModelsResponse{Status: http.StatusOK, MakesModels: res})
}

// queryInt parses an integer query parameter, returning 0 (caller default)
// when absent or malformed.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError,
		statusError{Status: http.StatusInternalServerError, Error: "An internal error has occurred!"})
}
