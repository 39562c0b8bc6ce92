package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// CatalogHandler serves the car make/model catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type carEntry struct {
	CarModel string `json:"CarModel"`
	CarMake  string `json:"CarMake"`
}

type carsResponse struct {
	CarModels []carEntry `json:"CarModels"`
}

// GetCars lists every model with its make, seeding the catalog on first use.
//
// @Summary      List catalog cars
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  carsResponse
// @Router       /get_cars [get]
func (h *CatalogHandler) GetCars(c echo.Context) error {
	entries, err := h.catalog.ListCars(c.Request().Context())
	if err != nil {
		return err
	}

	cars := make([]carEntry, 0, len(entries))
	for _, e := range entries {
		cars = append(cars, carEntry{CarModel: e.ModelName, CarMake: e.MakeName})
	}
	return c.JSON(http.StatusOK, carsResponse{CarModels: cars})
}
