package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/downstream"
)

// DealerHandler exposes the dealer and review aggregation routes. The
// response envelopes are part of the caller contract and fixed per route.
type DealerHandler struct {
	service ports.DealerService
}

func NewDealerHandler(service ports.DealerService) *DealerHandler {
	return &DealerHandler{service: service}
}

type dealersResponse struct {
	Status  int             `json:"status"`
	Dealers json.RawMessage `json:"dealers"`
}

type dealerResponse struct {
	Status int             `json:"status"`
	Dealer json.RawMessage `json:"dealer"`
}

type reviewsResponse struct {
	Status  int `json:"status"`
	Reviews any `json:"reviews"`
}

// ListDealers lists dealerships, optionally filtered by state. "All" (or no
// segment) means every state. Always responds 200; a downstream failure
// shows up as a null dealer list.
//
// @Summary      List dealerships
// @Tags         dealers
// @Produce      json
// @Param        state  path      string  false  "State filter"
// @Success      200    {object}  dealersResponse
// @Router       /get_dealers/{state} [get]
func (h *DealerHandler) ListDealers(c echo.Context) error {
	state := c.Param("state")
	if state == "All" {
		state = ""
	}
	dealers := h.service.ListDealers(c.Request().Context(), state)
	return c.JSON(http.StatusOK, dealersResponse{Status: http.StatusOK, Dealers: dealers})
}

// GetDealer returns one dealership's details.
//
// @Summary      Get dealer details
// @Tags         dealers
// @Produce      json
// @Param        id   path      int  true  "Dealer id"
// @Success      200  {object}  dealerResponse
// @Failure      400  {object}  statusMessage
// @Router       /dealer/{id} [get]
func (h *DealerHandler) GetDealer(c echo.Context) error {
	dealerID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c)
	}
	dealer, err := h.service.GetDealer(c.Request().Context(), dealerID)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			return badRequest(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, dealerResponse{Status: http.StatusOK, Dealer: dealer})
}

// GetDealerReviews returns a dealer's reviews, each annotated with a
// sentiment label.
//
// @Summary      Get dealer reviews (sentiment-enriched)
// @Tags         dealers
// @Produce      json
// @Param        id   path      int  true  "Dealer id"
// @Success      200  {object}  reviewsResponse
// @Failure      400  {object}  statusMessage
// @Router       /reviews/dealer/{id} [get]
func (h *DealerHandler) GetDealerReviews(c echo.Context) error {
	dealerID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c)
	}
	reviews, err := h.service.GetDealerReviews(c.Request().Context(), dealerID)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			return badRequest(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, reviewsResponse{Status: http.StatusOK, Reviews: reviews})
}

// GetReview returns one review, sentiment-enriched.
//
// @Summary      Get a single review
// @Tags         dealers
// @Produce      json
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  reviewsResponse
// @Failure      400  {object}  statusMessage
// @Router       /reviews/{id} [get]
func (h *DealerHandler) GetReview(c echo.Context) error {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c)
	}
	review, err := h.service.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			return badRequest(c)
		case errors.Is(err, domain.ErrReviewNotFound):
			return c.JSON(http.StatusBadRequest, statusMessage{Status: http.StatusBadRequest, Message: "review not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, reviewsResponse{Status: http.StatusOK, Reviews: review})
}

// AddReview forwards a review to the dealer service. Anonymous callers are
// rejected with 403; a downstream failure surfaces as 401 with a fixed
// message (historical contract, kept as-is).
//
// @Summary      Post a review
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  statusMessage
// @Failure      403  {object}  statusMessage
// @Router       /add_review [post]
func (h *DealerHandler) AddReview(c echo.Context) error {
	if sessionUser(c) == nil {
		return c.JSON(http.StatusForbidden, statusMessage{Status: http.StatusForbidden, Message: "Unauthorized"})
	}

	payload, err := rawBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusMessage{Status: http.StatusBadRequest, Message: "Bad Request"})
	}

	if err := h.service.AddReview(c.Request().Context(), payload); err != nil {
		return c.JSON(http.StatusUnauthorized, statusMessage{Status: http.StatusUnauthorized, Message: "Error in posting review"})
	}
	return c.JSON(http.StatusOK, map[string]int{"status": http.StatusOK})
}

// EditReview forwards a review update. The downstream's 403 and 404 are
// translated to fixed messages; anything else becomes a generic 500.
//
// @Summary      Edit a review
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Review id"
// @Success      200
// @Failure      403  {object}  message
// @Failure      404  {object}  message
// @Failure      405  {object}  message
// @Failure      500  {object}  message
// @Router       /put_review/{id} [put]
func (h *DealerHandler) EditReview(c echo.Context) error {
	if c.Request().Method != http.MethodPut {
		return methodNotAllowed(c)
	}
	reviewID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c)
	}
	payload, err := rawBody(c)
	if err != nil {
		return badRequest(c)
	}

	resp, err := h.service.EditReview(c.Request().Context(), reviewID, payload)
	if err != nil {
		switch downstream.StatusCode(err) {
		case http.StatusForbidden:
			return c.JSON(http.StatusForbidden, message{Message: "Forbidden: You do not have permission to edit this review"})
		case http.StatusNotFound:
			return c.JSON(http.StatusNotFound, message{Message: "Review not found"})
		default:
			return c.JSON(http.StatusInternalServerError, message{Message: "An error occurred editing the review"})
		}
	}
	return c.JSONBlob(http.StatusOK, resp)
}

// NewDealer forwards a dealer-creation payload. Authorization is enforced by
// the downstream service, not here.
//
// @Summary      Create a dealer
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      401  {object}  message
// @Failure      405  {object}  message
// @Router       /new_dealer [post]
func (h *DealerHandler) NewDealer(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return methodNotAllowed(c)
	}
	payload, err := rawBody(c)
	if err != nil {
		return badRequest(c)
	}

	resp, err := h.service.NewDealer(c.Request().Context(), payload)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, message{Message: "Error in creating Dealer"})
	}
	return c.JSONBlob(http.StatusOK, resp)
}

// EditDealer forwards a dealer update. Authorization is checked before the
// verb: admins may edit any dealer, a dealer account only its own.
//
// @Summary      Edit a dealer
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Dealer id"
// @Success      200
// @Failure      401  {object}  message
// @Failure      403  {object}  statusMessage
// @Failure      405  {object}  message
// @Router       /edit_dealer/{id} [put]
func (h *DealerHandler) EditDealer(c echo.Context) error {
	dealerID, _ := strconv.Atoi(c.Param("id"))
	user := sessionUser(c)
	if user == nil || !user.CanEditDealer(dealerID) {
		return c.JSON(http.StatusForbidden, statusMessage{Status: http.StatusForbidden, Message: "No Access"})
	}
	if c.Request().Method != http.MethodPut {
		return methodNotAllowed(c)
	}
	if dealerID <= 0 {
		return badRequest(c)
	}
	payload, err := rawBody(c)
	if err != nil {
		return badRequest(c)
	}

	resp, err := h.service.EditDealer(c.Request().Context(), user, dealerID, payload)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, statusMessage{Status: http.StatusForbidden, Message: "No Access"})
		}
		return c.JSON(http.StatusUnauthorized, message{Message: "Error in Editing Dealer"})
	}
	return c.JSONBlob(http.StatusOK, resp)
}

// --- shared helpers ---

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// rawBody reads the request body as an opaque JSON payload.
func rawBody(c echo.Context) (json.RawMessage, error) {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, errors.New("body is not valid JSON")
	}
	return payload, nil
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, statusMessage{Status: http.StatusBadRequest, Message: "Bad Request"})
}

func methodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, message{Message: "Method Not Allowed"})
}
