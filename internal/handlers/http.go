// Package handlers exposes the order service over HTTP. JSON in, JSON out.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"foodflex/internal/domain"
	"foodflex/internal/logger"
	"foodflex/internal/repository"
	"foodflex/internal/service"
)

type Handler struct {
	svc *service.OrderService
	lg  *logger.Logger
}

func New(svc *service.OrderService, lg *logger.Logger) *Handler {
	return &Handler{svc: svc, lg: lg}
}

// Router builds the service mux. The metrics handler is mounted by the
// caller alongside it.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /restaurants", h.listRestaurants)
	mux.HandleFunc("GET /restaurants/{id}/menu", h.menu)
	mux.HandleFunc("GET /restaurants/{id}/bestsellers", h.bestSellers)
	mux.HandleFunc("GET /cart", h.cart)
	mux.HandleFunc("POST /cart/items", h.addToCart)
	mux.HandleFunc("DELETE /cart/items", h.removeFromCart)
	mux.HandleFunc("POST /orders", h.placeOrder)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	return mux
}

// customer identifies the cart owner; anonymous requests share the guest
// cart.
func customer(r *http.Request) string {
	if c := r.Header.Get("X-Customer"); c != "" {
		return c
	}
	return "guest"
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Restaurants())
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Menu(r.PathValue("id"), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) bestSellers(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.BestSellers(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) cart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Cart(r.Context(), customer(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type cartItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.svc.AddToCart(r.Context(), customer(r), req.RestaurantID, req.ItemID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	removed, err := h.svc.RemoveFromCart(r.Context(), customer(r), req.RestaurantID, req.ItemID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !removed {
		http.Error(w, "Item not in cart", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type placeOrderRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.PlaceOrder(r.Context(), customer(r), req.RestaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Order(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnknownRestaurant),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrItemUnavailable):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyOrder):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.lg.Error("request_failed", err, map[string]any{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
		})
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
