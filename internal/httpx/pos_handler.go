package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	kafkax "github.com/ariefcatur/go-laundry-pos.git/internal/kafka"
	"github.com/ariefcatur/go-laundry-pos.git/internal/pos"
	"github.com/ariefcatur/go-laundry-pos.git/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

type PosHandler struct {
	Repo     *pos.Repo
	Producer *kafkax.Producer
	Redis    *redis.Client
	Service  string
}

type CreateOrderResp struct {
	OrderID string `json:"order_id"`
}

func (h *PosHandler) Register(r *chi.Mux) {
	r.Post("/pos/orders", h.createOrder)
	r.Get("/pos/items", h.listItems)
	r.Get("/pos/vouchers", h.listVouchers)
	r.Get("/pos/vouchers/{code}", h.getVoucherByCode)
	r.Get("/pos/members", h.searchMembers)
	r.Get("/orders/{id}", h.getOrder)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError memetakan taksonomi error engine ke kelas HTTP: NotFound -> 404,
// validasi/conflict -> 4xx, sisanya 500. Transaksi sudah di-rollback di repo;
// di sini tinggal lapor.
func writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, pos.ErrVoucherNotFound),
		errors.Is(err, pos.ErrMemberNotFound),
		errors.Is(err, pos.ErrInventoryNotFound):
		code = http.StatusNotFound
	case errors.Is(err, pos.ErrEmptyOrder),
		errors.Is(err, pos.ErrInvalidItem),
		errors.Is(err, pos.ErrUnsupportedPayment):
		code = http.StatusBadRequest
	case errors.Is(err, pos.ErrInsufficientCash):
		code = http.StatusPaymentRequired
	case errors.Is(err, pos.ErrInsufficientPoints):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (h *PosHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in pos.NewOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	userID := r.Header.Get("X-User-Id") // staf kasir; auth layer di depan
	if in.CustomerName == "" || userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.Repo.CreateOrderTx(ctx, in, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Commit sudah jalan; sisanya fire-and-forget.
	status, _ := h.Repo.GetOrderStatus(ctx, orderID)
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, statusKey, fmt.Sprintf(`{"status":%q}`, status), redisx.TTLStatusCache).Err()

	ev := pos.Envelope{
		EventID:       uuid.NewString(),
		EventType:     pos.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: orderID,
	}
	ev.Payload = kafkax.MustMarshal(pos.OrderCreatedPayload{
		OrderID:     orderID,
		Status:      status,
		MemberID:    in.MemberID,
		PaymentType: in.PaymentType,
	})
	h.Producer.Publish(pos.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(pos.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusCreated, CreateOrderResp{OrderID: orderID})
}

func (h *PosHandler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// 1) coba cache
	if s, err := h.Redis.Get(ctx, redisx.KeyPOSItems).Result(); err == nil && s != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(s))
		return
	}

	// 2) fallback DB, lalu isi cache (invalidasi jalan lewat cacheworker)
	items, err := h.Repo.ListPOSItems(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	b, _ := json.Marshal(items)
	_ = h.Redis.Set(ctx, redisx.KeyPOSItems, b, redisx.TTLCatalog).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *PosHandler) listVouchers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	vs, err := h.Repo.ListActiveVouchers(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, vs)
}

func (h *PosHandler) getVoucherByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing code"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	v, err := h.Repo.GetVoucherByCode(ctx, code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *PosHandler) searchMembers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ms, err := h.Repo.SearchMembers(ctx, r.URL.Query().Get("search"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if ms == nil {
		ms = []pos.Member{}
	}
	writeJSON(w, http.StatusOK, ms)
}

func (h *PosHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// 1) coba cache
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(s))
		return
	}

	// 2) fallback DB
	status, err := h.Repo.GetOrderStatus(ctx, orderID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	body := map[string]any{"status": status}
	b, _ := json.Marshal(body)
	_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
