package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/domain/order"
)

// --- Mock implementations ---

type mockQuoter struct {
	lastReq order.QuoteRequest
	quote   *order.Quote
	err     error
}

func (m *mockQuoter) Quote(_ context.Context, req order.QuoteRequest) (*order.Quote, error) {
	m.lastReq = req
	return m.quote, m.err
}

// --- Helpers ---

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newService(t *testing.T, cfg order.Config) *order.Service {
	t.Helper()
	svc, err := order.NewService(cfg, tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	return svc
}

func newServer(t *testing.T, q Quoter) *oas.Server {
	t.Helper()
	srv, err := oas.NewServer(NewHandler(q),
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(tracenoop.NewTracerProvider()),
		oas.WithMeterProvider(metricnoop.NewMeterProvider()),
		oas.WithErrorHandler(ErrorHandler),
	)
	require.NoError(t, err)
	return srv
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func twoHotDrinks() *oas.QuoteRequest {
	return &oas.QuoteRequest{
		Items: []oas.Beverage{
			{
				BaseDrink: oas.NewOptString("Latte"),
				Size:      oas.NewOptString("Tall"),
				Temp:      oas.NewOptString("Hot"),
				PlantMilk: oas.NewOptString("Oat"),
				Shots:     oas.NewOptInt(2),
				Syrups:    []string{"Vanilla"},
			},
			{
				BaseDrink: oas.NewOptString("Tea"),
				Size:      oas.NewOptString("Grande"),
				Temp:      oas.NewOptString("Hot"),
				IsDecaf:   oas.NewOptBool(true),
			},
		},
		PromoCodes: []string{"HAPPYHOUR", "BOGO"},
	}
}

const twoHotDrinksJSON = `{
	"items": [
		{"baseDrink": "Latte", "size": "Tall", "temp": "Hot", "plantMilk": "Oat", "shots": 2, "syrups": ["Vanilla"]},
		{"baseDrink": "Tea", "size": "Grande", "temp": "Hot", "isDecaf": true}
	],
	"promoCodes": ["HAPPYHOUR", "BOGO"]
}`

// --- Tests ---

func TestGetMenu(t *testing.T) {
	h := NewHandler(&mockQuoter{})

	menu, err := h.GetMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, menu.Sizes, 3)
	assert.Equal(t, "Tall", menu.Sizes[0].Size)
	assert.InDelta(t, 3.00, menu.Sizes[0].Price, 1e-9)
	assert.InDelta(t, 0.75, menu.AddOns.Shot, 1e-9)
	require.Len(t, menu.Promotions, 2)
	assert.Equal(t, "HAPPYHOUR", menu.Promotions[0].Code)
	assert.Equal(t, "BOGO", menu.Promotions[1].Code)
}

func TestQuoteOrder_Success(t *testing.T) {
	h := NewHandler(newService(t, order.Config{Author: "Barista"}))

	res, err := h.QuoteOrder(context.Background(), twoHotDrinks())
	require.NoError(t, err)

	q, ok := res.(*oas.Quote)
	require.True(t, ok, "expected *oas.Quote, got %T", res)

	assert.NotEmpty(t, q.ID)
	require.Len(t, q.Items, 2)
	assert.InDelta(t, 5.40, q.Items[0].Breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 1.08, q.Items[0].Discount, 1e-9)
	assert.InDelta(t, 4.32, q.Items[0].Final, 1e-9)
	assert.InDelta(t, 3.50, q.Items[1].Discount, 1e-9)
	assert.InDelta(t, 0.00, q.Items[1].Final, 1e-9)
	assert.Equal(t, []string{"HAPPYHOUR", "BOGO"}, q.PromoCodes)
	require.Len(t, q.Discounts, 2)
	assert.InDelta(t, 1.78, q.Discounts[0].Amount, 1e-9)
	assert.InDelta(t, 2.80, q.Discounts[1].Amount, 1e-9)
	assert.InDelta(t, 8.90, q.Subtotal, 1e-9)
	assert.InDelta(t, 4.58, q.TotalDiscount, 1e-9)
	assert.InDelta(t, 4.32, q.Total, 1e-9)
	assert.Contains(t, q.Receipt, "Author: Barista")
}

func TestQuoteOrder_PassesRequestToService(t *testing.T) {
	m := &mockQuoter{quote: &order.Quote{ID: "q1"}}
	h := NewHandler(m)

	res, err := h.QuoteOrder(context.Background(), &oas.QuoteRequest{
		Items:      []oas.Beverage{{BaseDrink: oas.NewOptString("Mocha"), Shots: oas.NewOptInt(1)}},
		PromoCodes: []string{"bogo"},
	})
	require.NoError(t, err)
	require.IsType(t, &oas.Quote{}, res)

	require.Len(t, m.lastReq.Items, 1)
	assert.Equal(t, "Mocha", m.lastReq.Items[0].BaseDrink)
	assert.Equal(t, 1, m.lastReq.Items[0].Shots)
	assert.Equal(t, []string{"bogo"}, m.lastReq.PromoCodes)
}

func TestQuoteOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    oas.QuoteOrderRes
		wantErr bool
	}{
		{
			name: "empty items",
			err:  order.ErrEmptyItems,
			want: &oas.QuoteOrderBadRequest{Code: 400, Message: "items required"},
		},
		{
			name: "invalid beverage in strict mode",
			err: &order.InvalidBeverageError{
				Index:  0,
				Errors: []string{"A base drink is required."},
			},
			want: &oas.QuoteOrderUnprocessableEntity{
				Code:    422,
				Message: "item 1 is invalid: A base drink is required.",
			},
		},
		{
			name:    "unexpected service error",
			err:     errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockQuoter{err: tt.err})

			res, err := h.QuoteOrder(context.Background(), &oas.QuoteRequest{Items: []oas.Beverage{{}}})
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestRenderReceipt_Success(t *testing.T) {
	h := NewHandler(newService(t, order.Config{Author: "Barista"}))

	res, err := h.RenderReceipt(context.Background(), twoHotDrinks())
	require.NoError(t, err)

	ok, isOK := res.(*oas.RenderReceiptOK)
	require.True(t, isOK, "expected *oas.RenderReceiptOK, got %T", res)

	data, err := io.ReadAll(ok.Data)
	require.NoError(t, err)

	body := string(data)
	assert.True(t, strings.HasPrefix(body, "=== Coffee Shop Receipt ===\n"))
	assert.Contains(t, body, "BOGO: free item (once per order): $2.80")
	assert.True(t, strings.HasSuffix(body, "Total Due:                 $4.32\n"))
}

func TestRenderReceipt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    oas.RenderReceiptRes
		wantErr bool
	}{
		{
			name: "empty items",
			err:  order.ErrEmptyItems,
			want: &oas.RenderReceiptBadRequest{Code: 400, Message: "items required"},
		},
		{
			name: "invalid beverage in strict mode",
			err:  &order.InvalidBeverageError{Index: 1, Errors: []string{"Size is required."}},
			want: &oas.RenderReceiptUnprocessableEntity{
				Code:    422,
				Message: "item 2 is invalid: Size is required.",
			},
		},
		{
			name:    "unexpected service error",
			err:     errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockQuoter{err: tt.err})

			res, err := h.RenderReceipt(context.Background(), &oas.QuoteRequest{Items: []oas.Beverage{{}}})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestServer_Quote(t *testing.T) {
	srv := newServer(t, newService(t, order.Config{Author: "Barista"}))

	w := do(srv, http.MethodPost, "/api/quote", twoHotDrinksJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp struct {
		Total      float64  `json:"total"`
		PromoCodes []string `json:"promoCodes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 4.32, resp.Total, 1e-9)
	assert.Equal(t, []string{"HAPPYHOUR", "BOGO"}, resp.PromoCodes)
}

func TestServer_Receipt(t *testing.T) {
	srv := newServer(t, newService(t, order.Config{Author: "Barista"}))

	w := do(srv, http.MethodPost, "/api/receipt", twoHotDrinksJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Author: Barista")
}

func TestServer_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		quoter     *mockQuoter
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"items": [`,
			quoter:     &mockQuoter{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong field type",
			body:       `{"items": [{"shots": "two"}]}`,
			quoter:     &mockQuoter{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "shots",
		},
		{
			name:       "trailing data",
			body:       `{"items": [{}]} {"items": [{}]}`,
			quoter:     &mockQuoter{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "too many items",
			body:       `{"items": [` + strings.TrimSuffix(strings.Repeat(`{},`, 101), ",") + `]}`,
			quoter:     &mockQuoter{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "items",
		},
		{
			name:       "empty items",
			body:       `{"items": []}`,
			quoter:     &mockQuoter{err: order.ErrEmptyItems},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "items required",
		},
		{
			name:       "unexpected service error",
			body:       `{"items": [{}]}`,
			quoter:     &mockQuoter{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.quoter)

			w := do(srv, http.MethodPost, "/api/quote", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			resp := decodeError(t, w)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.NotEmpty(t, resp.Message)
			assert.Contains(t, resp.Message, tt.wantMsg)
		})
	}
}

func TestServer_StrictValidation(t *testing.T) {
	srv := newServer(t, newService(t, order.Config{StrictValidation: true}))

	w := do(srv, http.MethodPost, "/api/quote", `{"items": [{"baseDrink": "Latte", "size": "Tall", "temp": "Warm"}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "Hot/Iced")
}

func TestServer_BodyTooLarge(t *testing.T) {
	srv := newServer(t, &mockQuoter{})
	h := http.MaxBytesHandler(srv, 64)

	body := `{"items": [], "pad": "` + strings.Repeat("x", 128) + `"}`
	w := do(h, http.MethodPost, "/api/quote", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "request body too large", decodeError(t, w).Message)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv := newServer(t, &mockQuoter{})

	w := do(srv, http.MethodGet, "/api/quote", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_RouteLookup(t *testing.T) {
	srv := newServer(t, &mockQuoter{})

	route, ok := srv.FindPath(http.MethodPost, httptest.NewRequest(http.MethodPost, "/api/receipt", nil).URL)
	require.True(t, ok)
	assert.Equal(t, "RenderReceipt", route.Name())
	assert.Equal(t, "/receipt", route.PathPattern())
}
