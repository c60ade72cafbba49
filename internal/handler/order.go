package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/api"
	"github.com/xenking/coffee-order/internal/domain/order"
	"github.com/xenking/coffee-order/internal/domain/pricing"
)

// GetMenu returns the price list and the supported promotion codes.
func (h *Handler) GetMenu(_ context.Context) (*oas.Menu, error) {
	return api.MenuToOAS(pricing.Menu()), nil
}

// QuoteOrder prices the order and returns the full quote.
func (h *Handler) QuoteOrder(ctx context.Context, req *oas.QuoteRequest) (oas.QuoteOrderRes, error) {
	q, err := h.quotes.Quote(ctx, api.QuoteRequestFromOAS(req))
	if err != nil {
		status, msg, ok := mapOrderError(err)
		switch {
		case !ok:
			return nil, errors.Wrap(err, "quote order")
		case status == http.StatusBadRequest:
			return &oas.QuoteOrderBadRequest{Code: status, Message: msg}, nil
		default:
			return &oas.QuoteOrderUnprocessableEntity{Code: status, Message: msg}, nil
		}
	}

	return api.QuoteToOAS(q), nil
}

// RenderReceipt prices the order and returns only its plain-text receipt.
func (h *Handler) RenderReceipt(ctx context.Context, req *oas.QuoteRequest) (oas.RenderReceiptRes, error) {
	q, err := h.quotes.Quote(ctx, api.QuoteRequestFromOAS(req))
	if err != nil {
		status, msg, ok := mapOrderError(err)
		switch {
		case !ok:
			return nil, errors.Wrap(err, "render receipt")
		case status == http.StatusBadRequest:
			return &oas.RenderReceiptBadRequest{Code: status, Message: msg}, nil
		default:
			return &oas.RenderReceiptUnprocessableEntity{Code: status, Message: msg}, nil
		}
	}

	return &oas.RenderReceiptOK{Data: strings.NewReader(q.Receipt + "\n")}, nil
}

// mapOrderError converts domain errors to HTTP status codes and messages.
func mapOrderError(err error) (int, string, bool) {
	if errors.Is(err, order.ErrEmptyItems) {
		return http.StatusBadRequest, err.Error(), true
	}

	var ibErr *order.InvalidBeverageError
	if errors.As(err, &ibErr) {
		return http.StatusUnprocessableEntity, ibErr.Error(), true
	}

	return 0, "", false
}
