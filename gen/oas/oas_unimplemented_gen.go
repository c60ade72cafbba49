// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// GetMenu implements getMenu operation.
//
// Price list and promotion codes.
//
// GET /menu
func (UnimplementedHandler) GetMenu(ctx context.Context) (r *Menu, _ error) {
	return r, ht.ErrNotImplemented
}

// QuoteOrder implements quoteOrder operation.
//
// Price an order and apply promotion codes.
//
// POST /quote
func (UnimplementedHandler) QuoteOrder(ctx context.Context, req *QuoteRequest) (r QuoteOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// RenderReceipt implements renderReceipt operation.
//
// Price an order and return the plain-text receipt.
//
// POST /receipt
func (UnimplementedHandler) RenderReceipt(ctx context.Context, req *QuoteRequest) (r RenderReceiptRes, _ error) {
	return r, ht.ErrNotImplemented
}
