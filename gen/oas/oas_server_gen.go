// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// GetMenu implements getMenu operation.
	//
	// Price list and promotion codes.
	//
	// GET /menu
	GetMenu(ctx context.Context) (*Menu, error)
	// QuoteOrder implements quoteOrder operation.
	//
	// Price an order and apply promotion codes.
	//
	// POST /quote
	QuoteOrder(ctx context.Context, req *QuoteRequest) (QuoteOrderRes, error)
	// RenderReceipt implements renderReceipt operation.
	//
	// Price an order and return the plain-text receipt.
	//
	// POST /receipt
	RenderReceipt(ctx context.Context, req *QuoteRequest) (RenderReceiptRes, error)
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h Handler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		baseServer: s,
	}, nil
}
