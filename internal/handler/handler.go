package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/domain/order"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Quoter prices orders. *order.Service implements it.
type Quoter interface {
	Quote(ctx context.Context, req order.QuoteRequest) (*order.Quote, error)
}

var _ Quoter = (*order.Service)(nil)

// Handler implements the ogen-generated Handler interface, delegating business
// logic to the order service.
type Handler struct {
	oas.UnimplementedHandler

	quotes Quoter
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(quotes Quoter) *Handler {
	return &Handler{quotes: quotes}
}

// ErrorHandler writes the errors ogen raises before or after a handler method
// runs: unreadable or invalid request bodies and unexpected handler errors.
// Bodies cut off by http.MaxBytesReader are reported as 413.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := "internal server error"

	var (
		tooLarge *http.MaxBytesError
		ogenErr  ogenerrors.Error
	)
	switch {
	case errors.As(err, &tooLarge):
		code, msg = http.StatusRequestEntityTooLarge, "request body too large"
	case errors.As(err, &ogenErr):
		code, msg = ogenErr.Code(), err.Error()
	}

	if code >= http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		msg = "internal server error"
	}

	writeError(w, code, msg)
}

func writeError(w http.ResponseWriter, code int, message string) {
	var e jx.Encoder
	(&oas.Error{Code: code, Message: message}).Encode(&e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}
