// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	GetMenuOperation       OperationName = "GetMenu"
	QuoteOrderOperation    OperationName = "QuoteOrder"
	RenderReceiptOperation OperationName = "RenderReceipt"
)
