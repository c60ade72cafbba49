// Code generated by ogen, DO NOT EDIT.
package oas

type QuoteOrderRes interface {
	quoteOrderRes()
}

type RenderReceiptRes interface {
	renderReceiptRes()
}
