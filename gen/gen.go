// Package gen holds code generated from api/openapi.yaml.
//
// Run go generate ./... after changing the API description.
package gen

//go:generate go run github.com/ogen-go/ogen/cmd/ogen@v1.19.0 --target oas --package oas --clean ../api/openapi.yaml
