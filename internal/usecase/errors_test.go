package usecase_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, usecase.StatusOK, usecase.StatusOf(nil))
	assert.Equal(t, usecase.StatusTransport, usecase.StatusOf(errors.New("boom")))

	wrapped := fmt.Errorf("handler: %w", &usecase.CartError{Status: usecase.StatusOutOfStock, Message: usecase.MsgOutOfStock})
	assert.Equal(t, usecase.StatusOutOfStock, usecase.StatusOf(wrapped))
}

func TestCartError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &usecase.CartError{Status: usecase.StatusTransport, Message: usecase.MsgAddFailed, Err: cause}

	assert.Equal(t, "failed to add product: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &usecase.CartError{Status: usecase.StatusOutOfStock, Message: usecase.MsgOutOfStock}
	assert.Equal(t, "requested quantity is out of stock", bare.Error())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", usecase.StatusOK.String())
	assert.Equal(t, "not_found", usecase.StatusNotFound.String())
	assert.Equal(t, "out_of_stock", usecase.StatusOutOfStock.String())
	assert.Equal(t, "invalid", usecase.StatusInvalid.String())
	assert.Equal(t, "transport_error", usecase.StatusTransport.String())
	assert.Equal(t, "storage_error", usecase.StatusStorage.String())
	assert.Equal(t, "unknown", usecase.Status(99).String())
}

func TestAsHTTPError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", usecase.NewHTTPError(http.StatusNotFound, "not found"))

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "404: not found", he.Error())

	_, ok = usecase.AsHTTPError(errors.New("plain"))
	assert.False(t, ok)
}
