package usecase

import (
	"errors"
	"fmt"
)

// HTTPエラー（カタログAPI用）
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カート操作の結果
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusOutOfStock
	StatusInvalid
	StatusTransport
	StatusStorage
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusOutOfStock:
		return "out_of_stock"
	case StatusInvalid:
		return "invalid"
	case StatusTransport:
		return "transport_error"
	case StatusStorage:
		return "storage_error"
	default:
		return "unknown"
	}
}

// ユーザーに見せる固定メッセージ
const (
	MsgAddFailed    = "failed to add product"
	MsgOutOfStock   = "requested quantity is out of stock"
	MsgRemoveFailed = "failed to remove product"
	MsgUpdateFailed = "failed to change product quantity"
)

// カート操作の失敗。Messageは操作ごとの固定文言。
type CartError struct {
	Status  Status
	Message string
	Err     error
}

func (e *CartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CartError) Unwrap() error {
	return e.Err
}

func newCartError(status Status, message string, cause error) error {
	return &CartError{
		Status:  status,
		Message: message,
		Err:     cause,
	}
}

func AsCartError(err error) (*CartError, bool) {
	var ce *CartError
	ok := errors.As(err, &ce)
	return ce, ok
}

// errの分類。nilならStatusOK。
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if ce, ok := AsCartError(err); ok {
		return ce.Status
	}
	return StatusTransport
}
