package usecase

import (
	"context"

	"storefront/internal/domain/model"
)

// 画面に出すエラー通知。待たない・結果を返さない。
type Notifier interface {
	Error(message string)
}

// NotifyingCart はカート操作が失敗したとき固定文言を通知する。
// 結果(error)はそのまま返すので、呼び出し側は Status で分岐もできる。
type NotifyingCart struct {
	cart     *CartUsecase
	notifier Notifier
}

// DI
func NewNotifyingCart(cart *CartUsecase, notifier Notifier) *NotifyingCart {
	return &NotifyingCart{cart: cart, notifier: notifier}
}

func (c *NotifyingCart) Cart() model.Cart {
	return c.cart.Cart()
}

func (c *NotifyingCart) Summary() CartSummary {
	return c.cart.Summary()
}

func (c *NotifyingCart) AddProduct(ctx context.Context, productID int64) error {
	return c.report(c.cart.AddProduct(ctx, productID), MsgAddFailed)
}

func (c *NotifyingCart) RemoveProduct(ctx context.Context, productID int64) error {
	return c.report(c.cart.RemoveProduct(ctx, productID), MsgRemoveFailed)
}

func (c *NotifyingCart) UpdateProductAmount(ctx context.Context, in UpdateProductAmountInput) error {
	return c.report(c.cart.UpdateProductAmount(ctx, in), MsgUpdateFailed)
}

func (c *NotifyingCart) report(err error, fallback string) error {
	if err == nil {
		return nil
	}

	msg := fallback
	if ce, ok := AsCartError(err); ok {
		msg = ce.Message
	}
	c.notifier.Error(msg)

	return err
}
