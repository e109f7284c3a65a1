package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CartUsecase はカートの状態を持ち、変更のたびにスロットへ全件書き込む。
// メモリ上のカートが正で、スロットはその写し。
type CartUsecase struct {
	catalog repo.CatalogRepository
	slots   repo.SlotRepository
	key     string
	log     *zap.Logger

	locks *productLocks

	mu       sync.Mutex
	cart     model.Cart
	revision int64
}

// UpdateProductAmount の入力。Amountは差分ではなく設定後の数量。
type UpdateProductAmountInput struct {
	ProductID int64
	Amount    int64
}

// GET /cart の返却
type CartSummary struct {
	Items    model.Cart      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Revision int64           `json:"revision"`
}

// "<namespace>:cart"
func CartSlotKey(namespace string) string {
	return namespace + ":cart"
}

// スロットからカートを読み込んで生成する。
// スロットが無い・壊れている場合は空カートで始める。
func NewCartUsecase(
	ctx context.Context,
	catalog repo.CatalogRepository,
	slots repo.SlotRepository,
	namespace string,
	log *zap.Logger,
) (*CartUsecase, error) {
	if log == nil {
		log = zap.NewNop()
	}

	u := &CartUsecase{
		catalog: catalog,
		slots:   slots,
		key:     CartSlotKey(namespace),
		log:     log,
		locks:   newProductLocks(),
	}

	cart, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	u.cart = cart

	return u, nil
}

func (u *CartUsecase) load(ctx context.Context) (model.Cart, error) {
	data, err := u.slots.Get(ctx, u.key)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %q: %w", u.key, err)
	}

	var stored model.Cart
	if err := json.Unmarshal(data, &stored); err != nil {
		u.log.Warn("stored cart is not valid JSON, starting empty",
			zap.String("key", u.key),
			zap.Error(err),
		)
		return model.Cart{}, nil
	}

	// 同一IDは先頭の明細だけ残す
	cart := make(model.Cart, 0, len(stored))
	for _, p := range stored {
		if cart.IndexOf(p.ID) >= 0 {
			u.log.Warn("dropping duplicate cart entry", zap.Int64("product_id", p.ID))
			continue
		}
		cart = append(cart, p)
	}

	u.log.Info("cart loaded", zap.String("key", u.key), zap.Int("items", len(cart)))
	return cart, nil
}

// 現在のカート（コピー）
func (u *CartUsecase) Cart() model.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.Clone()
}

// 変更のたびに1つ進む
func (u *CartUsecase) Revision() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.revision
}

func (u *CartUsecase) Summary() CartSummary {
	u.mu.Lock()
	defer u.mu.Unlock()

	return CartSummary{
		Items:    u.cart.Clone(),
		Total:    u.cart.Total(),
		Revision: u.revision,
	}
}

// AddProduct はカートに1つ追加する。
// 既にあれば数量+1（在庫を超える場合は在庫切れ）、無ければ数量1で末尾に追加。
func (u *CartUsecase) AddProduct(ctx context.Context, productID int64) error {
	unlock := u.locks.Lock(productID)
	defer unlock()

	var (
		stock   model.Stock
		product model.Product
	)

	// 在庫と商品は並行で取得。どちらか失敗したら中止
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.catalog.FindStock(gctx, productID)
		if err != nil {
			return fmt.Errorf("stock %d: %w", productID, err)
		}
		stock = s
		return nil
	})
	g.Go(func() error {
		p, err := u.catalog.FindProduct(gctx, productID)
		if err != nil {
			return fmt.Errorf("product %d: %w", productID, err)
		}
		product = p
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Warn("add product: catalog lookup failed", zap.Int64("product_id", productID), zap.Error(err))
		return fetchError(MsgAddFailed, err)
	}
	if product.ID == 0 {
		return newCartError(StatusNotFound, MsgAddFailed, repo.ErrNotFound)
	}

	if current, ok := u.amountOf(productID); ok {
		// +1する前に比べる（MaxInt64で桁あふれさせない）
		if current >= stock.Amount {
			u.log.Info("add product: out of stock",
				zap.Int64("product_id", productID),
				zap.Int64("current", current),
				zap.Int64("stock", stock.Amount),
			)
			return newCartError(StatusOutOfStock, MsgOutOfStock, nil)
		}
		return u.updateAmount(ctx, productID, current+1)
	}

	product.Amount = 1
	return u.commit(ctx, MsgAddFailed, func(cart model.Cart) (model.Cart, error) {
		return append(cart, product), nil
	})
}

// RemoveProduct は明細を削除する。無いIDはエラーで何も変えない。
func (u *CartUsecase) RemoveProduct(ctx context.Context, productID int64) error {
	unlock := u.locks.Lock(productID)
	defer unlock()

	return u.commit(ctx, MsgRemoveFailed, func(cart model.Cart) (model.Cart, error) {
		i := cart.IndexOf(productID)
		if i < 0 {
			return nil, fmt.Errorf("product %d: %w", productID, repo.ErrNotFound)
		}

		next := make(model.Cart, 0, len(cart)-1)
		next = append(next, cart[:i]...)
		next = append(next, cart[i+1:]...)
		return next, nil
	})
}

// UpdateProductAmount は数量を in.Amount に置き換える。
// 在庫との比較はしない（呼び出し側の責任）。
func (u *CartUsecase) UpdateProductAmount(ctx context.Context, in UpdateProductAmountInput) error {
	if in.Amount < 1 {
		return newCartError(StatusInvalid, MsgUpdateFailed, fmt.Errorf("invalid amount %d", in.Amount))
	}

	unlock := u.locks.Lock(in.ProductID)
	defer unlock()

	return u.updateAmount(ctx, in.ProductID, in.Amount)
}

// 商品ロックを持った状態で呼ぶ。
func (u *CartUsecase) updateAmount(ctx context.Context, productID int64, amount int64) error {
	// カタログに存在するかだけ確認
	p, err := u.catalog.FindProduct(ctx, productID)
	if err != nil {
		u.log.Warn("update amount: catalog lookup failed", zap.Int64("product_id", productID), zap.Error(err))
		return fetchError(MsgUpdateFailed, err)
	}
	if p.ID == 0 {
		return newCartError(StatusNotFound, MsgUpdateFailed, repo.ErrNotFound)
	}

	return u.commit(ctx, MsgUpdateFailed, func(cart model.Cart) (model.Cart, error) {
		i := cart.IndexOf(productID)
		if i < 0 {
			return nil, fmt.Errorf("product %d: %w", productID, repo.ErrNotFound)
		}
		cart[i].Amount = amount
		return cart, nil
	})
}

func (u *CartUsecase) amountOf(productID int64) (int64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.cart.IndexOf(productID)
	if i < 0 {
		return 0, false
	}
	return u.cart[i].Amount, true
}

// 現在のカートに変更を適用し、保存に成功したときだけメモリを置き換える。
func (u *CartUsecase) commit(ctx context.Context, msg string, mutate func(model.Cart) (model.Cart, error)) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next, err := mutate(u.cart.Clone())
	if err != nil {
		return newCartError(StatusNotFound, msg, err)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return newCartError(StatusStorage, msg, err)
	}

	// 書き込みが届いたのにキャンセルでエラーになり、メモリだけ古いまま残るのを防ぐ
	if err := u.slots.Set(context.WithoutCancel(ctx), u.key, data); err != nil {
		u.log.Error("persist cart failed", zap.String("key", u.key), zap.Error(err))
		return newCartError(StatusStorage, msg, err)
	}

	u.cart = next
	u.revision++
	u.log.Debug("cart persisted", zap.Int64("revision", u.revision), zap.Int("items", len(next)))
	return nil
}

func fetchError(msg string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return newCartError(StatusNotFound, msg, err)
	}
	return newCartError(StatusTransport, msg, err)
}
