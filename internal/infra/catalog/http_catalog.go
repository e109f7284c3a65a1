package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"go.uber.org/zap"
)

// レスポンスの上限（1MB）
const maxResponseSize = 1 << 20

// ErrUnexpectedStatus は404以外の非2xx
var ErrUnexpectedStatus = errors.New("catalog: unexpected status")

// HTTPCatalog はリモートのカタログAPIを読むクライアント。
//
//	GET /products       -> []Product
//	GET /products/{id}  -> Product
//	GET /stock/{id}     -> Stock
type HTTPCatalog struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// DI
func NewHTTPCatalog(baseURL string, timeout time.Duration, log *zap.Logger) *HTTPCatalog {
	return NewHTTPCatalogWithClient(baseURL, &http.Client{Timeout: timeout}, log)
}

// 既存のhttp.Clientを使う（テスト用）
func NewHTTPCatalogWithClient(baseURL string, client *http.Client, log *zap.Logger) *HTTPCatalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPCatalog{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		log:        log.Named("catalog"),
	}
}

func (c *HTTPCatalog) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return []model.Product{}, err
	}
	if products == nil {
		return []model.Product{}, nil
	}
	return products, nil
}

func (c *HTTPCatalog) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(productID, 10), &p); err != nil {
		return model.Product{}, err
	}
	// 空オブジェクトは「無い」と同じ扱い
	if p.ID == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (c *HTTPCatalog) FindStock(ctx context.Context, productID int64) (model.Stock, error) {
	var s model.Stock
	if err := c.getJSON(ctx, "/stock/"+strconv.FormatInt(productID, 10), &s); err != nil {
		return model.Stock{}, err
	}
	if s.ID == 0 {
		return model.Stock{}, repo.ErrNotFound
	}
	return s, nil
}

func (c *HTTPCatalog) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("catalog: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("catalog: GET %s: %w", path, repo.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("catalog: GET %s: empty body: %w", path, repo.ErrNotFound)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}
