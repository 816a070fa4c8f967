// Package irys implements service.ContentStore against an Irys-style bundler node and gateway.
package irys

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const maxResponseSize = 16 << 20

// client talks to two endpoints: the node (uploads, balance, price, funding)
// and the gateway (record retrieval and GraphQL tag queries).
type client struct {
	nodeURL    string
	gatewayURL string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a content store for the irys provider.
func NewClient(cfg config.StoreConfig, httpClient *http.Client, logger *slog.Logger) (service.ContentStore, error) {
	if cfg.NodeURL == "" || cfg.GatewayURL == "" {
		return nil, errors.New("node URL and gateway URL are required for irys provider")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	token := cfg.Token
	if token == "" {
		token = "ethereum"
	}

	return &client{
		nodeURL:    strings.TrimRight(cfg.NodeURL, "/"),
		gatewayURL: strings.TrimRight(cfg.GatewayURL, "/"),
		token:      token,
		timeout:    cfg.RequestTimeout,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type uploadRequest struct {
	Data string      `json:"data"` // base64
	Tags entity.Tags `json:"tags"`
}

// Upload posts data with its tags to the node.
func (c *client) Upload(ctx context.Context, data []byte, tags entity.Tags) (*service.UploadReceipt, error) {
	body, err := json.Marshal(uploadRequest{
		Data: base64.StdEncoding.EncodeToString(data),
		Tags: tags,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.nodeURL+"/upload/"+c.token, body)
	if err != nil {
		return nil, err
	}

	id := gjson.GetBytes(resp, "id").String()
	if id == "" {
		return nil, errors.New("node returned a receipt without id")
	}

	receipt := &service.UploadReceipt{
		ID:        id,
		Size:      len(data),
		Timestamp: time.UnixMilli(gjson.GetBytes(resp, "timestamp").Int()).UTC(),
		Signature: gjson.GetBytes(resp, "signature").String(),
	}
	if price := gjson.GetBytes(resp, "price"); price.Exists() {
		receipt.Price, _ = new(big.Int).SetString(price.String(), 10)
	}

	c.logger.Debug("[Irys] Uploaded record", slog.String("id", id), slog.Int("size", len(data)))

	return receipt, nil
}

// Fetch downloads a record from the gateway.
func (c *client) Fetch(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, service.ErrRecordNotFound
	}

	return c.do(ctx, http.MethodGet, c.RetrievalURL(id), nil)
}

const transactionsQuery = `query($tags: [TagFilter!], $ids: [String!], $first: Int, $order: SortOrder) {
  transactions(tags: $tags, ids: $ids, first: $first, order: $order) {
    edges { node { id timestamp tags { name value } } }
  }
}`

type tagFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Query runs a GraphQL transactions query against the gateway.
func (c *client) Query(ctx context.Context, filter service.QueryFilter) ([]service.QueryResult, error) {
	variables := map[string]any{}
	if len(filter.Tags) > 0 {
		tags := make([]tagFilter, 0, len(filter.Tags))
		for _, tag := range filter.Tags {
			tags = append(tags, tagFilter{Name: tag.Name, Values: []string{tag.Value}})
		}
		variables["tags"] = tags
	}
	if len(filter.IDs) > 0 {
		variables["ids"] = filter.IDs
	}
	if filter.Limit > 0 {
		variables["first"] = filter.Limit
	}
	order := filter.Order
	if order == "" {
		order = service.SortNewestFirst
	}
	variables["order"] = string(order)

	body, err := json.Marshal(map[string]any{
		"query":     transactionsQuery,
		"variables": variables,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.gatewayURL+"/graphql", body)
	if err != nil {
		return nil, err
	}

	if gqlErr := gjson.GetBytes(resp, "errors.0.message"); gqlErr.Exists() {
		return nil, domainerrors.ErrNetworkError.WrapMessage("graphql: " + gqlErr.String())
	}

	edges := gjson.GetBytes(resp, "data.transactions.edges").Array()
	results := make([]service.QueryResult, 0, len(edges))
	for _, edge := range edges {
		node := edge.Get("node")
		result := service.QueryResult{
			ID:        node.Get("id").String(),
			Timestamp: time.UnixMilli(node.Get("timestamp").Int()).UTC(),
		}
		for _, tag := range node.Get("tags").Array() {
			result.Tags = append(result.Tags, entity.Tag{
				Name:  tag.Get("name").String(),
				Value: tag.Get("value").String(),
			})
		}
		results = append(results, result)
	}

	return results, nil
}

// Balance returns the funded node balance of address.
func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	endpoint := fmt.Sprintf("%s/account/balance/%s?address=%s", c.nodeURL, c.token, url.QueryEscape(address))
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return parseAmount(gjson.GetBytes(resp, "balance"))
}

// Price returns the node's price for size bytes.
func (c *client) Price(ctx context.Context, size int) (*big.Int, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/price/%s/%d", c.nodeURL, c.token, size), nil)
	if err != nil {
		return nil, err
	}

	return parseAmount(gjson.ParseBytes(resp))
}

// Fund asks the node to credit amount to address.
func (c *client) Fund(ctx context.Context, address string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("fund amount must be positive")
	}

	body, err := json.Marshal(map[string]string{
		"address": address,
		"amount":  amount.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = c.do(ctx, http.MethodPost, c.nodeURL+"/account/fund/"+c.token, body)

	return err
}

// RetrievalURL is gateway + "/" + id.
func (c *client) RetrievalURL(id string) string {
	return c.gatewayURL + "/" + id
}

// do runs one request under the per-call timeout and returns the response body.
// 404 maps to service.ErrRecordNotFound, transport failures and other non-2xx
// statuses to ErrNetworkError.
func (c *client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "%s %s: %v", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "read %s: %v", endpoint, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrap(service.ErrRecordNotFound, endpoint)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "%s %s returned status %d", method, endpoint, resp.StatusCode)
	}

	return data, nil
}

func parseAmount(value gjson.Result) (*big.Int, error) {
	raw := value.String()
	if value.Type == gjson.Number {
		raw = value.Raw
	}
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", raw)
	}

	return amount, nil
}
