// Package ordersync notifies the commerce platform about handover window
// changes over its REST API.
package ordersync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lockerfleet/internal/core/domain/model/delivery"
)

const requestTimeout = 10 * time.Second

// handoverChangedRequest is the payload the commerce platform expects on
// a handover window change.
type handoverChangedRequest struct {
	OrderNumber  string    `json:"orderNumber"`
	CabinetID    string    `json:"cabinetId"`
	HandoverFrom time.Time `json:"handoverFrom"`
	HandoverTo   time.Time `json:"handoverTo"`
}

// Client implements ports.OrderSyncPort over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a commerce platform client. baseURL must not carry a
// trailing slash.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NotifyHandoverChanged reports the delivery's new handover window for the
// given order. Any non-2xx response is an error.
func (c *Client) NotifyHandoverChanged(
	ctx context.Context,
	order *delivery.Order,
	d *delivery.Delivery,
) error {
	payload, err := json.Marshal(handoverChangedRequest{
		OrderNumber:  order.Number(),
		CabinetID:    d.CabinetID().String(),
		HandoverFrom: d.HandoverFrom(),
		HandoverTo:   d.HandoverTo(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode handover notification: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/orders/%s/handover", c.baseURL, order.Number())
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build handover notification: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to deliver handover notification: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("commerce platform rejected handover notification: status %d", response.StatusCode)
	}

	return nil
}
