package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 200
)

var ErrUnexpectedStatus = errors.New("unexpected catalog status")

// Client resolves listings from the catalog service.
type Client struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:           url,
		client:        client,
		retryInterval: retryInterval,
	}
}

func (c *Client) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	url := c.url + "/api/listings/" + id.String()
	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		statusCode, respBody, err = c.client.Get(ctx, url, nil)
		if err == nil && statusCode < http.StatusInternalServerError {
			break
		}
		if err == nil {
			err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
		}
		zap.L().Warn("Catalog request failed", zap.String("listingID", id.String()), zap.Int("attempt", attempt), zap.Error(err))
		if attempt == maxRetries {
			return nil, fmt.Errorf("failed to fetch listing %s after %d retries: %w", id, maxRetries, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryInterval * time.Duration(attempt)):
		}
	}

	switch statusCode {
	case http.StatusOK:
		var listing domain.Listing
		if err := json.Unmarshal(respBody, &listing); err != nil {
			return nil, fmt.Errorf("failed to parse listing: %w", err)
		}
		if listing.ID != id {
			return nil, fmt.Errorf("listing id mismatch: expected %s, got %s", id, listing.ID)
		}
		return &listing, nil
	case http.StatusNotFound:
		return nil, domain.ErrListingNotFound
	default:
		zap.L().Error("Unexpected catalog status", zap.Int("status", statusCode), zap.String("listingID", id.String()))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}
}
