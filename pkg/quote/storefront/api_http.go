package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const cartCreateMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart {
      id
      checkoutUrl
    }
    userErrors {
      field
      message
    }
  }
}`

const cartBuyerIdentityUpdateMutation = `
mutation cartBuyerIdentityUpdate($cartId: ID!, $buyerIdentity: CartBuyerIdentityInput!) {
  cartBuyerIdentityUpdate(cartId: $cartId, buyerIdentity: $buyerIdentity) {
    cart {
      id
      checkoutUrl
      cost {
        totalAmount { amount currencyCode }
        subtotalAmount { amount currencyCode }
        totalTaxAmount { amount currencyCode }
        totalDutyAmount { amount currencyCode }
      }
      deliveryGroups(first: 10) {
        edges {
          node {
            deliveryOptions {
              handle
              title
              description
              deliveryMethodType
              estimatedCost { amount currencyCode }
            }
          }
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const variantQuery = `
query getVariant($id: ID!, $country: CountryCode!) @inContext(country: $country) {
  node(id: $id) {
    ... on ProductVariant {
      id
      title
      price { amount currencyCode }
      compareAtPrice { amount currencyCode }
      availableForSale
      product {
        id
        title
        handle
      }
    }
  }
}`

const shopQuery = `
query {
  shop {
    name
    primaryDomain { host }
    paymentSettings { enabledPresentmentCurrencies }
    shipsToCountries
  }
}`

// HTTPAPIClient is the production implementation of APIClient using HTTP.
type HTTPAPIClient struct {
	shopDomain  string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	ShopDomain  string // e.g. "my-store.myshopify.com"
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-01"
	}

	return &HTTPAPIClient{
		shopDomain:  cfg.ShopDomain,
		accessToken: cfg.AccessToken,
		apiVersion:  apiVersion,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CartCreate creates a cart via the cartCreate mutation.
func (c *HTTPAPIClient) CartCreate(ctx context.Context, input *CartInput, countryCode string) (*CartCreatePayload, error) {
	data, err := c.doGraphQL(ctx, cartCreateMutation, map[string]interface{}{
		"input":   input,
		"country": countryCode,
	}, countryCode)
	if err != nil {
		return nil, err
	}

	var result struct {
		CartCreate CartCreatePayload `json:"cartCreate"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cartCreate response: %w", err)
	}
	return &result.CartCreate, nil
}

// CartBuyerIdentityUpdate attaches the delivery address and reads back
// computed delivery options and cost.
func (c *HTTPAPIClient) CartBuyerIdentityUpdate(ctx context.Context, cartID string, buyer *BuyerIdentityInput, countryCode string) (*CartBuyerIdentityUpdatePayload, error) {
	data, err := c.doGraphQL(ctx, cartBuyerIdentityUpdateMutation, map[string]interface{}{
		"cartId":        cartID,
		"buyerIdentity": buyer,
		"country":       countryCode,
	}, countryCode)
	if err != nil {
		return nil, err
	}

	var result struct {
		CartBuyerIdentityUpdate CartBuyerIdentityUpdatePayload `json:"cartBuyerIdentityUpdate"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cartBuyerIdentityUpdate response: %w", err)
	}
	return &result.CartBuyerIdentityUpdate, nil
}

// GetVariant fetches a variant by global ID with country-localized pricing.
func (c *HTTPAPIClient) GetVariant(ctx context.Context, variantGID, countryCode string) (*VariantNode, error) {
	data, err := c.doGraphQL(ctx, variantQuery, map[string]interface{}{
		"id":      variantGID,
		"country": countryCode,
	}, countryCode)
	if err != nil {
		return nil, err
	}

	var result struct {
		Node *VariantNode `json:"node"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode variant response: %w", err)
	}
	return result.Node, nil
}

// GetShop fetches shop-level configuration.
func (c *HTTPAPIClient) GetShop(ctx context.Context) (*ShopInfo, error) {
	data, err := c.doGraphQL(ctx, shopQuery, nil, "")
	if err != nil {
		return nil, err
	}

	var result struct {
		Shop struct {
			Name          string `json:"name"`
			PrimaryDomain struct {
				Host string `json:"host"`
			} `json:"primaryDomain"`
			PaymentSettings struct {
				EnabledPresentmentCurrencies []string `json:"enabledPresentmentCurrencies"`
			} `json:"paymentSettings"`
			ShipsToCountries []string `json:"shipsToCountries"`
		} `json:"shop"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode shop response: %w", err)
	}

	return &ShopInfo{
		Name:                         result.Shop.Name,
		Domain:                       result.Shop.PrimaryDomain.Host,
		EnabledPresentmentCurrencies: result.Shop.PaymentSettings.EnabledPresentmentCurrencies,
		ShipsToCountries:             result.Shop.ShipsToCountries,
	}, nil
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// doGraphQL posts a query to the Storefront GraphQL endpoint and returns the
// data payload. Buyer country headers drive currency localization.
func (c *HTTPAPIClient) doGraphQL(ctx context.Context, query string, variables map[string]interface{}, countryCode string) (json.RawMessage, error) {
	url := fmt.Sprintf("https://%s/api/%s/graphql.json", c.shopDomain, c.apiVersion)

	jsonBody, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.accessToken)
	if countryCode != "" {
		req.Header.Set("Shopify-Storefront-Buyer-Country", countryCode)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: string(body),
		}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return nil, &APIError{
			Code:    "GRAPHQL_ERROR",
			Message: strings.Join(messages, ", "),
		}
	}

	return envelope.Data, nil
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
