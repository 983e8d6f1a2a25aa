package adminzones

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

const deliveryProfilesQuery = `
query {
  deliveryProfiles(first: 10) {
    edges {
      node {
        id
        name
        profileLocationGroups {
          locationGroupZones(first: 10) {
            edges {
              node {
                zone {
                  id
                  name
                  countries {
                    code { countryCode }
                    provinces { code }
                  }
                }
                methodDefinitions(first: 10) {
                  edges {
                    node {
                      id
                      name
                      description
                      rateProvider {
                        ... on DeliveryRateDefinition {
                          id
                          price { amount currencyCode }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const shopQuery = `
query {
  shop {
    name
    currencyCode
    shipsToCountries
    enabledPresentmentCurrencies
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
	ShopDomain  string
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

// GetDeliveryProfiles fetches all delivery profiles from the Admin API.
func (c *HTTPAPIClient) GetDeliveryProfiles(ctx context.Context) (*DeliveryProfilesResponse, error) {
	data, err := c.doGraphQL(ctx, deliveryProfilesQuery, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		DeliveryProfiles DeliveryProfilesResponse `json:"deliveryProfiles"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode deliveryProfiles response: %w", err)
	}
	return &result.DeliveryProfiles, nil
}

// GetShop fetches shop-level configuration.
func (c *HTTPAPIClient) GetShop(ctx context.Context) (*ShopInfo, error) {
	data, err := c.doGraphQL(ctx, shopQuery, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Shop struct {
			Name                         string   `json:"name"`
			CurrencyCode                 string   `json:"currencyCode"`
			ShipsToCountries             []string `json:"shipsToCountries"`
			EnabledPresentmentCurrencies []string `json:"enabledPresentmentCurrencies"`
		} `json:"shop"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode shop response: %w", err)
	}

	return &ShopInfo{
		Name:                         result.Shop.Name,
		CurrencyCode:                 result.Shop.CurrencyCode,
		ShipsToCountries:             result.Shop.ShipsToCountries,
		EnabledPresentmentCurrencies: result.Shop.EnabledPresentmentCurrencies,
	}, nil
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// doGraphQL posts a query to the Admin GraphQL endpoint and returns the
// data payload.
func (c *HTTPAPIClient) doGraphQL(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shopDomain, c.apiVersion)

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
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

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
