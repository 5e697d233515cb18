package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// AmadeusClient talks to the Amadeus Self-Service APIs using the OAuth2
// client-credentials flow. The token is cached and refreshed at 90% of its
// lifetime so concurrent searches do not stampede the token endpoint.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAmadeusClient builds a client for the given environment ("production"
// selects the live API, anything else the free test environment).
func NewAmadeusClient(clientID, clientSecret, env string) *AmadeusClient {
	baseURL := "https://test.api.amadeus.com"
	if env == "production" {
		baseURL = "https://api.amadeus.com"
	}
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewAmadeusClientWithBaseURL is used by tests to point at a stub server.
func NewAmadeusClientWithBaseURL(clientID, clientSecret, baseURL string) *AmadeusClient {
	c := NewAmadeusClient(clientID, clientSecret, "test")
	c.baseURL = baseURL
	return c
}

// Configured reports whether API credentials are present.
func (c *AmadeusClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amadeus token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	// keep 90% of the advertised lifetime, never less than a minute
	ttl := result.ExpiresIn * 9 / 10
	if ttl < 60 {
		ttl = 60
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(ttl) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	expired := token == "" || time.Now().After(c.tokenExpiry)
	c.mu.Unlock()

	if expired {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(ctx context.Context, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Flight Offers Search v2 response, provider-native. The planner normalizes
// this shape into domain offers.
type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	ID          string            `json:"id"`
	Price       FlightPrice       `json:"price"`
	Itineraries []FlightItinerary `json:"itineraries"`

	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

type FlightPrice struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type FlightItinerary struct {
	Duration string          `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

type FlightSegment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
}

type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// SearchFlightOffers runs one Flight Offers Search query for an airport pair
// and calendar date (YYYY-MM-DD). Prices are requested in EUR; connecting
// flights are included.
func (c *AmadeusClient) SearchFlightOffers(ctx context.Context, originIATA, destIATA, date string, adults int) (*FlightOffersResponse, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}
	if adults <= 0 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originLocationCode", originIATA)
	q.Set("destinationLocationCode", destIATA)
	q.Set("departureDate", date)
	q.Set("adults", fmt.Sprintf("%d", adults))
	q.Set("currencyCode", "EUR")
	q.Set("nonStop", "false")
	q.Set("max", "20")

	body, err := c.doRequest(ctx, "/v2/shopping/flight-offers?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("flight search %s-%s failed: %w", originIATA, destIATA, err)
	}

	var resp FlightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}
	return &resp, nil
}
