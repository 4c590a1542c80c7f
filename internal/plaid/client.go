package plaid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
)

// Plaid environment hosts
var hosts = map[string]string{
	"sandbox":     "https://sandbox.plaid.com",
	"development": "https://development.plaid.com",
	"production":  "https://production.plaid.com",
}

// NormalizedTransaction is a transaction in the shape the rest of the system
// consumes: integer cents, single merchant string, settled timestamp.
type NormalizedTransaction struct {
	TransactionID string    // Aggregator transaction ID
	AmountCents   int64     // Absolute purchase amount in cents
	Merchant      string    // Merchant name
	Category      string    // Comma-joined category (may be empty)
	Timestamp     time.Time // Transaction date
	Pending       bool      // Whether the transaction is still pending
}

// Institution is a bank institution's identity.
type Institution struct {
	InstitutionID string `json:"institution_id"` // Institution identifier
	Name          string `json:"name"`           // Institution display name
}

// Client is the transaction-aggregator boundary the service layer depends on.
type Client interface {
	CreateLinkToken(userID string) (string, error)
	ExchangePublicToken(publicToken string) (accessToken, itemID string, err error)
	GetInstitution(institutionID string) (*Institution, error)
	GetTransactions(accessToken, startDate, endDate string) ([]NormalizedTransaction, error)
}

// HTTPClient talks to the Plaid REST API.
type HTTPClient struct {
	clientID string       // Plaid client ID
	secret   string       // Plaid secret
	host     string       // Environment host URL
	http     *http.Client // Underlying HTTP client
}

// NewHTTPClient builds a Plaid client for the given environment
// (sandbox, development, or production; unknown values fall back to sandbox).
func NewHTTPClient(clientID, secret, env string) *HTTPClient {
	host, ok := hosts[env]
	if !ok {
		host = hosts["sandbox"] // Default to sandbox
	}
	return &HTTPClient{
		clientID: clientID,
		secret:   secret,
		host:     host,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// post sends a JSON request with credentials injected and decodes the response.
func (c *HTTPClient) post(path string, body map[string]any, out any) error {
	body["client_id"] = c.clientID // Inject credentials
	body["secret"] = c.secret
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.host+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		// Surface the Plaid error code when present
		var plaidErr struct {
			ErrorCode    string `json:"error_code"`
			ErrorMessage string `json:"error_message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&plaidErr)
		return fmt.Errorf("plaid %s: %s %s", path, plaidErr.ErrorCode, plaidErr.ErrorMessage)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateLinkToken creates a Plaid Link token for the user.
func (c *HTTPClient) CreateLinkToken(userID string) (string, error) {
	var out struct {
		LinkToken string `json:"link_token"`
	}
	err := c.post("/link/token/create", map[string]any{
		"client_name":   "Piggie",
		"products":      []string{"transactions"},
		"country_codes": []string{"US"},
		"language":      "en",
		"user":          map[string]string{"client_user_id": userID},
	}, &out)
	if err != nil {
		return "", err
	}
	return out.LinkToken, nil
}

// ExchangePublicToken exchanges a Link public token for an access token.
func (c *HTTPClient) ExchangePublicToken(publicToken string) (string, string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
		ItemID      string `json:"item_id"`
	}
	err := c.post("/item/public_token/exchange", map[string]any{
		"public_token": publicToken,
	}, &out)
	if err != nil {
		return "", "", err
	}
	return out.AccessToken, out.ItemID, nil
}

// GetInstitution fetches institution information.
func (c *HTTPClient) GetInstitution(institutionID string) (*Institution, error) {
	var out struct {
		Institution Institution `json:"institution"`
	}
	err := c.post("/institutions/get_by_id", map[string]any{
		"institution_id": institutionID,
		"country_codes":  []string{"US"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Institution, nil
}

// GetTransactions fetches transactions in [startDate, endDate] (YYYY-MM-DD)
// and normalizes them to integer cents.
func (c *HTTPClient) GetTransactions(accessToken, startDate, endDate string) ([]NormalizedTransaction, error) {
	var out struct {
		Transactions []struct {
			TransactionID string   `json:"transaction_id"`
			Amount        float64  `json:"amount"`
			Name          string   `json:"name"`
			MerchantName  string   `json:"merchant_name"`
			Category      []string `json:"category"`
			Date          string   `json:"date"`
			Pending       bool     `json:"pending"`
		} `json:"transactions"`
	}
	err := c.post("/transactions/get", map[string]any{
		"access_token": accessToken,
		"start_date":   startDate,
		"end_date":     endDate,
	}, &out)
	if err != nil {
		return nil, err
	}
	normalized := make([]NormalizedTransaction, 0, len(out.Transactions))
	for _, t := range out.Transactions {
		// Plaid uses signed amounts; purchases are normalized to absolute cents
		amountCents := int64(math.Round(math.Abs(t.Amount) * 100))
		merchant := t.MerchantName
		if merchant == "" {
			merchant = t.Name // Fall back to the raw transaction name
		}
		if merchant == "" {
			merchant = "Unknown"
		}
		date, err := time.Parse("2006-01-02", t.Date)
		if err != nil {
			date = time.Now() // Tolerate malformed dates
		}
		normalized = append(normalized, NormalizedTransaction{
			TransactionID: t.TransactionID,               // Aggregator transaction ID
			AmountCents:   amountCents,                   // Absolute cents
			Merchant:      merchant,                      // Merchant name
			Category:      strings.Join(t.Category, ", "), // Joined category
			Timestamp:     date,                          // Transaction date
			Pending:       t.Pending,                     // Pending flag
		})
	}
	return normalized, nil
}
