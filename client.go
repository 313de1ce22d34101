package finch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finchdev/finch/period"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the finance service address used when none is configured.
const DefaultBaseURL = "http://localhost:8001"

// Client is the typed boundary to the finance service. It does pure
// request/response mapping; aggregation and consistency live in Syncer.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the service at baseURL, or at
// DefaultBaseURL when baseURL is empty.
func NewClient(baseURL string) *Client {
	return NewClientWith(baseURL, nil)
}

// NewClientWith is NewClient with the *http.Client supplied by the caller,
// for custom transports or timeouts. A nil h uses a default client.
func NewClientWith(baseURL string, h *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if h == nil {
		h = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    h,
	}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func (c *Client) jwget(ctx context.Context, path string, query url.Values, data any) error {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("cannot GET %s: %s", path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// jwsend marshals payload and performs an HTTP request with a JSON body,
// returning the raw response body.
func (c *Client) jwsend(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("cannot %s %s: %s", method, path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// createdID extracts the id of a created entity from the service's nested
// create responses (e.g. {"message": ..., "income": {"id": ...}}).
func createdID(body []byte, path string) (string, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return "", fmt.Errorf("malformed create response: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("no created id at %q: %w", path, err)
	}
	id, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("created id at %q is not a string: %v", path, jval)
	}
	return id, nil
}

func monthQuery(m period.Month) url.Values {
	return url.Values{
		"month": {strconv.Itoa(int(m.Month()))},
		"year":  {strconv.Itoa(m.Year())},
	}
}

// Health checks that the service is reachable and reports itself healthy.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.jwget(ctx, "/api/health", nil, &status); err != nil {
		return fmt.Errorf("finance service unreachable at %s: %w", c.baseURL, err)
	}
	if status.Status != "healthy" {
		return fmt.Errorf("finance service at %s reports %q", c.baseURL, status.Status)
	}
	return nil
}

// Categories fetches the global category set.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.jwget(ctx, "/api/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("cannot list categories: %w", err)
	}
	return out.Categories, nil
}

// User fetches the user identified by id.
func (c *Client) User(ctx context.Context, id string) (User, error) {
	var u User
	if err := c.jwget(ctx, "/api/users/"+url.PathEscape(id), nil, &u); err != nil {
		return User{}, fmt.Errorf("cannot get user %q: %w", id, err)
	}
	return u, nil
}

// NewUser is the request to create a user. ID may be set by the caller to
// get a known id; the service generates one otherwise.
type NewUser struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// CreateUser registers a user and returns its id.
func (c *Client) CreateUser(ctx context.Context, u NewUser) (string, error) {
	body, err := c.jwsend(ctx, http.MethodPost, "/api/users", u)
	if err != nil {
		return "", fmt.Errorf("cannot create user: %w", err)
	}
	return createdID(body, "$.user.id")
}

// UpdateBudget sets the user's fixed monthly budget.
func (c *Client) UpdateBudget(ctx context.Context, id string, budget decimal.Decimal) error {
	payload := map[string]decimal.Decimal{"monthly_budget": budget}
	if _, err := c.jwsend(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), payload); err != nil {
		return fmt.Errorf("cannot update budget for user %q: %w", id, err)
	}
	return nil
}

// Income fetches the income entries of the given user and month.
func (c *Client) Income(ctx context.Context, userID string, m period.Month) ([]IncomeEntry, error) {
	var out struct {
		Income []IncomeEntry `json:"income"`
	}
	if err := c.jwget(ctx, "/api/income/"+url.PathEscape(userID), monthQuery(m), &out); err != nil {
		return nil, fmt.Errorf("cannot list income for %s: %w", m, err)
	}
	return out.Income, nil
}

// Expenses fetches the expense entries of the given user and month.
func (c *Client) Expenses(ctx context.Context, userID string, m period.Month) ([]ExpenseEntry, error) {
	var out struct {
		Expenses []ExpenseEntry `json:"expenses"`
	}
	if err := c.jwget(ctx, "/api/expenses/"+url.PathEscape(userID), monthQuery(m), &out); err != nil {
		return nil, fmt.Errorf("cannot list expenses for %s: %w", m, err)
	}
	return out.Expenses, nil
}

// Analysis fetches the service-computed aggregate for the given user and
// month. The response is a flat object, not wrapped like the list reads.
func (c *Client) Analysis(ctx context.Context, userID string, m period.Month) (*MonthlyAnalysis, error) {
	var a MonthlyAnalysis
	if err := c.jwget(ctx, "/api/analysis/"+url.PathEscape(userID), monthQuery(m), &a); err != nil {
		return nil, fmt.Errorf("cannot get analysis for %s: %w", m, err)
	}
	return &a, nil
}

// Recommendations fetches the savings recommendations for the given user and
// month.
func (c *Client) Recommendations(ctx context.Context, userID string, m period.Month) ([]Recommendation, error) {
	var out struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := c.jwget(ctx, "/api/recommendations/"+url.PathEscape(userID), monthQuery(m), &out); err != nil {
		return nil, fmt.Errorf("cannot list recommendations for %s: %w", m, err)
	}
	return out.Recommendations, nil
}

// NewIncome is the request to record an income entry. Date is the creation
// timestamp; the service derives the entry's month and year from it.
type NewIncome struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
	Date   Timestamp       `json:"date"`
}

// AddIncome records an income entry and returns its id.
func (c *Client) AddIncome(ctx context.Context, in NewIncome) (string, error) {
	body, err := c.jwsend(ctx, http.MethodPost, "/api/income", in)
	if err != nil {
		return "", fmt.Errorf("cannot add income: %w", err)
	}
	return createdID(body, "$.income.id")
}

// NewExpense is the request to record an expense entry.
type NewExpense struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	Date        Timestamp       `json:"date"`
}

// AddExpense records an expense entry and returns its id.
func (c *Client) AddExpense(ctx context.Context, in NewExpense) (string, error) {
	body, err := c.jwsend(ctx, http.MethodPost, "/api/expenses", in)
	if err != nil {
		return "", fmt.Errorf("cannot add expense: %w", err)
	}
	return createdID(body, "$.expense.id")
}

// DeleteExpense deletes the expense identified by id. Deleting an id the
// service does not know is an error at the transport level (404), which
// callers treat like any other failed mutation.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	if _, err := c.jwsend(ctx, http.MethodDelete, "/api/expenses/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("cannot delete expense %q: %w", id, err)
	}
	return nil
}
