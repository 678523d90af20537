package asaas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/keys"
)

// ErrNotConfigured is returned by callers that refuse to reach Asaas without an api key
var ErrNotConfigured = errors.New("asaas api key not configured")

// InvalidAPIResponse is returned when a non-2xx status is returned from the Asaas api
type InvalidAPIResponse struct {
	status int
}

// Error provides a consistent error when receiving an invalid response status from Asaas
func (e *InvalidAPIResponse) Error() string {
	return fmt.Sprintf("invalid status returned from asaas api: [%d]", e.status)
}

// StatusCode returns the HTTP status returned by Asaas
func (e *InvalidAPIResponse) StatusCode() int {
	return e.status
}

// Client provides an interface by which to query and update Asaas customers and payments.
// Calls are never retried: any transport error, non-2xx status or undecodable body is
// returned as an error and the caller decides whether to abort or skip.
type Client interface {
	ListCustomersPage(offset, limit int) ([]data.Customer, bool, error)
	ListPayments(customerID string, limit int) ([]data.Payment, error)
	FindCustomerByCpfCnpj(cpfCnpj string) (*data.Customer, error)
	CreateCustomer(customer data.CustomerRequest) (data.Customer, error)
	UpdateCustomer(customerID string, customer data.CustomerRequest) (data.Customer, error)
	CreatePayment(payment data.PaymentRequest) (data.Payment, error)
}

// API implements the Client interface over HTTP
type API struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// New returns a new implementation of the Client interface with a fixed per-call timeout
func New(baseURL, apiKey string, timeout time.Duration) *API {

	return NewWithHTTPClient(baseURL, apiKey, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient returns a new implementation of the Client interface using the given http client
func NewWithHTTPClient(baseURL, apiKey string, httpClient *http.Client) *API {

	return &API{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: httpClient,
	}
}

// ListCustomersPage executes a GET request for one page of the customer collection
func (a *API) ListCustomersPage(offset, limit int) ([]data.Customer, bool, error) {
	var page data.CustomerPage

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	if err := a.do(http.MethodGet, "/customers", query, nil, &page); err != nil {
		return nil, false, err
	}

	return page.Data, page.HasMore, nil
}

// ListPayments executes a GET request for up to limit payments of a customer
func (a *API) ListPayments(customerID string, limit int) ([]data.Payment, error) {
	var page data.PaymentPage

	query := url.Values{}
	query.Set("customer", customerID)
	query.Set("limit", strconv.Itoa(limit))

	if err := a.do(http.MethodGet, "/payments", query, nil, &page); err != nil {
		return nil, err
	}

	return page.Data, nil
}

// FindCustomerByCpfCnpj looks a customer up by tax id, returning nil when none exists
func (a *API) FindCustomerByCpfCnpj(cpfCnpj string) (*data.Customer, error) {
	var page data.CustomerPage

	query := url.Values{}
	query.Set("cpfCnpj", cpfCnpj)

	if err := a.do(http.MethodGet, "/customers", query, nil, &page); err != nil {
		return nil, err
	}

	if page.TotalCount == 0 || len(page.Data) == 0 {
		return nil, nil
	}

	return &page.Data[0], nil
}

// CreateCustomer executes a POST request creating a customer
func (a *API) CreateCustomer(customer data.CustomerRequest) (data.Customer, error) {
	var c data.Customer
	err := a.do(http.MethodPost, "/customers", nil, customer, &c)
	return c, err
}

// UpdateCustomer executes a POST request updating an existing customer
func (a *API) UpdateCustomer(customerID string, customer data.CustomerRequest) (data.Customer, error) {
	var c data.Customer
	err := a.do(http.MethodPost, "/customers/"+url.PathEscape(customerID), nil, customer, &c)
	return c, err
}

// CreatePayment executes a POST request issuing a payment
func (a *API) CreatePayment(payment data.PaymentRequest) (data.Payment, error) {
	var p data.Payment
	err := a.do(http.MethodPost, "/payments", nil, payment, &p)
	return p, err
}

func (a *API) do(method, path string, query url.Values, body interface{}, v interface{}) error {

	requestURL := a.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, requestURL, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("access_token", a.APIKey)
	log.Trace(method+" request to the asaas api", log.Data{keys.Request: requestURL})

	res, err := a.HTTPClient.Do(req)
	if err != nil {
		log.Error(err, log.Data{keys.Request: requestURL})
		return err
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err := &InvalidAPIResponse{res.StatusCode}
		log.Error(err, log.Data{keys.Request: requestURL, keys.StatusCode: res.StatusCode})
		return err
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}
	log.Trace("asaas response body", log.Data{keys.Request: requestURL, keys.Message: string(b)})

	if err := json.Unmarshal(b, v); err != nil {
		log.Error(fmt.Errorf("malformed asaas response body: %s", err), log.Data{keys.Request: requestURL})
		return err
	}

	return nil
}
