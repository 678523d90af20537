package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jaina/polo-report-service/data"
)

const CustomerPageResponse = `{
    "object": "list",
    "hasMore": false,
    "totalCount": 2,
    "limit": 100,
    "offset": 0,
    "data": [
        {
            "object": "customer",
            "id": "cus_000005219613",
            "name": "Maria Souza",
            "cpfCnpj": "24971563792",
            "complement": "Polo X"
        },
        {
            "object": "customer",
            "id": "cus_000005219614",
            "name": "Joao Lima",
            "cpfCnpj": "86423335882",
            "complement": "Polo Y"
        }
    ]
}`

const PaymentPageResponse = `{
    "object": "list",
    "hasMore": false,
    "totalCount": 2,
    "limit": 10,
    "offset": 0,
    "data": [
        {
            "object": "payment",
            "id": "pay_080225913252",
            "customer": "cus_000005219613",
            "value": 350.00,
            "netValue": 348.01,
            "billingType": "BOLETO",
            "status": "RECEIVED",
            "dueDate": "2024-01-10",
            "paymentDate": "2024-01-09",
            "description": "Mensalidade janeiro",
            "invoiceUrl": "https://www.asaas.com/i/080225913252"
        },
        {
            "object": "payment",
            "id": "pay_080225913253",
            "customer": "cus_000005219613",
            "value": 350.00,
            "netValue": null,
            "billingType": "PIX",
            "status": "PENDING",
            "dueDate": "2024-02-10",
            "paymentDate": null,
            "description": "Mensalidade fevereiro",
            "invoiceUrl": "https://www.asaas.com/i/080225913253"
        }
    ]
}`

// CreateMockClient returns an http client whose every request is answered by a stub server
func CreateMockClient(hasResponseBody bool, status int, responseBody string) *http.Client {

	mockStreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(status)
		if hasResponseBody {
			w.Write([]byte(responseBody))
		}
	}))

	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return url.Parse(mockStreamServer.URL)
		},
	}

	httpClient := &http.Client{Transport: transport}

	return httpClient
}

// FakeAsaas is an in-process stand-in for the Asaas customers and payments endpoints
type FakeAsaas struct {
	Server *httptest.Server

	mu               sync.Mutex
	customers        []data.Customer
	payments         map[string][]data.Payment
	failingCustomers map[string]bool
	stalledCustomers map[string]time.Duration
	customerCalls    int
	paymentCalls     int
	created          []data.CustomerRequest
	updated          map[string]data.CustomerRequest
	issued           []data.PaymentRequest
}

// NewFakeAsaas starts a FakeAsaas serving the given customers and payments keyed by customer id
func NewFakeAsaas(customers []data.Customer, payments map[string][]data.Payment) *FakeAsaas {
	f := &FakeAsaas{
		customers:        customers,
		payments:         payments,
		failingCustomers: map[string]bool{},
		stalledCustomers: map[string]time.Duration{},
		updated:          map[string]data.CustomerRequest{},
	}
	if f.payments == nil {
		f.payments = map[string][]data.Payment{}
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

// URL returns the base url of the fake
func (f *FakeAsaas) URL() string {
	return f.Server.URL
}

// Close stops the fake server
func (f *FakeAsaas) Close() {
	f.Server.Close()
}

// FailPaymentsFor makes every payments request for the customer answer with a 500
func (f *FakeAsaas) FailPaymentsFor(customerID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failingCustomers[customerID] = true
}

// StallPaymentsFor delays every payments request for the customer by d before it is answered
func (f *FakeAsaas) StallPaymentsFor(customerID string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stalledCustomers[customerID] = d
}

// CustomerCalls returns the number of customer collection requests served
func (f *FakeAsaas) CustomerCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.customerCalls
}

// PaymentCalls returns the number of payments requests served
func (f *FakeAsaas) PaymentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paymentCalls
}

// Created returns the customers created through the fake
func (f *FakeAsaas) Created() []data.CustomerRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]data.CustomerRequest(nil), f.created...)
}

// Updated returns the customer updates received keyed by customer id
func (f *FakeAsaas) Updated() map[string]data.CustomerRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	updated := map[string]data.CustomerRequest{}
	for k, v := range f.updated {
		updated[k] = v
	}
	return updated
}

// Issued returns the payments issued through the fake
func (f *FakeAsaas) Issued() []data.PaymentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]data.PaymentRequest(nil), f.issued...)
}

func (f *FakeAsaas) serve(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path == "/payments" && req.Method == http.MethodGet {
		f.mu.Lock()
		stall := f.stalledCustomers[req.URL.Query().Get("customer")]
		f.mu.Unlock()
		time.Sleep(stall)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case req.URL.Path == "/customers" && req.Method == http.MethodGet:
		f.customerCalls++
		if cpfCnpj := req.URL.Query().Get("cpfCnpj"); cpfCnpj != "" {
			matches := []data.Customer{}
			for _, c := range f.customers {
				if c.CpfCnpj == cpfCnpj {
					matches = append(matches, c)
				}
			}
			writeJSON(w, data.CustomerPage{TotalCount: len(matches), Data: matches})
			return
		}
		offset, _ := strconv.Atoi(req.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		page := []data.Customer{}
		if offset < len(f.customers) {
			end := offset + limit
			if end > len(f.customers) {
				end = len(f.customers)
			}
			page = f.customers[offset:end]
		}
		writeJSON(w, data.CustomerPage{
			HasMore:    offset+len(page) < len(f.customers),
			TotalCount: len(f.customers),
			Limit:      limit,
			Offset:     offset,
			Data:       page,
		})

	case req.URL.Path == "/customers" && req.Method == http.MethodPost:
		var body data.CustomerRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.created = append(f.created, body)
		c := data.Customer{ID: "cus_new_" + strconv.Itoa(len(f.created)), Name: body.Name, CpfCnpj: body.CpfCnpj, Complement: body.Complement}
		f.customers = append(f.customers, c)
		writeJSON(w, c)

	case strings.HasPrefix(req.URL.Path, "/customers/") && req.Method == http.MethodPost:
		id := strings.TrimPrefix(req.URL.Path, "/customers/")
		var body data.CustomerRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.updated[id] = body
		writeJSON(w, data.Customer{ID: id, Name: body.Name, CpfCnpj: body.CpfCnpj, Complement: body.Complement})

	case req.URL.Path == "/payments" && req.Method == http.MethodGet:
		f.paymentCalls++
		customerID := req.URL.Query().Get("customer")
		if f.failingCustomers[customerID] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		payments := f.payments[customerID]
		if limit > 0 && len(payments) > limit {
			payments = payments[:limit]
		}
		if payments == nil {
			payments = []data.Payment{}
		}
		writeJSON(w, data.PaymentPage{TotalCount: len(f.payments[customerID]), Limit: limit, Data: payments})

	case req.URL.Path == "/payments" && req.Method == http.MethodPost:
		var body data.PaymentRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.issued = append(f.issued, body)
		writeJSON(w, data.Payment{
			ID:          "pay_new_" + strconv.Itoa(len(f.issued)),
			Customer:    body.Customer,
			Value:       body.Value,
			DueDate:     body.DueDate,
			Description: body.Description,
			BillingType: body.BillingType,
			Status:      data.StatusPending,
			InvoiceURL:  "https://www.asaas.com/i/new" + strconv.Itoa(len(f.issued)),
		})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
