package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/shared/config"
	"sepapay/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.GatewayConfig{
		APIBaseURL:     server.URL,
		TimeoutSeconds: 5,
	}, noopLogger{})
	return client, server
}

var testCreds = gateway.Credentials{SecretKey: "sk_test_123"}

func TestClient_CreateSource(t *testing.T) {
	var gotAuth, gotVersion, gotPath string
	var gotForm map[string][]string

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		gotAuth = user
		gotVersion = r.Header.Get("Stripe-Version")
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "src_18cPPvGuXPsxemWqTbDRzZzL",
			"object": "source",
			"type": "sepa_debit",
			"status": "chargeable",
			"owner": {"name": "Jenny Rosen", "email": "jenny.rosen@example.com"},
			"sepa_debit": {"last4": "2606"}
		}`))
	})

	src, err := client.CreateSource(context.Background(), testCreds, gateway.CreateSourceRequest{
		Type:                      "sepa_debit",
		IBAN:                      "FR1420041010050500013M02606",
		Currency:                  "eur",
		OwnerName:                 "Jenny Rosen",
		OwnerEmail:                "jenny.rosen@example.com",
		MandateNotificationMethod: "email",
	})

	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", gotAuth)
	assert.Equal(t, "2019-05-16", gotVersion)
	assert.Equal(t, "/sources", gotPath)
	assert.Equal(t, []string{"sepa_debit"}, gotForm["type"])
	assert.Equal(t, []string{"eur"}, gotForm["currency"])
	assert.Equal(t, []string{"FR1420041010050500013M02606"}, gotForm["sepa_debit[iban]"])
	assert.Equal(t, []string{"Jenny Rosen"}, gotForm["owner[name]"])
	assert.Equal(t, []string{"jenny.rosen@example.com"}, gotForm["owner[email]"])
	assert.Equal(t, []string{"email"}, gotForm["mandate[notification_method]"])

	assert.Equal(t, "src_18cPPvGuXPsxemWqTbDRzZzL", src.ID)
	assert.Equal(t, "source", src.Object)
	assert.Equal(t, "sepa_debit", src.Type)
	assert.Equal(t, "2606", src.SEPADebit.Last4)
	assert.Nil(t, src.Err)
}

func TestClient_CreateSource_GatewayError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "code": "invalid_bank_account_iban", "message": "The IBAN you provided is invalid."}}`))
	})

	src, err := client.CreateSource(context.Background(), testCreds, gateway.CreateSourceRequest{
		Type:     "sepa_debit",
		IBAN:     "not-an-iban",
		Currency: "eur",
	})

	require.NoError(t, err)
	require.NotNil(t, src.Err)
	assert.Equal(t, "The IBAN you provided is invalid.", src.Err.Message)
	assert.Equal(t, "invalid_bank_account_iban", src.Err.Code)
}

func TestClient_CreateCustomer(t *testing.T) {
	var gotForm map[string][]string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"id": "cus_AJ78ZaALpqgCdX", "object": "customer"}`))
	})

	customer, err := client.CreateCustomer(context.Background(), testCreds, gateway.CreateCustomerRequest{
		SourceID: "src_18cPPvGuXPsxemWqTbDRzZzL",
		Email:    "jenny.rosen@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"src_18cPPvGuXPsxemWqTbDRzZzL"}, gotForm["source"])
	assert.Equal(t, []string{"jenny.rosen@example.com"}, gotForm["email"])
	assert.Equal(t, "cus_AJ78ZaALpqgCdX", customer.ID)
}

func TestClient_CreateCharge(t *testing.T) {
	var gotForm map[string][]string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"id": "ch_1APJ5mGuXPsxemWqnlgvzzxV", "object": "charge", "status": "pending"}`))
	})

	charge, err := client.CreateCharge(context.Background(), testCreds, gateway.CreateChargeRequest{
		Amount:      1999,
		Currency:    "eur",
		CustomerID:  "cus_AJ78ZaALpqgCdX",
		SourceID:    "src_18cPPvGuXPsxemWqTbDRzZzL",
		Description: "TX100",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1999"}, gotForm["amount"])
	assert.Equal(t, []string{"eur"}, gotForm["currency"])
	assert.Equal(t, []string{"cus_AJ78ZaALpqgCdX"}, gotForm["customer"])
	assert.Equal(t, []string{"src_18cPPvGuXPsxemWqTbDRzZzL"}, gotForm["source"])
	assert.Equal(t, []string{"TX100"}, gotForm["description"])
	assert.Equal(t, "pending", charge.Status)
}

func TestClient_ListEvents(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		w.Write([]byte(`{
			"data": [
				{"id": "evt_2", "type": "charge.succeeded", "data": {"object": {"id": "ch_settled", "status": "succeeded"}}},
				{"id": "evt_1", "type": "charge.pending", "data": {"object": {"id": "ch_settled", "status": "pending"}}}
			],
			"has_more": false
		}`))
	})

	list, err := client.ListEvents(context.Background(), testCreds, gateway.ListEventsRequest{
		EndingBefore: "evt_0",
		Limit:        100,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"evt_0"}, gotQuery["ending_before"])
	assert.Equal(t, []string{"100"}, gotQuery["limit"])
	require.Len(t, list.Data, 2)
	assert.Equal(t, "charge.succeeded", list.Data[0].Type)
	assert.Equal(t, "ch_settled", list.Data[0].Data.Object.ID)
}

func TestClient_ListEvents_NoCursor(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"data": [], "has_more": false}`))
	})

	list, err := client.ListEvents(context.Background(), testCreds, gateway.ListEventsRequest{})

	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestClient_ListEvents_BadCredential(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Invalid API Key provided"}}`))
	})

	list, err := client.ListEvents(context.Background(), testCreds, gateway.ListEventsRequest{})

	require.NoError(t, err)
	assert.Empty(t, list.Data)
	require.NotNil(t, list.Err)
	assert.Equal(t, "Invalid API Key provided", list.Err.Message)
}

func TestClient_DecodeFailure(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.CreateCharge(context.Background(), testCreds, gateway.CreateChargeRequest{Amount: 100, Currency: "eur"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
