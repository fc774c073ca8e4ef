package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/pkg/apperror"
)

type staticToken string

func (t staticToken) EmployeeToken(ctx context.Context) string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, staticToken(token))
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, "emp-token")

	_, err := client.ListSections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer emp-token", gotAuth)
}

func TestRequestOmitsAuthWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, "")

	_, err := client.ListTables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestListSectionsDecodesBackendShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"s1","name":"AC Hall","isDefault":true}]`))
	}, "tok")

	sections, err := client.ListSections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "AC Hall", sections[0].Name)
	assert.True(t, sections[0].IsDefault)
}

func TestListTablesDecodesPopulatedSection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"t1","tableName":"5","section":{"_id":"s1","name":"AC Hall"}}]`))
	}, "tok")

	tables, err := client.ListTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "5", tables[0].Name)
	assert.Equal(t, "s1", tables[0].Section.ID)
}

func TestBillsByTableUsesOrderPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"orderNumber":"101","isTemporary":true,"isPrint":1,"total":250}]`))
	}, "tok")

	bills, err := client.BillsByTable(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "/order/order/t1", gotPath)
	require.Len(t, bills, 1)
	assert.Equal(t, "101", bills[0].OrderNumber)
	assert.Equal(t, 1, bills[0].IsPrint)
}

func TestSettleCouponPatchesByOrderNumber(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}, "tok")

	err := client.SettleCoupon(context.Background(), "101", entity.CouponUpdate{
		OrderNumber: "101",
		TotalAmount: 250,
		CashAmount:  200,
		DueAmount:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/coupon/update/101", gotPath)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "101", body["orderNumber"])
	assert.Equal(t, 250.0, body["totalAmount"])
	assert.Equal(t, 200.0, body["cashAmount"])
	assert.Equal(t, 50.0, body["dueAmount"])
	assert.Contains(t, body, "complimentaryAmount")
	assert.Contains(t, body, "onlinePaymentAmount")
	assert.Contains(t, body, "discount")
}

func TestStockQtyQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"stockQty":12.5}`))
	}, "tok")

	qty, err := client.StockQty(context.Background(), "Basmati Rice")
	require.NoError(t, err)
	assert.Equal(t, 12.5, qty)
	assert.Equal(t, "itemName=Basmati+Rice", gotQuery)
}

func TestNon2xxBecomesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"order not found"}`))
	}, "tok")

	err := client.SettleCoupon(context.Background(), "999", entity.CouponUpdate{})
	require.Error(t, err)
	assert.True(t, apperror.IsUpstreamNotFound(err))
	assert.Contains(t, apperror.GetAppError(err).Upstream, "order not found")
}

func TestBackend400IsDuplicate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bill number exists"}`))
	}, "tok")

	err := client.SaveBill(context.Background(), entity.PurchaseBill{BillNo: "B-1"})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, nil)

	_, err := client.ListSections(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestMenuStatsByDateQuery(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"name":"Coffee","quantity":3,"price":120}]`))
	}, "tok")

	rows, err := client.MenuStatsByDate(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "/coupon/coupons/date", gotPath)
	assert.Equal(t, "startDate=2026-08-01&endDate=2026-08-31", gotQuery)
	require.Len(t, rows, 1)
	assert.Equal(t, "Coffee", rows[0].Name)
}
