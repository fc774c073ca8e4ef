package service

import (
	"context"
	"sync"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// fakeBackend implements every gateway port in memory for service tests.
type fakeBackend struct {
	mu sync.Mutex

	sections     []entity.Section
	tables       []entity.Table
	billsByTable map[string][]entity.BillSummary

	settleErr error
	settled   []string
	settledAs []entity.CouponUpdate

	saveErr    error
	savedBills []entity.PurchaseBill
	credits    []entity.VendorTransaction
	debits     []entity.VendorTransaction
	stock      map[string]float64

	items   []entity.Item
	units   []entity.Unit
	rates   []entity.GstRate
	vendors []entity.Vendor

	itemErr error
	unitErr error
	gstErr  error

	menuStats    []entity.MenuStat
	menuStatsErr error

	employeeToken string
	reportToken   string
	loginErr      error
}

func (f *fakeBackend) ListSections(ctx context.Context) ([]entity.Section, error) {
	return f.sections, nil
}

func (f *fakeBackend) ListTables(ctx context.Context) ([]entity.Table, error) {
	return f.tables, nil
}

func (f *fakeBackend) BillsByTable(ctx context.Context, tableID string) ([]entity.BillSummary, error) {
	return f.billsByTable[tableID], nil
}

func (f *fakeBackend) SettleCoupon(ctx context.Context, orderNumber string, update entity.CouponUpdate) error {
	if f.settleErr != nil {
		return f.settleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settled = append(f.settled, orderNumber)
	f.settledAs = append(f.settledAs, update)
	return nil
}

func (f *fakeBackend) SaveBill(ctx context.Context, bill entity.PurchaseBill) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedBills = append(f.savedBills, bill)
	return nil
}

func (f *fakeBackend) StockQty(ctx context.Context, itemName string) (float64, error) {
	return f.stock[itemName], nil
}

func (f *fakeBackend) PostVendorCredit(ctx context.Context, txn entity.VendorTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credits = append(f.credits, txn)
	return nil
}

func (f *fakeBackend) PostVendorDebit(ctx context.Context, txn entity.VendorTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.debits = append(f.debits, txn)
	return nil
}

func (f *fakeBackend) ListItems(ctx context.Context) ([]entity.Item, error) {
	return f.items, f.itemErr
}

func (f *fakeBackend) CreateItem(ctx context.Context, item entity.Item) (*entity.Item, error) {
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	item.ID = "item-new"
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeBackend) UpdateItem(ctx context.Context, id string, item entity.Item) error {
	return f.itemErr
}

func (f *fakeBackend) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	return f.units, f.unitErr
}

func (f *fakeBackend) GetUnit(ctx context.Context, id string) (*entity.Unit, error) {
	for i := range f.units {
		if f.units[i].ID == id {
			return &f.units[i], nil
		}
	}
	return nil, f.unitErr
}

func (f *fakeBackend) CreateUnit(ctx context.Context, unit entity.Unit) (*entity.Unit, error) {
	if f.unitErr != nil {
		return nil, f.unitErr
	}
	unit.ID = "unit-new"
	f.units = append(f.units, unit)
	return &unit, nil
}

func (f *fakeBackend) UpdateUnit(ctx context.Context, id string, unit entity.Unit) error {
	return f.unitErr
}

func (f *fakeBackend) DeleteUnit(ctx context.Context, id string) error {
	return f.unitErr
}

func (f *fakeBackend) ListGstRates(ctx context.Context) ([]entity.GstRate, error) {
	return f.rates, f.gstErr
}

func (f *fakeBackend) CreateGstRate(ctx context.Context, rate entity.GstRate) (*entity.GstRate, error) {
	if f.gstErr != nil {
		return nil, f.gstErr
	}
	rate.ID = "gst-new"
	f.rates = append(f.rates, rate)
	return &rate, nil
}

func (f *fakeBackend) DeleteGstRate(ctx context.Context, id string) error {
	return f.gstErr
}

func (f *fakeBackend) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return f.vendors, nil
}

func (f *fakeBackend) CreateVendor(ctx context.Context, vendor entity.Vendor) (*entity.Vendor, error) {
	vendor.ID = "vendor-new"
	f.vendors = append(f.vendors, vendor)
	return &vendor, nil
}

func (f *fakeBackend) UpdateVendor(ctx context.Context, id string, vendor entity.Vendor) error {
	return nil
}

func (f *fakeBackend) DeleteVendor(ctx context.Context, id string) error {
	return nil
}

func (f *fakeBackend) MenuStatsByDate(ctx context.Context, startDate, endDate string) ([]entity.MenuStat, error) {
	return f.menuStats, f.menuStatsErr
}

func (f *fakeBackend) EmployeeLogin(ctx context.Context, username, password string) (string, error) {
	return f.employeeToken, f.loginErr
}

func (f *fakeBackend) ReportLogin(ctx context.Context, username, password string) (string, error) {
	return f.reportToken, f.loginErr
}

// capturePrinter records everything sent to it.
type capturePrinter struct {
	mu   sync.Mutex
	jobs [][]byte
}

func (p *capturePrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, append([]byte(nil), data...))
	return nil
}

func (p *capturePrinter) Close() error { return nil }

func (p *capturePrinter) IsConnected() bool { return true }

func (p *capturePrinter) jobCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

func (p *capturePrinter) allOutput() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []byte
	for _, job := range p.jobs {
		out = append(out, job...)
	}
	return string(out)
}
