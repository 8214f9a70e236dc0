package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, para ejercitar los casos
// de uso sin base de datos.

type fakeLedger struct {
	movements []*entity.InventoryMovement
	nextSeq   int64
	lockCalls int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{nextSeq: 1}
}

func (f *fakeLedger) Create(_ context.Context, m *entity.InventoryMovement) error {
	m.Seq = f.nextSeq
	f.nextSeq++
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeLedger) GetByID(_ context.Context, companyID, id string, withDeleted bool) (*entity.InventoryMovement, error) {
	for _, m := range f.movements {
		if m.CompanyID != companyID || m.ID != id {
			continue
		}
		if m.Deleted() && !withDeleted {
			return nil, nil
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeLedger) FindLatest(_ context.Context, companyID, productID, warehouseID string) (*entity.InventoryMovement, error) {
	var latest *entity.InventoryMovement
	for _, m := range f.movements {
		if m.CompanyID != companyID || m.ProductID != productID || m.WarehouseID != warehouseID || m.Deleted() {
			continue
		}
		if latest == nil || m.Seq > latest.Seq {
			latest = m
		}
	}
	return latest, nil
}

func (f *fakeLedger) LockTuple(_ context.Context, _, _, _ string) error {
	f.lockCalls++
	return nil
}

func (f *fakeLedger) List(_ context.Context, companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, int, error) {
	var all []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.CompanyID != companyID || m.Deleted() {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seq > all[j].Seq })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeLedger) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryMovement, error) {
	list, _, err := f.List(ctx, companyID, repository.MovementFilter{ProductID: productID}, len(f.movements), 0)
	return list, err
}

func (f *fakeLedger) ListByWarehouse(_ context.Context, companyID, warehouseID string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.CompanyID == companyID && m.WarehouseID == warehouseID && !m.Deleted() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	return out, nil
}

func (f *fakeLedger) ListForStock(_ context.Context, companyID string, filter repository.StockFilter) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.CompanyID != companyID || m.Deleted() {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Search != "" && m.Product != nil &&
			!strings.Contains(strings.ToLower(m.Product.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

func (f *fakeLedger) Update(_ context.Context, movement *entity.InventoryMovement) error {
	for i, m := range f.movements {
		if m.ID == movement.ID && m.CompanyID == movement.CompanyID {
			f.movements[i] = movement
			return nil
		}
	}
	return nil
}

func (f *fakeLedger) SoftDelete(_ context.Context, companyID, id string) error {
	now := time.Now()
	for _, m := range f.movements {
		if m.CompanyID == companyID && m.ID == id && !m.Deleted() {
			m.DeletedAt = &now
		}
	}
	return nil
}

func (f *fakeLedger) Restore(_ context.Context, companyID, id string) error {
	for _, m := range f.movements {
		if m.CompanyID == companyID && m.ID == id && m.Deleted() {
			m.DeletedAt = nil
		}
	}
	return nil
}

type fakeMovementTypeRepo struct {
	types map[string]*entity.MovementType
}

func (f *fakeMovementTypeRepo) Create(_ context.Context, mt *entity.MovementType) error {
	f.types[mt.ID] = mt
	return nil
}

func (f *fakeMovementTypeRepo) GetByID(_ context.Context, companyID, id string, withDeleted bool) (*entity.MovementType, error) {
	mt, ok := f.types[id]
	if !ok || mt.CompanyID != companyID {
		return nil, nil
	}
	if mt.DeletedAt != nil && !withDeleted {
		return nil, nil
	}
	return mt, nil
}

func (f *fakeMovementTypeRepo) List(_ context.Context, companyID string, _ repository.MovementTypeFilter, _, _ int) ([]*entity.MovementType, int, error) {
	var out []*entity.MovementType
	for _, mt := range f.types {
		if mt.CompanyID == companyID && mt.DeletedAt == nil {
			out = append(out, mt)
		}
	}
	return out, len(out), nil
}

func (f *fakeMovementTypeRepo) Update(_ context.Context, mt *entity.MovementType) error {
	f.types[mt.ID] = mt
	return nil
}

func (f *fakeMovementTypeRepo) SoftDelete(_ context.Context, _, id string) error {
	now := time.Now()
	if mt, ok := f.types[id]; ok {
		mt.DeletedAt = &now
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, companyID, id string, withDeleted bool) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	if p.DeletedAt != nil && !withDeleted {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) List(_ context.Context, companyID string, _ repository.ProductFilter, _, _ int) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.CompanyID == companyID && p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, _, id string) error {
	now := time.Now()
	if p, ok := f.products[id]; ok {
		p.DeletedAt = &now
	}
	return nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, companyID, id string, withDeleted bool) (*entity.Warehouse, error) {
	w, ok := f.warehouses[id]
	if !ok || w.CompanyID != companyID {
		return nil, nil
	}
	if w.DeletedAt != nil && !withDeleted {
		return nil, nil
	}
	return w, nil
}

func (f *fakeWarehouseRepo) List(_ context.Context, companyID, _ string, _, _ int) ([]*entity.Warehouse, int, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.CompanyID == companyID && w.DeletedAt == nil {
			out = append(out, w)
		}
	}
	return out, len(out), nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) SoftDelete(_ context.Context, _, id string) error {
	now := time.Now()
	if w, ok := f.warehouses[id]; ok {
		w.DeletedAt = &now
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.companies[id], nil
}

// fakeTxRunner pasa los fakes a fn y revierte las escrituras del libro si fn
// devuelve error, imitando el rollback de una transacción real.
type fakeTxRunner struct {
	ledger     *fakeLedger
	types      *fakeMovementTypeRepo
	products   *fakeProductRepo
	warehouses *fakeWarehouseRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	typeRepo repository.MovementTypeRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	snapshot := len(f.ledger.movements)
	if err := fn(f.ledger, f.types, f.products, f.warehouses); err != nil {
		f.ledger.movements = f.ledger.movements[:snapshot]
		return err
	}
	return nil
}
