package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// memStore persistencia en memoria con el mismo contrato que los repositorios postgres:
// Get* devuelve (nil, nil) si no existe y LockForUpdate bloquea la empresa hasta el fin de Run.
// No hay rollback: los casos de uso fallan antes de escribir.
type memStore struct {
	mu            sync.Mutex
	companies     map[string]entity.Company
	subscriptions map[string]entity.Subscription // por empresa
	users         map[string]entity.User
	branches      map[string]entity.Branch
	products      map[string]entity.Product
	suppliers     map[string]entity.Supplier
	inventory     map[string]entity.Inventory
	purchases     map[string]entity.Purchase
	sales         map[string]entity.Sale
	orders        map[string]entity.Order

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	// inventoryLocks productos de inventario bloqueados, en el orden en que se pidieron.
	inventoryLocks []string
}

func newMemStore() *memStore {
	return &memStore{
		companies:     map[string]entity.Company{},
		subscriptions: map[string]entity.Subscription{},
		users:         map[string]entity.User{},
		branches:      map[string]entity.Branch{},
		products:      map[string]entity.Product{},
		suppliers:     map[string]entity.Supplier{},
		inventory:     map[string]entity.Inventory{},
		purchases:     map[string]entity.Purchase{},
		sales:         map[string]entity.Sale{},
		orders:        map[string]entity.Order{},
		locks:         map[string]*sync.Mutex{},
	}
}

// txState bloqueos tomados por una transacción.
type txState struct {
	held map[string]*sync.Mutex
}

func (s *memStore) lockFor(id string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *memStore) repos(tx *txState) ports.Repos {
	return ports.Repos{
		Companies:     &memCompanies{s, tx},
		Subscriptions: &memSubscriptions{s},
		Users:         &memUsers{s},
		Branches:      &memBranches{s},
		Products:      &memProducts{s},
		Suppliers:     &memSuppliers{s},
		Inventory:     &memInventory{s},
		Purchases:     &memPurchases{s},
		Sales:         &memSales{s},
		Orders:        &memOrders{s},
	}
}

// Run implementa ports.TxRunner.
func (s *memStore) Run(_ context.Context, fn func(tx ports.Repos) error) error {
	tx := &txState{held: map[string]*sync.Mutex{}}
	defer func() {
		for _, l := range tx.held {
			l.Unlock()
		}
	}()
	return fn(s.repos(tx))
}

// companyOfBranch "" si la sucursal no existe. Requiere s.mu tomado.
func (s *memStore) companyOfBranch(branchID string) string {
	return s.branches[branchID].CompanyID
}

func inScope(scope, companyID string) bool { return scope == "" || scope == companyID }

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

// ── companies ────────────────────────────────────────────────────────────────

type memCompanies struct {
	s  *memStore
	tx *txState
}

func (r *memCompanies) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.companies[c.ID] = *c
	return nil
}

func (r *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCompanies) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r *memCompanies) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.s.companies {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memCompanies) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.companies, id)
	return nil
}

func (r *memCompanies) LockForUpdate(_ context.Context, id string) error {
	r.s.mu.Lock()
	_, ok := r.s.companies[id]
	r.s.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	if r.tx == nil {
		return nil
	}
	if _, held := r.tx.held[id]; held {
		return nil
	}
	l := r.s.lockFor(id)
	l.Lock()
	r.tx.held[id] = l
	return nil
}

// ── subscriptions ────────────────────────────────────────────────────────────

type memSubscriptions struct{ s *memStore }

func (r *memSubscriptions) GetByID(_ context.Context, id string) (*entity.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sub := range r.s.subscriptions {
		if sub.ID == id {
			sub := sub
			return &sub, nil
		}
	}
	return nil, nil
}

func (r *memSubscriptions) GetByCompany(_ context.Context, companyID string) (*entity.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscriptions[companyID]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (r *memSubscriptions) List(_ context.Context, limit, offset int) ([]*entity.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Subscription
	for _, sub := range r.s.subscriptions {
		sub := sub
		out = append(out, &sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return page(out, limit, offset), nil
}

func (r *memSubscriptions) Upsert(_ context.Context, sub *entity.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if prev, ok := r.s.subscriptions[sub.CompanyID]; ok {
		sub.ID = prev.ID
	}
	r.s.subscriptions[sub.CompanyID] = *sub
	return nil
}

// ── users ────────────────────────────────────────────────────────────────────

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *memUsers) List(_ context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if f.CompanyID != "" && u.CompanyID != f.CompanyID {
			continue
		}
		if f.UserID != "" && u.ID != f.UserID {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return page(out, limit, offset), nil
}

// ── branches ─────────────────────────────────────────────────────────────────

type memBranches struct{ s *memStore }

func (r *memBranches) Create(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branches[b.ID] = *b
	return nil
}

func (r *memBranches) GetByID(_ context.Context, companyID, id string) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.branches[id]
	if !ok || !inScope(companyID, b.CompanyID) {
		return nil, nil
	}
	return &b, nil
}

func (r *memBranches) Update(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branches[b.ID] = *b
	return nil
}

func (r *memBranches) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.branches[id]
	if !ok || !inScope(companyID, b.CompanyID) {
		return domain.ErrNotFound
	}
	delete(r.s.branches, id)
	return nil
}

func (r *memBranches) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Branch
	for _, b := range r.s.branches {
		if inScope(companyID, b.CompanyID) {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *memBranches) CountByCompany(_ context.Context, companyID, excludeID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, b := range r.s.branches {
		if b.CompanyID == companyID && b.ID != excludeID {
			n++
		}
	}
	return n, nil
}

// ── products ─────────────────────────────────────────────────────────────────

type memProducts struct{ s *memStore }

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProducts) GetByID(_ context.Context, companyID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !inScope(companyID, p.CompanyID) {
		return nil, nil
	}
	return &p, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProducts) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !inScope(companyID, p.CompanyID) {
		return domain.ErrNotFound
	}
	for _, s := range r.s.sales {
		for _, it := range s.Items {
			if it.ProductID == id {
				return domain.ErrProtected
			}
		}
	}
	delete(r.s.products, id)
	return nil
}

func (r *memProducts) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if inScope(companyID, p.CompanyID) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return page(out, limit, offset), nil
}

// ── suppliers ────────────────────────────────────────────────────────────────

type memSuppliers struct{ s *memStore }

func (r *memSuppliers) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *memSuppliers) GetByID(_ context.Context, companyID, id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup, ok := r.s.suppliers[id]
	if !ok || !inScope(companyID, sup.CompanyID) {
		return nil, nil
	}
	return &sup, nil
}

func (r *memSuppliers) Update(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *memSuppliers) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup, ok := r.s.suppliers[id]
	if !ok || !inScope(companyID, sup.CompanyID) {
		return domain.ErrNotFound
	}
	for _, p := range r.s.purchases {
		if p.SupplierID == id {
			return domain.ErrProtected
		}
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *memSuppliers) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Supplier
	for _, sup := range r.s.suppliers {
		if inScope(companyID, sup.CompanyID) {
			sup := sup
			out = append(out, &sup)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

// ── inventory ────────────────────────────────────────────────────────────────

type memInventory struct{ s *memStore }

func (r *memInventory) Create(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.inventory {
		if other.BranchID == inv.BranchID && other.ProductID == inv.ProductID {
			return domain.ErrDuplicate
		}
	}
	r.s.inventory[inv.ID] = *inv
	return nil
}

func (r *memInventory) GetByID(_ context.Context, companyID, id string) (*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.inventory[id]
	if !ok || !inScope(companyID, r.s.companyOfBranch(inv.BranchID)) {
		return nil, nil
	}
	return &inv, nil
}

func (r *memInventory) Update(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.inventory[inv.ID] = *inv
	return nil
}

func (r *memInventory) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.inventory[id]
	if !ok || !inScope(companyID, r.s.companyOfBranch(inv.BranchID)) {
		return domain.ErrNotFound
	}
	delete(r.s.inventory, id)
	return nil
}

func (r *memInventory) List(_ context.Context, f repository.InventoryFilter, limit, offset int) ([]*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		if !inScope(f.CompanyID, r.s.companyOfBranch(inv.BranchID)) {
			continue
		}
		if f.BranchID != "" && inv.BranchID != f.BranchID {
			continue
		}
		inv := inv
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memInventory) GetForUpdate(_ context.Context, branchID, productID string) (*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.inventoryLocks = append(r.s.inventoryLocks, productID)
	for _, inv := range r.s.inventory {
		if inv.BranchID == branchID && inv.ProductID == productID {
			inv := inv
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *memInventory) AddStock(_ context.Context, id, branchID, productID string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.inventoryLocks = append(r.s.inventoryLocks, productID)
	for key, inv := range r.s.inventory {
		if inv.BranchID == branchID && inv.ProductID == productID {
			inv.Stock += qty
			r.s.inventory[key] = inv
			return nil
		}
	}
	r.s.inventory[id] = entity.Inventory{ID: id, BranchID: branchID, ProductID: productID, Stock: qty}
	return nil
}

func (r *memInventory) ListLowStock(ctx context.Context, f repository.InventoryFilter) ([]*entity.LowStockItem, error) {
	all, _ := r.List(ctx, f, 0, 0)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.LowStockItem
	for _, inv := range all {
		if !inv.BelowReorderPoint() {
			continue
		}
		p := r.s.products[inv.ProductID]
		out = append(out, &entity.LowStockItem{
			Inventory:   *inv,
			SKU:         p.SKU,
			ProductName: p.Name,
			BranchName:  r.s.branches[inv.BranchID].Name,
			Price:       p.Price,
			Cost:        p.Cost,
		})
	}
	return out, nil
}

// ── purchases / sales / orders ───────────────────────────────────────────────

type memPurchases struct{ s *memStore }

func (r *memPurchases) Create(_ context.Context, p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases[p.ID] = *p
	return nil
}

func (r *memPurchases) GetByID(_ context.Context, companyID, id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok || !inScope(companyID, r.s.companyOfBranch(p.BranchID)) {
		return nil, nil
	}
	return &p, nil
}

func (r *memPurchases) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Purchase
	for _, p := range r.s.purchases {
		if inScope(companyID, r.s.companyOfBranch(p.BranchID)) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

type memSales struct{ s *memStore }

func (r *memSales) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *memSales) GetByID(_ context.Context, companyID, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok || !inScope(companyID, r.s.companyOfBranch(sale.BranchID)) {
		return nil, nil
	}
	return &sale, nil
}

func (r *memSales) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if inScope(companyID, r.s.companyOfBranch(sale.BranchID)) {
			sale := sale
			out = append(out, &sale)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

type memOrders struct{ s *memStore }

func (r *memOrders) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID] = *o
	return nil
}

func (r *memOrders) GetByID(_ context.Context, companyID, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok || !inScope(companyID, o.CompanyID) {
		return nil, nil
	}
	return &o, nil
}

func (r *memOrders) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Order, error) {
	return r.GetByID(ctx, companyID, id)
}

func (r *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	r.s.orders[id] = o
	return nil
}

func (r *memOrders) List(_ context.Context, companyID string, limit, offset int) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if inScope(companyID, o.CompanyID) {
			o := o
			out = append(out, &o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memOrders) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok || !inScope(companyID, o.CompanyID) {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}
