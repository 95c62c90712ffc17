package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store *memStore
	deps  usecase.Deps
}

func newFixture() *fixture {
	s := newMemStore()
	repos := s.repos(nil)
	catalog := plan.Default(plan.Of(1))
	return &fixture{
		store: s,
		deps: usecase.Deps{
			Repos:     repos,
			Tx:        s,
			Resolver:  entitlement.NewResolver(catalog, repos.Subscriptions, repos.Users, nil),
			Enforcer:  entitlement.NewEnforcer(catalog, nil, nil),
			Location:  time.UTC,
			TrialDays: 30,
			Now:       func() time.Time { return testNow },
		},
	}
}

func (f *fixture) company(id string, tier plan.Tier) {
	f.store.companies[id] = entity.Company{ID: id, Name: "Empresa " + id, RUT: "11.111.111-1"}
	if tier != "" {
		f.store.subscriptions[id] = entity.Subscription{
			ID: "sub-" + id, CompanyID: id, Plan: string(tier),
			StartDate: testNow.AddDate(0, 0, -1), EndDate: testNow.AddDate(0, 1, 0), Active: true,
		}
	}
}

func (f *fixture) branch(id, companyID string) {
	f.store.branches[id] = entity.Branch{ID: id, CompanyID: companyID, Name: "Sucursal " + id}
}

func (f *fixture) product(id, companyID string, price, cost int64) {
	f.store.products[id] = entity.Product{
		ID: id, CompanyID: companyID, SKU: "ABC-0001", Name: "Producto " + id,
		Price: decimal.NewFromInt(price), Cost: decimal.NewFromInt(cost),
	}
}

func (f *fixture) stock(id, branchID, productID string, stock int) {
	f.store.inventory[id] = entity.Inventory{ID: id, BranchID: branchID, ProductID: productID, Stock: stock}
}

func admin(companyID string) entity.Principal {
	return entity.Principal{UserID: "u-" + companyID, CompanyID: companyID, Role: entity.RoleAdminCliente}
}

func superAdmin() entity.Principal {
	return entity.Principal{UserID: "root", Role: entity.RoleSuperAdmin}
}

func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func entityClienteFinal() entity.Principal {
	return entity.Principal{UserID: "cf1", Role: entity.RoleClienteFinal}
}
