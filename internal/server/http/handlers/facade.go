package handlers

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(password string) (string, error)
	ParseToken(token string) error
}

// StorefrontFacade covers the public shop surface.
type StorefrontFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// OrderFacade encapsulates back-office order operations.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, string, error)
	DeleteOrder(ctx context.Context, id string) error
}

// CustomerFacade provides customer directory operations.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id string) (*model.Customer, []model.Order, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// ProductFacade provides catalog management operations.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error)
	SetStock(ctx context.Context, id string, stock int) (*model.Product, error)
	LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
}

// ReturnFacade provides return processing operations.
type ReturnFacade interface {
	Returns(ctx context.Context) ([]model.Return, error)
	Return(ctx context.Context, id string) (*model.Return, error)
	CreateReturn(ctx context.Context, req model.ReturnRequest) (*model.Return, error)
}

// ExpenseFacade provides bookkeeping operations.
type ExpenseFacade interface {
	Expenses(ctx context.Context) ([]model.Expense, error)
	CreateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// TemplateFacade provides message template operations.
type TemplateFacade interface {
	Templates(ctx context.Context) ([]model.MessageTemplate, error)
	UpdateTemplate(ctx context.Context, template model.MessageTemplate) error
	PreviewNotification(ctx context.Context, orderID string) (message, link string, err error)
}

// DashboardFacade provides KPI aggregation.
type DashboardFacade interface {
	Dashboard(ctx context.Context, recentLimit int) (*model.DashboardStats, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	StorefrontFacade
	OrderFacade
	CustomerFacade
	ProductFacade
	ReturnFacade
	ExpenseFacade
	TemplateFacade
	DashboardFacade
}
