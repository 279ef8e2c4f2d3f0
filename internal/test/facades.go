package test

import (
	"context"
	"sync"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests. Every
// operation has a function override and a sensible default.
type StoreFacadeStub struct {
	LoginFn      func(string) (string, error)
	ParseTokenFn func(string) error

	ProductsFn       func(context.Context) ([]model.Product, error)
	ProductFn        func(context.Context, string) (*model.Product, error)
	CheckoutFn       func(context.Context, model.CheckoutRequest) (*model.PlacedOrder, error)
	OrderFn          func(context.Context, string) (*model.Order, error)
	OrdersFn         func(context.Context) ([]model.Order, error)
	ChangeStatusFn   func(context.Context, string, model.OrderStatus) (*model.Order, string, error)
	DeleteOrderFn    func(context.Context, string) error
	CustomersFn      func(context.Context) ([]model.Customer, error)
	CustomerFn       func(context.Context, string) (*model.Customer, []model.Order, error)
	CreateCustomerFn func(context.Context, model.Customer) (*model.Customer, error)
	DeleteCustomerFn func(context.Context, string) error
	CreateProductFn  func(context.Context, model.Product) (*model.Product, error)
	UpdateProductFn  func(context.Context, model.Product) (*model.Product, error)
	DeleteProductFn  func(context.Context, string) error
	AdjustStockFn    func(context.Context, string, int) (*model.Product, error)
	SetStockFn       func(context.Context, string, int) (*model.Product, error)
	LowStockFn       func(context.Context, int) ([]model.Product, error)
	ReturnsFn        func(context.Context) ([]model.Return, error)
	ReturnFn         func(context.Context, string) (*model.Return, error)
	CreateReturnFn   func(context.Context, model.ReturnRequest) (*model.Return, error)
	ExpensesFn       func(context.Context) ([]model.Expense, error)
	CreateExpenseFn  func(context.Context, model.Expense) (*model.Expense, error)
	DeleteExpenseFn  func(context.Context, string) error
	TemplatesFn      func(context.Context) ([]model.MessageTemplate, error)
	UpdateTemplateFn func(context.Context, model.MessageTemplate) error
	PreviewFn        func(context.Context, string) (string, string, error)
	DashboardFn      func(context.Context, int) (*model.DashboardStats, error)
}

// Login returns token for successful authentication scenarios.
func (s *StoreFacadeStub) Login(password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(password)
	}
	return "token", nil
}

// ParseToken validates tokens issued during tests.
func (s *StoreFacadeStub) ParseToken(token string) error {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return nil
}

// Products returns the configured catalog.
func (s *StoreFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "product-1", Name: "Scarf", Price: 10, Stock: 5}}, nil
}

// Product returns a single configured product.
func (s *StoreFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Scarf", Price: 10, Stock: 5}, nil
}

// Checkout delegates to provided function or returns a default placement.
func (s *StoreFacadeStub) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, req)
	}
	return &model.PlacedOrder{OrderID: "order-1", Number: 1, CustomerID: "customer-1"}, nil
}

// Order returns a single configured order.
func (s *StoreFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Number: 1, Status: model.OrderStatusPending}, nil
}

// Orders returns the configured order list.
func (s *StoreFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "order-1", Number: 1, Status: model.OrderStatusPending}}, nil
}

// ChangeOrderStatus applies a transition and returns a notification link.
func (s *StoreFacadeStub) ChangeOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, string, error) {
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, orderID, to)
	}
	return &model.Order{ID: orderID, Number: 1, Status: to}, "https://wa.me/123?text=hi", nil
}

// DeleteOrder executes the configured handler.
func (s *StoreFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// Customers returns the configured directory.
func (s *StoreFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: "customer-1", Name: "Mona", Phone: "+201000000001"}}, nil
}

// Customer returns a customer with order history.
func (s *StoreFacadeStub) Customer(ctx context.Context, id string) (*model.Customer, []model.Order, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Name: "Mona"}, nil, nil
}

// CreateCustomer echoes the submission with an identifier.
func (s *StoreFacadeStub) CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, customer)
	}
	customer.ID = "customer-1"
	return &customer, nil
}

// DeleteCustomer executes the configured handler.
func (s *StoreFacadeStub) DeleteCustomer(ctx context.Context, id string) error {
	if s.DeleteCustomerFn != nil {
		return s.DeleteCustomerFn(ctx, id)
	}
	return nil
}

// CreateProduct echoes the submission with an identifier.
func (s *StoreFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = "product-1"
	return &product, nil
}

// UpdateProduct echoes the submission.
func (s *StoreFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return &product, nil
}

// DeleteProduct executes the configured handler.
func (s *StoreFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// AdjustStock applies the configured handler or a default response.
func (s *StoreFacadeStub) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, id, delta)
	}
	return &model.Product{ID: id, Stock: 5 + delta}, nil
}

// SetStock applies the configured handler or a default response.
func (s *StoreFacadeStub) SetStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, id, stock)
	}
	return &model.Product{ID: id, Stock: stock}, nil
}

// LowStockProducts returns the configured low stock list.
func (s *StoreFacadeStub) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold)
	}
	return nil, nil
}

// Returns returns the configured history.
func (s *StoreFacadeStub) Returns(ctx context.Context) ([]model.Return, error) {
	if s.ReturnsFn != nil {
		return s.ReturnsFn(ctx)
	}
	return []model.Return{{ID: "return-1", OrderID: "order-1"}}, nil
}

// Return returns a single configured return.
func (s *StoreFacadeStub) Return(ctx context.Context, id string) (*model.Return, error) {
	if s.ReturnFn != nil {
		return s.ReturnFn(ctx, id)
	}
	return &model.Return{ID: id, OrderID: "order-1"}, nil
}

// CreateReturn echoes the submission with an identifier.
func (s *StoreFacadeStub) CreateReturn(ctx context.Context, req model.ReturnRequest) (*model.Return, error) {
	if s.CreateReturnFn != nil {
		return s.CreateReturnFn(ctx, req)
	}
	return &model.Return{ID: "return-1", OrderID: req.OrderID, Reason: req.Reason}, nil
}

// Expenses returns the configured bookkeeping entries.
func (s *StoreFacadeStub) Expenses(ctx context.Context) ([]model.Expense, error) {
	if s.ExpensesFn != nil {
		return s.ExpensesFn(ctx)
	}
	return []model.Expense{{ID: "expense-1", Description: "Packaging", Amount: 20}}, nil
}

// CreateExpense echoes the submission with an identifier.
func (s *StoreFacadeStub) CreateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	if s.CreateExpenseFn != nil {
		return s.CreateExpenseFn(ctx, expense)
	}
	expense.ID = "expense-1"
	return &expense, nil
}

// DeleteExpense executes the configured handler.
func (s *StoreFacadeStub) DeleteExpense(ctx context.Context, id string) error {
	if s.DeleteExpenseFn != nil {
		return s.DeleteExpenseFn(ctx, id)
	}
	return nil
}

// Templates returns the configured templates.
func (s *StoreFacadeStub) Templates(ctx context.Context) ([]model.MessageTemplate, error) {
	if s.TemplatesFn != nil {
		return s.TemplatesFn(ctx)
	}
	return model.DefaultTemplates(), nil
}

// UpdateTemplate executes the configured handler.
func (s *StoreFacadeStub) UpdateTemplate(ctx context.Context, template model.MessageTemplate) error {
	if s.UpdateTemplateFn != nil {
		return s.UpdateTemplateFn(ctx, template)
	}
	return nil
}

// PreviewNotification returns a rendered message and link.
func (s *StoreFacadeStub) PreviewNotification(ctx context.Context, orderID string) (string, string, error) {
	if s.PreviewFn != nil {
		return s.PreviewFn(ctx, orderID)
	}
	return "hello", "https://wa.me/123?text=hello", nil
}

// Dashboard returns the configured KPI figures.
func (s *StoreFacadeStub) Dashboard(ctx context.Context, recentLimit int) (*model.DashboardStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, recentLimit)
	}
	return &model.DashboardStats{}, nil
}

// CatalogFacadeStub mimics worker interactions with the catalog.
type CatalogFacadeStub struct {
	LowStockFn func(context.Context, int) ([]model.Product, error)

	mu    sync.Mutex
	calls int
}

// LowStockProducts delegates to provided function or returns nothing.
func (s *CatalogFacadeStub) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold)
	}
	return nil, nil
}

// Calls reports how many sweeps the worker performed.
func (s *CatalogFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// NotifierStub records outbound notifications.
type NotifierStub struct {
	SendFn     func(context.Context, string, string) error
	EnabledVal bool

	mu   sync.Mutex
	Sent []SentMessage
}

// SentMessage captures one Send invocation.
type SentMessage struct {
	Phone   string
	Message string
}

// Send records the message and delegates to any override.
func (s *NotifierStub) Send(ctx context.Context, phone, message string) error {
	s.mu.Lock()
	s.Sent = append(s.Sent, SentMessage{Phone: phone, Message: message})
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, phone, message)
	}
	return nil
}

// Enabled reports whether the stub should be treated as configured.
func (s *NotifierStub) Enabled() bool {
	return s.EnabledVal
}
