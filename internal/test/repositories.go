package test

import (
	"context"
	"strconv"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	Customers map[string]*model.Customer
	ByPhone   map[string]*model.Customer
	Next      int
	Err       error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		Customers: make(map[string]*model.Customer),
		ByPhone:   make(map[string]*model.Customer),
		Next:      1,
	}
}

// Create registers customer unless phone already taken or stub has explicit error.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Customers == nil {
		s.Customers = make(map[string]*model.Customer)
	}
	if s.ByPhone == nil {
		s.ByPhone = make(map[string]*model.Customer)
	}
	if customer.Phone != "" {
		if _, exists := s.ByPhone[customer.Phone]; exists {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := customer
	created.ID = "customer-" + strconv.Itoa(s.Next)
	s.Next++
	s.Customers[created.ID] = &created
	if created.Phone != "" {
		s.ByPhone[created.Phone] = &created
	}
	return &created, nil
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.Customers[id]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByPhone fetches customer by phone or returns not found.
func (s *CustomerRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByPhone[phone]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored customers.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	customers := make([]model.Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		customers = append(customers, *c)
	}
	return customers, nil
}

// Delete removes customer or returns not found.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	customer, ok := s.Customers[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Customers, id)
	delete(s.ByPhone, customer.Phone)
	return nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn      func(context.Context, model.Product) (*model.Product, error)
	GetByIDFn     func(context.Context, string) (*model.Product, error)
	ListFn        func(context.Context) ([]model.Product, error)
	UpdateFn      func(context.Context, model.Product) (*model.Product, error)
	DeleteFn      func(context.Context, string) error
	AdjustStockFn func(context.Context, string, int) (*model.Product, error)
	SetStockFn    func(context.Context, string, int) (*model.Product, error)

	Products    []model.Product
	AdjustCalls []StockAdjustCall
}

// StockAdjustCall stores information about AdjustStock invocations.
type StockAdjustCall struct {
	ProductID string
	Delta     int
}

// Create tracks invocations and returns configured responses.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := product
	if created.ID == "" {
		created.ID = "product-1"
	}
	s.Products = append(s.Products, created)
	return &created, nil
}

// GetByID returns matched product either via override or stored slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns products from configured slice.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Products, nil
}

// ListBelowStock filters the configured slice by threshold.
func (s *ProductRepositoryStub) ListBelowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	var low []model.Product
	for _, p := range s.Products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// Update replaces the stored product when present.
func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	for i, p := range s.Products {
		if p.ID == product.ID {
			product.Stock = p.Stock
			product.CreatedAt = p.CreatedAt
			s.Products[i] = product
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes product or returns not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, p := range s.Products {
		if p.ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// AdjustStock records calls and applies the delta with a zero floor.
func (s *ProductRepositoryStub) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	s.AdjustCalls = append(s.AdjustCalls, StockAdjustCall{ProductID: id, Delta: delta})
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, id, delta)
	}
	for i, p := range s.Products {
		if p.ID == id {
			if p.Stock+delta < 0 {
				return nil, domainErrors.ErrInsufficientStock
			}
			s.Products[i].Stock += delta
			product := s.Products[i]
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SetStock overwrites stored stock level.
func (s *ProductRepositoryStub) SetStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, id, stock)
	}
	for i, p := range s.Products {
		if p.ID == id {
			s.Products[i].Stock = stock
			product := s.Products[i]
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	PlaceFn        func(context.Context, model.CheckoutRequest) (*model.PlacedOrder, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, model.OrderStatus) error
	DeleteFn       func(context.Context, string) error

	Placed      []model.CheckoutRequest
	Orders      []model.Order
	StatusCalls []StatusUpdateCall
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID string
	From    model.OrderStatus
	To      model.OrderStatus
}

// Place tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Place(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	s.Placed = append(s.Placed, req)
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, req)
	}
	return &model.PlacedOrder{OrderID: "order-1", Number: 1, CustomerID: "customer-1"}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// ListByCustomer filters the configured slice by customer.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	var orders []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListRecent returns up to limit orders from the configured slice.
func (s *OrderRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	if limit >= len(s.Orders) {
		return s.Orders, nil
	}
	return s.Orders[:limit], nil
}

// UpdateStatus records update invocations and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	s.StatusCalls = append(s.StatusCalls, StatusUpdateCall{OrderID: orderID, From: from, To: to})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	for i, o := range s.Orders {
		if o.ID == orderID {
			if o.Status != from {
				return domainErrors.ErrStatusConflict
			}
			s.Orders[i].Status = to
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes order or returns not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ReturnRepositoryStub lets tests control return processing.
type ReturnRepositoryStub struct {
	CreateFn func(context.Context, model.ReturnRequest) (*model.Return, error)
	Returns  []model.Return
	Created  []model.ReturnRequest
}

// Create records the submission and returns a configured response.
func (s *ReturnRepositoryStub) Create(ctx context.Context, req model.ReturnRequest) (*model.Return, error) {
	s.Created = append(s.Created, req)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	ret := model.Return{ID: "return-1", OrderID: req.OrderID, Reason: req.Reason}
	for _, item := range req.Items {
		ret.Items = append(ret.Items, model.ReturnItem{
			ReturnID:    ret.ID,
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
		})
	}
	return &ret, nil
}

// GetByID returns matched return or not found.
func (s *ReturnRepositoryStub) GetByID(ctx context.Context, id string) (*model.Return, error) {
	for _, r := range s.Returns {
		if r.ID == id {
			ret := r
			return &ret, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured returns.
func (s *ReturnRepositoryStub) List(ctx context.Context) ([]model.Return, error) {
	return s.Returns, nil
}

// ExpenseRepositoryStub stores expenses for tests.
type ExpenseRepositoryStub struct {
	CreateFn func(context.Context, model.Expense) (*model.Expense, error)
	Items    []model.Expense
}

// Create stores the expense and returns it with an identifier.
func (s *ExpenseRepositoryStub) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, expense)
	}
	created := expense
	created.ID = "expense-" + strconv.Itoa(len(s.Items)+1)
	s.Items = append(s.Items, created)
	return &created, nil
}

// List returns configured expenses.
func (s *ExpenseRepositoryStub) List(ctx context.Context) ([]model.Expense, error) {
	return s.Items, nil
}

// Delete removes expense or returns not found.
func (s *ExpenseRepositoryStub) Delete(ctx context.Context, id string) error {
	for i, e := range s.Items {
		if e.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// TemplateRepositoryStub keeps message templates keyed by status.
type TemplateRepositoryStub struct {
	Templates map[model.OrderStatus]model.MessageTemplate
	Upserted  []model.MessageTemplate
}

// NewTemplateRepositoryStub seeds the stub with default templates.
func NewTemplateRepositoryStub() *TemplateRepositoryStub {
	stub := &TemplateRepositoryStub{Templates: make(map[model.OrderStatus]model.MessageTemplate)}
	for _, t := range model.DefaultTemplates() {
		stub.Templates[t.Status] = t
	}
	return stub
}

// List returns stored templates.
func (s *TemplateRepositoryStub) List(ctx context.Context) ([]model.MessageTemplate, error) {
	templates := make([]model.MessageTemplate, 0, len(s.Templates))
	for _, t := range s.Templates {
		templates = append(templates, t)
	}
	return templates, nil
}

// GetByStatus returns the template for a status or not found.
func (s *TemplateRepositoryStub) GetByStatus(ctx context.Context, status model.OrderStatus) (*model.MessageTemplate, error) {
	if t, ok := s.Templates[status]; ok {
		return &t, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert records the template and replaces any stored one.
func (s *TemplateRepositoryStub) Upsert(ctx context.Context, template model.MessageTemplate) error {
	if s.Templates == nil {
		s.Templates = make(map[model.OrderStatus]model.MessageTemplate)
	}
	s.Templates[template.Status] = template
	s.Upserted = append(s.Upserted, template)
	return nil
}

// StatsRepositoryStub returns canned dashboard figures.
type StatsRepositoryStub struct {
	CustomerCount int64
	OrderCount    int64
	ProductCount  int64
	Revenue       float64
	Monthly       []model.MonthlyRevenue
	Err           error
}

// Counts returns configured entity counts.
func (s *StatsRepositoryStub) Counts(ctx context.Context) (int64, int64, int64, error) {
	if s.Err != nil {
		return 0, 0, 0, s.Err
	}
	return s.CustomerCount, s.OrderCount, s.ProductCount, nil
}

// TotalRevenue returns configured revenue.
func (s *StatsRepositoryStub) TotalRevenue(ctx context.Context) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Revenue, nil
}

// MonthlyRevenue returns configured buckets.
func (s *StatsRepositoryStub) MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Monthly, nil
}
