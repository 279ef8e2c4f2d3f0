package app

import (
	"context"
	"log/slog"

	"github.com/hazemhalim/dukkan/internal/adapter/notify"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/usecase"
)

// StoreFacade aggregates the storefront and back-office use cases behind one
// application surface consumed by HTTP handlers and the worker.
type StoreFacade struct {
	auth      *usecase.AuthUseCase
	checkout  *usecase.CheckoutUseCase
	orders    *usecase.OrderUseCase
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
	returns   *usecase.ReturnUseCase
	expenses  *usecase.ExpenseUseCase
	templates *usecase.TemplateUseCase
	dashboard *usecase.DashboardUseCase
	notifier  notify.Client
	logger    *slog.Logger
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	customers *usecase.CustomerUseCase,
	returns *usecase.ReturnUseCase,
	expenses *usecase.ExpenseUseCase,
	templates *usecase.TemplateUseCase,
	dashboard *usecase.DashboardUseCase,
	notifier notify.Client,
	logger *slog.Logger,
) *StoreFacade {
	return &StoreFacade{
		auth:      auth,
		checkout:  checkout,
		orders:    orders,
		products:  products,
		customers: customers,
		returns:   returns,
		expenses:  expenses,
		templates: templates,
		dashboard: dashboard,
		notifier:  notifier,
		logger:    logger,
	}
}

// --- auth ---

func (f *StoreFacade) Login(password string) (string, error) {
	return f.auth.Login(password)
}

func (f *StoreFacade) ParseToken(token string) error {
	return f.auth.ParseToken(token)
}

// --- storefront ---

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *StoreFacade) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	return f.checkout.PlaceOrder(ctx, req)
}

func (f *StoreFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

// --- orders ---

func (f *StoreFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// ChangeOrderStatus applies a fulfillment transition, then renders the
// matching WhatsApp template. Notification delivery is best effort: failures
// are logged and never fail the transition.
func (f *StoreFacade) ChangeOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, string, error) {
	order, err := f.orders.ChangeStatus(ctx, orderID, to)
	if err != nil {
		return nil, "", err
	}

	message, link, err := f.templates.RenderForOrder(ctx, order)
	if err != nil {
		f.logger.Warn("render status notification failed",
			slog.String("order", order.ID),
			slog.String("error", err.Error()))
		return order, "", nil
	}

	if f.notifier.Enabled() {
		if err := f.notifier.Send(ctx, order.Phone, message); err != nil {
			f.logger.Warn("send status notification failed",
				slog.String("order", order.ID),
				slog.String("error", err.Error()))
		}
	}

	return order, link, nil
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

// --- customers ---

func (f *StoreFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *StoreFacade) Customer(ctx context.Context, id string) (*model.Customer, []model.Order, error) {
	return f.customers.Get(ctx, id)
}

func (f *StoreFacade) CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	return f.customers.Create(ctx, customer)
}

func (f *StoreFacade) DeleteCustomer(ctx context.Context, id string) error {
	return f.customers.Delete(ctx, id)
}

// --- products ---

func (f *StoreFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.products.Update(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.products.Delete(ctx, id)
}

func (f *StoreFacade) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	return f.products.AdjustStock(ctx, id, delta)
}

func (f *StoreFacade) SetStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	return f.products.SetStock(ctx, id, stock)
}

func (f *StoreFacade) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	return f.products.LowStock(ctx, threshold)
}

// --- returns ---

func (f *StoreFacade) Returns(ctx context.Context) ([]model.Return, error) {
	return f.returns.List(ctx)
}

func (f *StoreFacade) Return(ctx context.Context, id string) (*model.Return, error) {
	return f.returns.Get(ctx, id)
}

func (f *StoreFacade) CreateReturn(ctx context.Context, req model.ReturnRequest) (*model.Return, error) {
	return f.returns.Create(ctx, req)
}

// --- expenses ---

func (f *StoreFacade) Expenses(ctx context.Context) ([]model.Expense, error) {
	return f.expenses.List(ctx)
}

func (f *StoreFacade) CreateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	return f.expenses.Create(ctx, expense)
}

func (f *StoreFacade) DeleteExpense(ctx context.Context, id string) error {
	return f.expenses.Delete(ctx, id)
}

// --- templates ---

func (f *StoreFacade) Templates(ctx context.Context) ([]model.MessageTemplate, error) {
	return f.templates.List(ctx)
}

func (f *StoreFacade) UpdateTemplate(ctx context.Context, template model.MessageTemplate) error {
	return f.templates.Update(ctx, template)
}

// PreviewNotification renders the template for an order's current status
// without sending anything.
func (f *StoreFacade) PreviewNotification(ctx context.Context, orderID string) (message, link string, err error) {
	order, err := f.orders.Get(ctx, orderID)
	if err != nil {
		return "", "", err
	}
	return f.templates.RenderForOrder(ctx, order)
}

// --- dashboard ---

func (f *StoreFacade) Dashboard(ctx context.Context, recentLimit int) (*model.DashboardStats, error) {
	return f.dashboard.Stats(ctx, recentLimit)
}
