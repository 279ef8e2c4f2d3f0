package usecase

import (
	"go.uber.org/fx"

	"github.com/hazemhalim/dukkan/internal/config"
	pkgAuth "github.com/hazemhalim/dukkan/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCheckoutUseCase,
	NewOrderUseCase,
	NewProductUseCase,
	NewCustomerUseCase,
	NewReturnUseCase,
	NewExpenseUseCase,
	NewTemplateUseCase,
	NewDashboardUseCase,
)

type authParams struct {
	fx.In

	Config *config.Config
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
}

func newAuthUseCase(p authParams) (*AuthUseCase, error) {
	return NewAuthUseCase(p.Config.AdminPassword, p.Hasher, p.Tokens)
}
