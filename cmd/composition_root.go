package cmd

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
)

// CompositionRoot wires application handlers from the infrastructure pieces.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     auth.JWTTokenService
	passwords  auth.BcryptPasswordHasher
}

// NewCompositionRoot creates the composition root over the database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     auth.NewJWTTokenService(config.JWTSecret, config.JWTTTL),
		passwords:  auth.NewBcryptPasswordHasher(),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.passwords)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.createPartnerUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	return commands.NewUpdatePartnerCommandHandler(c.createPartnerUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerStatusCommandHandler() commands.UpdatePartnerStatusCommandHandler {
	return commands.NewUpdatePartnerStatusCommandHandler(c.createPartnerUoWFactory())
}

func (c *CompositionRoot) CreateDeletePartnerCommandHandler() commands.DeletePartnerCommandHandler {
	return commands.NewDeletePartnerCommandHandler(c.createPartnerUoWFactory())
}

func (c *CompositionRoot) CreateReconcileLinksCommandHandler() commands.ReconcileLinksCommandHandler {
	return commands.NewReconcileLinksCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateLoginUserQueryHandler() queries.LoginUserQueryHandler {
	users := c.uowFactory.Create().UserRepository()
	return queries.NewLoginUserQueryHandler(users, c.passwords, c.tokens)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	users := c.uowFactory.Create().UserRepository()
	return queries.NewGetUserQueryHandler(users)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnersQueryHandler() queries.GetPartnersQueryHandler {
	return queries.NewGetPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerQueryHandler() queries.GetPartnerQueryHandler {
	return queries.NewGetPartnerQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all command and query handlers.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		AssignOrder:         c.CreateAssignOrderCommandHandler(),
		UnassignOrder:       c.CreateUnassignOrderCommandHandler(),
		UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		CreatePartner:       c.CreateCreatePartnerCommandHandler(),
		UpdatePartner:       c.CreateUpdatePartnerCommandHandler(),
		UpdatePartnerStatus: c.CreateUpdatePartnerStatusCommandHandler(),
		DeletePartner:       c.CreateDeletePartnerCommandHandler(),

		LoginUser:        c.CreateLoginUserQueryHandler(),
		GetUser:          c.CreateGetUserQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetPartnerOrders: c.CreateGetPartnerOrdersQueryHandler(),
		GetPartners:      c.CreateGetPartnersQueryHandler(),
		GetPartner:       c.CreateGetPartnerQueryHandler(),
	})
}

// CreateAuthMiddleware returns the bearer-token middleware for protected routes.
func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	return auth.Middleware(c.tokens)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileLinksCommandHandler(), logger)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createPartnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
