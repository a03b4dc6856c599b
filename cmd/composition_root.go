package cmd

import (
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the persistence layer into command and query
// handlers. Each factory method returns a ready-to-use handler.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterBookCommandHandler() commands.RegisterBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterBookCommandHandler(f, c.config.UniqueNaturalKeys)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f, c.config.UniqueNaturalKeys)
}

func (c *CompositionRoot) CreateUpdateCustomerAddressCommandHandler() commands.UpdateCustomerAddressCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFindBookQueryHandler() queries.FindBookQueryHandler {
	return queries.NewFindBookQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindCustomerQueryHandler() queries.FindCustomerQueryHandler {
	return queries.NewFindCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookPriceQueryHandler() queries.GetBookPriceQueryHandler {
	return queries.NewGetBookPriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerAddressQueryHandler() queries.GetCustomerAddressQueryHandler {
	return queries.NewGetCustomerAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerBalanceQueryHandler() queries.GetCustomerBalanceQueryHandler {
	return queries.NewGetCustomerBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusReportQueryHandler() queries.GetOrderStatusReportQueryHandler {
	return queries.NewGetOrderStatusReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnshippedOrdersQueryHandler() queries.GetUnshippedOrdersQueryHandler {
	return queries.NewGetUnshippedOrdersQueryHandler(c.gormDB)
}

type FuncBookUoWFactory func() commands.BookUoW

func (f FuncBookUoWFactory) Create() commands.BookUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
