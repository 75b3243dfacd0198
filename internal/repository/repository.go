package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Shops      ShopRepo
	Products   ProductRepo
	Customers  CustomerRepo
	Carts      CartRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Shops:      NewShopRepo(db),
		Products:   NewProductRepo(db),
		Customers:  NewCustomerRepo(db),
		Carts:      NewCartRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
