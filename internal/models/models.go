package models

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Address     *string   `gorm:"type:text" json:"address,omitempty"`
	Tel         *string   `gorm:"type:text" json:"tel,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	OpenTime    string    `gorm:"type:text;not null;default:'09:00'" json:"open_time"`
	CloseTime   string    `gorm:"type:text;not null;default:'21:00'" json:"close_time"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Products []Product `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Shop) TableName() string { return "shops" }

type ProductCategory string

const (
	CategoryFood  ProductCategory = "food"
	CategoryDrink ProductCategory = "drink"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Category    ProductCategory `gorm:"type:text;not null;default:'drink';index" json:"category"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Price       int64           `gorm:"not null" json:"price"` // minor currency units
	IsAvailable bool            `gorm:"not null;default:true;index" json:"is_available"`
	Stock       int32           `gorm:"not null;default:999" json:"stock"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null;default:''" json:"name"`
	Gender      *string   `gorm:"type:text" json:"gender,omitempty"`
	PhoneNumber *string   `gorm:"type:text" json:"phone_number,omitempty"`
	// Stable identifier assigned by the messaging platform; doubles as the
	// customer's authentication token on both access channels.
	ChannelID string `gorm:"type:text;not null;uniqueIndex:ux_customers_channel_id" json:"channel_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Cart   *Cart   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string { return "customers" }

// Cart is the mutable pre-purchase basket. The unique index on customer_id
// is what makes GetOrCreate race-safe: the loser of a concurrent create
// resolves to the winner's row.
type Cart struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_carts_customer" json:"customer_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Cart) TableName() string { return "carts" }

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_cart_items_cart_product" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_cart_items_cart_product" json:"product_id"`
	Quantity  int32     `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (CartItem) TableName() string { return "cart_items" }

// Subtotal is priced off the live product row; carts are pre-purchase
// estimates and deliberately track catalog price changes.
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index" json:"customer_id"`
	ShopID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"shop_id"`
	Status     OrderStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	// Snapshot taken at checkout; never recomputed from the lines.
	TotalAmount int64   `gorm:"not null;default:0" json:"total_amount"`
	Note        *string `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int32     `gorm:"not null" json:"quantity"`
	// Product price at the moment of checkout. Later catalog changes must
	// never alter historical orders.
	Price int64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
