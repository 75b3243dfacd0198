package migrate

import (
	"context"

	"chatorder/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto for gen_random_uuid()
	CreateChecks           bool // CHECK constraints over enum-ish text columns
	CreateIndexes          bool // composite / ordering indexes beyond the tag-level ones
	CreateUpdatedAtTrigger bool // updated_at maintenance trigger
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Shop{},
		&models.Product{},
		&models.Customer{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_carts_updated ON carts;
CREATE TRIGGER trg_carts_updated
BEFORE UPDATE ON carts
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_customers_updated ON customers;
CREATE TRIGGER trg_customers_updated
BEFORE UPDATE ON customers
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at triggers", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")

		// Status values are stored as TEXT; constrain them here so a bad
		// write can never introduce a sixth state.
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','preparing','ready','completed','cancelled'));
`).Error; err != nil {
			log.Error("failed to create CHECK for orders.status", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_category_allowed;
ALTER TABLE products
  ADD CONSTRAINT chk_products_category_allowed
  CHECK (category IN ('food','drink'));
`).Error; err != nil {
			log.Error("failed to create CHECK for products.category", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE customers
  DROP CONSTRAINT IF EXISTS chk_customers_gender_allowed;
ALTER TABLE customers
  ADD CONSTRAINT chk_customers_gender_allowed
  CHECK (gender IS NULL OR gender IN ('male','female','other'));
`).Error; err != nil {
			log.Error("failed to create CHECK for customers.gender", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS chk_cart_items_quantity_gt_zero;
ALTER TABLE cart_items
  ADD CONSTRAINT chk_cart_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for cart_items.quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for order_items.quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_price_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_price_non_negative
  CHECK (price >= 0);
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_amount_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_amount_non_negative
  CHECK (total_amount >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for amounts", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")

		// The uniqueness below is load-bearing, not an optimization: it is
		// what resolves concurrent get-or-create and add-item races.
		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_carts_customer
ON carts (customer_id);

CREATE UNIQUE INDEX IF NOT EXISTS ux_cart_items_cart_product
ON cart_items (cart_id, product_id);

CREATE UNIQUE INDEX IF NOT EXISTS ux_customers_channel_id
ON customers (channel_id);
`).Error; err != nil {
			log.Error("failed to create uniqueness indexes", zap.Error(err))
			return err
		}

		// Customer order history and the admin order board both read
		// newest-first.
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_customer_created
ON orders (customer_id, created_at DESC);

CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);

CREATE INDEX IF NOT EXISTS ix_products_shop_category_name
ON products (shop_id, category, name);
`).Error; err != nil {
			log.Error("failed to create query indexes", zap.Error(err))
			return err
		}
	}

	log.Info("database migration finished")
	return nil
}
