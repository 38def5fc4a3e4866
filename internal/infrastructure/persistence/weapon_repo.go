package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"weapon_market/internal/domain"
	"weapon_market/internal/domain/entity"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type WeaponRepository struct {
	db *sqlx.DB
}

func NewWeaponRepository(db *sqlx.DB) *WeaponRepository {
	return &WeaponRepository{db: db}
}

// Find возвращает страницу лотов по фильтру.
func (r *WeaponRepository) Find(
	ctx context.Context,
	filter value.Filter,
	pagination value.Pagination,
) ([]entity.WeaponListing, error) {
	query, args := findQuery(filter, pagination)

	var schemas []weaponSchema
	if err := r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to find weapons")
	}

	listings := make([]entity.WeaponListing, 0, len(schemas))
	for i := range schemas {
		listings = append(listings, schemas[i].toDomain())
	}

	return listings, nil
}

func (r *WeaponRepository) Count(ctx context.Context, filter value.Filter) (int64, error) {
	query, args := countQuery(filter)

	var total int64
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(query), args...); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count weapons")
	}

	return total, nil
}

// FindOne ищет лот по натуральному ключу, независимо от того, продан ли он.
func (r *WeaponRepository) FindOne(ctx context.Context, key entity.WeaponKey) (*entity.WeaponListing, error) {
	query := `SELECT ` + weaponColumns + ` FROM market_weapons WHERE network = $1 AND weapon_id = $2`

	var schema weaponSchema
	if err := r.db.GetContext(ctx, &schema, query, key.Network, key.WeaponID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.WeaponNotFound, "weapon listing not found")
		}

		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get weapon")
	}

	listing := schema.toDomain()

	return &listing, nil
}

// ReplaceOrInsert заменяет все поля лота по (network, weapon_id). Поля,
// отсутствующие в новом лоте, становятся NULL.
func (r *WeaponRepository) ReplaceOrInsert(ctx context.Context, listing *entity.WeaponListing) error {
	query := `
		INSERT INTO market_weapons (
			network, weapon_id, price, weapon_stars, weapon_element,
			stat1_element, stat1_value, stat2_element, stat2_value,
			stat3_element, stat3_value, listing_timestamp, seller_address, buyer_address
		) VALUES (
			:network, :weapon_id, :price, :weapon_stars, :weapon_element,
			:stat1_element, :stat1_value, :stat2_element, :stat2_value,
			:stat3_element, :stat3_value, :listing_timestamp, :seller_address, :buyer_address
		)
		ON CONFLICT (network, weapon_id) DO UPDATE SET
			price = EXCLUDED.price,
			weapon_stars = EXCLUDED.weapon_stars,
			weapon_element = EXCLUDED.weapon_element,
			stat1_element = EXCLUDED.stat1_element,
			stat1_value = EXCLUDED.stat1_value,
			stat2_element = EXCLUDED.stat2_element,
			stat2_value = EXCLUDED.stat2_value,
			stat3_element = EXCLUDED.stat3_element,
			stat3_value = EXCLUDED.stat3_value,
			listing_timestamp = EXCLUDED.listing_timestamp,
			seller_address = EXCLUDED.seller_address,
			buyer_address = EXCLUDED.buyer_address`

	if _, err := r.db.NamedExecContext(ctx, query, fromWeaponListing(listing)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save weapon")
	}

	return nil
}

// InsertSale дописывает снимок в журнал продаж и проставляет CreatedAt.
func (r *WeaponRepository) InsertSale(ctx context.Context, sale *entity.WeaponSale) error {
	weapon, err := json.Marshal(sale.Weapon)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode sale")
	}

	query, args, err := r.db.BindNamed(`
		INSERT INTO market_sales (type, weapon)
		VALUES (:type, :weapon)
		RETURNING created_at`, saleSchema{Type: sale.Type, Weapon: weapon})
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	if err = r.db.GetContext(ctx, &sale.CreatedAt, query, args...); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert sale")
	}

	return nil
}

// RemoveOne удаляет лот. Отсутствие лота не ошибка.
func (r *WeaponRepository) RemoveOne(ctx context.Context, key entity.WeaponKey) error {
	query := `DELETE FROM market_weapons WHERE network = $1 AND weapon_id = $2`

	if _, err := r.db.ExecContext(ctx, query, key.Network, key.WeaponID); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete weapon")
	}

	return nil
}

// RemoveBySeller удаляет все лоты продавца во всех сетях.
func (r *WeaponRepository) RemoveBySeller(ctx context.Context, sellerAddress string) error {
	query := `DELETE FROM market_weapons WHERE seller_address = $1`

	if _, err := r.db.ExecContext(ctx, query, sellerAddress); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete seller weapons")
	}

	return nil
}

// Sales возвращает снимки продаж лота, старые первыми.
func (r *WeaponRepository) Sales(ctx context.Context, key entity.WeaponKey) ([]entity.WeaponSale, error) {
	query := `
		SELECT type, weapon, created_at
		FROM market_sales
		WHERE weapon->>'network' = $1 AND weapon->>'weaponId' = $2
		ORDER BY id`

	var rows []struct {
		saleSchema
		CreatedAt sql.NullTime `db:"created_at"`
	}

	if err := r.db.SelectContext(ctx, &rows, query, key.Network, key.WeaponID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get sales")
	}

	sales := make([]entity.WeaponSale, 0, len(rows))

	for _, row := range rows {
		sale := entity.WeaponSale{Type: row.Type, CreatedAt: row.CreatedAt.Time}
		if err := json.Unmarshal(row.Weapon, &sale.Weapon); err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode sale")
		}

		sales = append(sales, sale)
	}

	return sales, nil
}
