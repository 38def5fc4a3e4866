package service_test

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"weapon_market/internal/domain"
	"weapon_market/internal/domain/entity"
	"weapon_market/internal/domain/value"
	"weapon_market/pkg/errcodes"
)

// memoryRepository хранит лоты в памяти и повторяет семантику
// persistence.WeaponRepository: замена по натуральному ключу, фильтр,
// сортировка с порядком вставки в качестве второго ключа.
type memoryRepository struct {
	mu       sync.Mutex
	seq      int
	listings map[entity.WeaponKey]storedListing
	sales    []entity.WeaponSale

	findCalls  int
	countCalls int
	err        error
}

type storedListing struct {
	seq     int
	listing entity.WeaponListing
}

func newMemoryRepository(listings ...entity.WeaponListing) *memoryRepository {
	r := &memoryRepository{listings: make(map[entity.WeaponKey]storedListing)}

	for i := range listings {
		_ = r.ReplaceOrInsert(context.Background(), &listings[i])
	}

	return r
}

func (r *memoryRepository) Find(
	_ context.Context,
	filter value.Filter,
	pagination value.Pagination,
) ([]entity.WeaponListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.findCalls++

	if r.err != nil {
		return nil, r.err
	}

	matched := r.matching(filter)

	slices.SortStableFunc(matched, func(a, b storedListing) int {
		c := compareField(a.listing, b.listing, pagination.Sort.Field)
		if !pagination.Sort.Ascending() {
			c = -c
		}

		return cmp.Or(c, cmp.Compare(a.seq, b.seq))
	})

	result := make([]entity.WeaponListing, 0, pagination.Limit)

	for i := pagination.Skip; i < len(matched) && len(result) < pagination.Limit; i++ {
		result = append(result, matched[i].listing)
	}

	return result, nil
}

func (r *memoryRepository) Count(_ context.Context, filter value.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.countCalls++

	if r.err != nil {
		return 0, r.err
	}

	return int64(len(r.matching(filter))), nil
}

func (r *memoryRepository) FindOne(_ context.Context, key entity.WeaponKey) (*entity.WeaponListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.listings[key]
	if !ok {
		return nil, domain.NewError(errcodes.WeaponNotFound, "weapon listing not found")
	}

	listing := stored.listing

	return &listing, nil
}

func (r *memoryRepository) ReplaceOrInsert(_ context.Context, listing *entity.WeaponListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}

	stored, ok := r.listings[listing.Key()]
	if !ok {
		r.seq++
		stored.seq = r.seq
	}

	stored.listing = *listing
	r.listings[listing.Key()] = stored

	return nil
}

func (r *memoryRepository) InsertSale(_ context.Context, sale *entity.WeaponSale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.CreatedAt = time.Now()
	r.sales = append(r.sales, *sale)

	return nil
}

func (r *memoryRepository) RemoveOne(_ context.Context, key entity.WeaponKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listings, key)

	return nil
}

func (r *memoryRepository) RemoveBySeller(_ context.Context, sellerAddress string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, stored := range r.listings {
		if stored.listing.SellerAddress == sellerAddress {
			delete(r.listings, key)
		}
	}

	return nil
}

func (r *memoryRepository) calls() (find, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findCalls, r.countCalls
}

func (r *memoryRepository) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listings)
}

func (r *memoryRepository) matching(filter value.Filter) []storedListing {
	var result []storedListing

	for _, stored := range r.listings {
		if matches(stored.listing, filter) {
			result = append(result, stored)
		}
	}

	return result
}

func matches(l entity.WeaponListing, f value.Filter) bool {
	switch {
	case l.Network != f.Network:
		return false
	case f.WeaponElement != nil && l.WeaponElement != *f.WeaponElement:
		return false
	case f.SellerAddress != nil && l.SellerAddress != *f.SellerAddress:
		return false
	case f.BuyerAddress == nil && l.BuyerAddress != nil:
		return false
	case f.BuyerAddress != nil && (l.BuyerAddress == nil || *l.BuyerAddress != *f.BuyerAddress):
		return false
	case f.WeaponStars.Gte != nil && l.WeaponStars < *f.WeaponStars.Gte:
		return false
	case f.WeaponStars.Lte != nil && l.WeaponStars > *f.WeaponStars.Lte:
		return false
	case f.Price.Gte != nil && l.Price.LessThan(*f.Price.Gte):
		return false
	case f.Price.Lte != nil && l.Price.GreaterThan(*f.Price.Lte):
		return false
	}

	return true
}

func compareField(a, b entity.WeaponListing, field string) int {
	switch field {
	case "timestamp":
		return cmp.Compare(a.Timestamp, b.Timestamp)
	case "price":
		return a.Price.Cmp(b.Price)
	case "weaponStars":
		return cmp.Compare(a.WeaponStars, b.WeaponStars)
	case "weaponId":
		return cmp.Compare(a.WeaponID, b.WeaponID)
	default:
		return 0
	}
}

var errStorage = errors.New("connection refused")
