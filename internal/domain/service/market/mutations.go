package service

import (
	"context"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"

	"weapon_market/internal/domain"
	"weapon_market/internal/domain/entity"
	"weapon_market/pkg/errcodes"
)

const (
	invalidWeaponMessage = "Invalid body. Must pass price, weaponId, weaponStars, weaponElement, " +
		"stat1Element, stat1Value, timestamp, sellerAddress, network."
	invalidSellKeyMessage   = "Invalid weaponId or network."
	invalidDeleteKeyMessage = "Invalid weaponId or network"
	invalidAddressMessage   = "Invalid address."
)

// Upsert целиком заменяет лот по натуральному ключу или создаёт новый.
// Кэш не трогаем: анонимный поиск увидит изменения после истечения TTL.
func (s *MarketService) Upsert(ctx context.Context, listing entity.WeaponListing) error {
	if err := s.validate.StructCtx(ctx, listing); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("validate.StructCtx: %w", err).Error(),
			failure.WithCode(errcodes.InvalidWeapon),
			failure.WithDescription(invalidWeaponMessage),
		)
	}

	if err := s.repo.ReplaceOrInsert(ctx, &listing); err != nil {
		return fmt.Errorf("repo.ReplaceOrInsert: %w", err)
	}

	logger(ctx).Debug(
		"weapon listing saved",
		slog.String("network", listing.Network),
		slog.String("weapon-id", listing.WeaponID),
	)

	return nil
}

// MarkSold сохраняет снимок лота в журнал продаж. Сам лот не меняется.
// Отсутствующий лот не ошибка.
func (s *MarketService) MarkSold(ctx context.Context, key entity.WeaponKey) error {
	if key.IsZero() {
		return invalidKeyError(invalidSellKeyMessage)
	}

	listing, err := s.repo.FindOne(ctx, key)
	if err != nil {
		if domain.HasCode(err, errcodes.WeaponNotFound) {
			return nil
		}

		return fmt.Errorf("repo.FindOne: %w", err)
	}

	// Между чтением и вставкой лот могут удалить, снимок всё равно запишется.
	sale := entity.NewWeaponSale(*listing)

	if err = s.repo.InsertSale(ctx, &sale); err != nil {
		return fmt.Errorf("repo.InsertSale: %w", err)
	}

	logger(ctx).Info(
		"weapon sale recorded",
		slog.String("network", key.Network),
		slog.String("weapon-id", key.WeaponID),
	)

	return nil
}

func (s *MarketService) Delete(ctx context.Context, key entity.WeaponKey) error {
	if key.IsZero() {
		return invalidKeyError(invalidDeleteKeyMessage)
	}

	if err := s.repo.RemoveOne(ctx, key); err != nil {
		return fmt.Errorf("repo.RemoveOne: %w", err)
	}

	return nil
}

// DeleteAllForSeller снимает все лоты продавца во всех сетях сразу.
func (s *MarketService) DeleteAllForSeller(ctx context.Context, sellerAddress string) error {
	if sellerAddress == "" {
		return failure.NewInvalidArgumentError(
			"empty seller address",
			failure.WithCode(errcodes.InvalidSellerAddress),
			failure.WithDescription(invalidAddressMessage),
		)
	}

	if err := s.repo.RemoveBySeller(ctx, sellerAddress); err != nil {
		return fmt.Errorf("repo.RemoveBySeller: %w", err)
	}

	logger(ctx).Info("seller listings removed", slog.String("seller-address", sellerAddress))

	return nil
}

func invalidKeyError(description string) error {
	return failure.NewInvalidArgumentError(
		"empty network or weapon id",
		failure.WithCode(errcodes.InvalidWeaponKey),
		failure.WithDescription(description),
	)
}
