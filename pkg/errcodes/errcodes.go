package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	AccessTokenInvalid  failure.ErrorCode = "AccessTokenInvalid"
	NotFound            failure.ErrorCode = "NotFound"

	// Оружие на маркете
	WeaponNotFound       failure.ErrorCode = "WeaponNotFound"       // Пары (network, weaponId) нет в базе
	InvalidWeapon        failure.ErrorCode = "InvalidWeapon"        // Не хватает обязательных полей лота
	InvalidWeaponKey     failure.ErrorCode = "InvalidWeaponKey"     // Пустой network или weaponId
	InvalidSellerAddress failure.ErrorCode = "InvalidSellerAddress" // Пустой адрес продавца
)
