package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"weapon_market/pkg/httpx/reply"
	"weapon_market/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		// unauthorized zone, авторизованные получают живые данные мимо кэша
		r.Get("/static/market/weapon", handler(s.getStaticMarketWeapon))

		r.Route("/market/weapon", func(r chi.Router) {
			r.Use(middlewarex.RequireUser)

			r.Delete("/all/{sellerAddress}", handler(s.deleteMarketWeaponAll))
			r.Put("/{network}/{weaponId}", handler(s.putMarketWeapon))
			r.Delete("/{network}/{weaponId}", handler(s.deleteMarketWeapon))
			r.Get("/{network}/{weaponId}/sell", handler(s.getMarketWeaponSell))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
