package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ebay_pricer/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Post("/quotes", handler(s.postV1Quotes))
			r.Post("/minimum-price", handler(s.postV1MinimumPrice))
			r.Get("/exchange-rate", handler(s.getV1ExchangeRate))

			r.Route("/calculations", func(r chi.Router) {
				r.Post("/", handler(s.postV1Calculations))
				r.Get("/", handler(s.getV1Calculations))
				r.Get("/{id}", handler(s.getV1Calculation))
				r.Delete("/{id}", handler(s.deleteV1Calculation))
			})
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
