package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gurneepeptides/storefront-backend/api/responses"
	"github.com/gurneepeptides/storefront-backend/api/validators"
	"github.com/gurneepeptides/storefront-backend/internal/catalog"
	"github.com/gurneepeptides/storefront-backend/internal/products"
	"github.com/gurneepeptides/storefront-backend/internal/settings"
	pkgerrors "github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// ProductsList serves the normalized public catalog: options rebuilt from the
// base price, promo applied, boilerplate attached.
func ProductsList(productSvc *products.Service, settingsSvc *settings.Service, bp catalog.Boilerplate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := productSvc.GetAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		doc, err := settingsSvc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		normalized := catalog.Normalize(items, doc.QuantityDiscounts, doc.Promo.PromoConfig(), bp)
		responses.WriteSuccess(w, map[string]any{"items": normalized})
	}
}

// ProductDetail serves one normalized product by id.
func ProductDetail(productSvc *products.Service, settingsSvc *settings.Service, bp catalog.Boilerplate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, id)
		}
		item, err := productSvc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		doc, err := settingsSvc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		normalized := catalog.Normalize([]products.Product{*item}, doc.QuantityDiscounts, doc.Promo.PromoConfig(), bp)
		responses.WriteSuccess(w, map[string]any{"item": normalized[0]})
	}
}

type bulkUpdateRequest struct {
	Updates []products.Patch `json:"updates" validate:"required"`
}

// AdminProductsBulk applies field-level patches to many products at once.
func AdminProductsBulk(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bulkUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applied, err := svc.ApplyPatches(r.Context(), body.Updates)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"updated": applied})
	}
}

type priceUpdateRequest struct {
	Prices map[string]json.RawMessage `json:"prices" validate:"required"`
}

// AdminProductPrices bulk-updates base prices by product id.
func AdminProductPrices(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body priceUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdatePrices(r.Context(), body.Prices)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"changed": changed})
	}
}

// AdminProductsShape reports the persisted document layout, for diagnosing
// bare-array versus wrapper documents after an import.
func AdminProductsShape(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := svc.Shape(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, info)
	}
}
