package transport

import (
	"net/http"

	"shelfsmart/internal/middleware"
	"shelfsmart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddProductRequest represents the add-product payload. The expiration date
// is a free dd/mm/yyyy string and deliberately not format-validated: items
// with unreadable dates are stored and simply never raise alerts.
type AddProductRequest struct {
	Name           string   `json:"name" validate:"required"`
	Brand          string   `json:"brand"`
	Manufacturer   string   `json:"manufacturer"`
	Category       string   `json:"category"`
	Barcode        string   `json:"barcode"`
	ExpirationDate string   `json:"expiration_date"`
	Units          int      `json:"units" validate:"required,min=1"`
	QuantityValue  *float64 `json:"quantity_value"`
	QuantityUnit   *string  `json:"quantity_unit"`
	PhotoURL       *string  `json:"photo_url"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	Name           *string  `json:"name"`
	Brand          *string  `json:"brand"`
	Manufacturer   *string  `json:"manufacturer"`
	Category       *string  `json:"category"`
	Barcode        *string  `json:"barcode"`
	ExpirationDate *string  `json:"expiration_date"`
	Units          *int     `json:"units" validate:"omitempty,min=1"`
	QuantityValue  *float64 `json:"quantity_value"`
	QuantityUnit   *string  `json:"quantity_unit"`
	PhotoURL       *string  `json:"photo_url"`
}

// SummarizeNutritionRequest carries the raw OCR text of a nutrition label.
type SummarizeNutritionRequest struct {
	Text string `json:"text" validate:"required"`
}

// ProductHandler handles HTTP requests for inventory operations.
type ProductHandler struct {
	inventory service.InventoryService
	logger    *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(inventory service.InventoryService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{inventory: inventory, logger: logger}
}

// RegisterRoutes registers all product routes.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Get("/barcode/{code}", h.LookupBarcode)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/nutrition", h.SummarizeNutrition)
	})
}

// Add handles adding a product, merging repeat scans of the same item.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add product validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.inventory.AddProduct(r.Context(), service.AddProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		Barcode:        req.Barcode,
		ExpirationDate: req.ExpirationDate,
		Units:          req.Units,
		QuantityValue:  req.QuantityValue,
		QuantityUnit:   req.QuantityUnit,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		h.logger.Error("Failed to add product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add product")
		return
	}

	h.logger.Info("Product added", zap.String("product_id", product.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// List handles listing the full inventory.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Get handles fetching one product by id.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	product, err := h.inventory.GetProduct(r.Context(), id)
	if err != nil {
		if err == service.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Update handles a partial product update.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update product validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.inventory.UpdateProduct(r.Context(), id, service.UpdateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		Barcode:        req.Barcode,
		ExpirationDate: req.ExpirationDate,
		Units:          req.Units,
		QuantityValue:  req.QuantityValue,
		QuantityUnit:   req.QuantityUnit,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		if err == service.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to update product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete handles removing a product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.inventory.DeleteProduct(r.Context(), id); err != nil {
		if err == service.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to delete product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// LookupBarcode handles enriching a scanned barcode from the food database.
// A barcode the database does not know is a 404, and the client falls back to
// manual entry.
func (h *ProductHandler) LookupBarcode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "barcode is required")
		return
	}

	product, err := h.inventory.LookupBarcode(r.Context(), code)
	if err != nil {
		h.logger.Error("Barcode lookup failed", zap.String("barcode", code), zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "food database unavailable")
		return
	}
	if product == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "barcode not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// SummarizeNutrition handles condensing raw label text for a product.
func (h *ProductHandler) SummarizeNutrition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req SummarizeNutritionRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.inventory.SummarizeNutrition(r.Context(), id, req.Text)
	if err != nil {
		switch err {
		case service.ErrProductNotFound:
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		case service.ErrSummarizerDisabled:
			middleware.RespondWithError(w, http.StatusServiceUnavailable, "nutrition summarization is not configured")
		default:
			h.logger.Error("Nutrition summarization failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusBadGateway, "nutrition summarization failed")
		}
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}
