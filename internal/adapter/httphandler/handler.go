package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lumelle/catalog-fixture/internal/core/domain"
	"github.com/lumelle/catalog-fixture/internal/core/port"
)

// GET /v1/products?category=&readyToShip=&tags=a,b&featured=&priceLt=&offset=&limit= (200 OK, 400 Bad request)
// GET /v1/products/{id} (200 OK, 404 Not found)

type ProductsHandler struct {
	pReader port.ProductsReader
}

func RegisterProducts(mux *http.ServeMux, pReader port.ProductsReader) {
	h := ProductsHandler{pReader}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProductByID)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	f, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Warn("rejected product filter", "err", err)
		return
	}

	ps, err := h.pReader.ListProducts(r.Context(), f)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		log.Error("failed to list products", "err", err)
		return
	}

	writeJSON(w, log, h.toResponse(ps))
}

func (h ProductsHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProductByID"
	log := slog.With("op", op)

	id := r.PathValue("id")

	p, err := h.pReader.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get product", http.StatusInternalServerError)
		log.Error("failed to get product", "err", err, "id", id)
		return
	}

	writeJSON(w, log, h.toProduct(p))
}

// parseFilter maps the query string onto a domain filter. Unparseable
// boolean and numeric values are rejected here; non-finite priceLt values
// parse fine and are the catalog's to ignore. Empty tag segments from
// doubled or trailing commas are dropped, no record could contain them.
func parseFilter(q url.Values) (domain.ProductFilter, error) {
	var f domain.ProductFilter

	f.Category = q.Get("category")

	if v := q.Get("readyToShip"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("invalid readyToShip value %q", v)
		}
		f.ReadyToShip = &b
	}

	if v := q.Get("tags"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	if v := q.Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("invalid featured value %q", v)
		}
		f.Featured = &b
	}

	if v := q.Get("priceLt"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("invalid priceLt value %q", v)
		}
		f.PriceLt = &n
	}

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("invalid offset value %q", v)
		}
		f.Offset = n
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("invalid limit value %q", v)
		}
		f.Limit = &n
	}

	return f, nil
}

func (h ProductsHandler) toResponse(ps []domain.Product) []Product {
	rs := make([]Product, len(ps))
	for i, p := range ps {
		rs[i] = h.toProduct(p)
	}
	return rs
}

func (ProductsHandler) toProduct(p domain.Product) Product {
	return Product{
		ID:               p.ID,
		Title:            p.Title,
		Price:            p.Price,
		Currency:         p.Currency,
		ImageURL:         p.ImageURL,
		Category:         p.Category,
		ReadyToShip:      p.ReadyToShip,
		Tags:             p.Tags,
		ShippingPromise:  p.ShippingPromise,
		Badges:           p.Badges,
		FeaturedInWidget: p.FeaturedInWidget,
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
