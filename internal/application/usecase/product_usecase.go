package usecase

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/domain"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
	"github.com/jhoicas/panaderia-demo/pkg/money"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad además se
// muta como efecto de la creación de ventas (paquete sales).
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// List lista productos; onlyActive filtra la vitrina pública y search filtra
// por nombre/descripción sin distinguir mayúsculas ni tildes.
func (uc *ProductUseCase) List(onlyActive bool, search string) []dto.ProductResponse {
	needle := foldForSearch(search)
	items := make([]dto.ProductResponse, 0)
	for _, p := range uc.repo.List() {
		if onlyActive && !p.Active {
			continue
		}
		if needle != "" &&
			!strings.Contains(foldForSearch(p.Name), needle) &&
			!strings.Contains(foldForSearch(p.Description), needle) {
			continue
		}
		items = append(items, *toProductResponse(&p))
	}
	return items
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) *dto.ProductResponse {
	return toProductResponse(uc.repo.GetByID(id))
}

// Upsert funde el parche campo a campo sobre el registro existente (si el id
// viene y calza) refrescando updated_at, o crea uno nuevo con id = max+1 y
// valores por defecto (categoría "other", activo, precio y cantidad cero).
func (uc *ProductUseCase) Upsert(in dto.UpsertProductRequest) (*dto.ProductResponse, error) {
	if in.Category != nil && !validCategory(*in.Category) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Product
	err := uc.tx.Run(func() error {
		products := uc.repo.List()
		now := time.Now()

		idx := -1
		if in.ID != nil {
			for i := range products {
				if products[i].ID == *in.ID {
					idx = i
					break
				}
			}
		}

		if idx >= 0 {
			p := &products[idx]
			applyPatch(p, in)
			p.UpdatedAt = now
			result = p
		} else {
			p := entity.Product{
				ID:        nextID(products),
				Category:  entity.CategoryOther,
				Active:    true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			applyPatch(&p, in)
			products = append(products, p)
			result = &products[len(products)-1]
		}
		return uc.repo.Replace(products)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(result), nil
}

// Delete elimina el producto si existe; un id ausente es un no-op.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.tx.Run(func() error {
		products := uc.repo.List()
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(products) {
			return nil // no estaba: nada que escribir
		}
		return uc.repo.Replace(kept)
	})
}

// nextID asigna ids monotónicos: max existente + 1 (1 si no hay productos).
func nextID(products []entity.Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func applyPatch(p *entity.Product, in dto.UpsertProductRequest) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.PriceCents = money.ParseToCents(*in.Price)
	}
	if in.Cost != nil {
		c := money.ParseToCents(*in.Cost)
		p.CostCents = &c
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.ExpiresAt != nil {
		p.ExpiresAt = in.ExpiresAt
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
}

func validCategory(c string) bool {
	switch c {
	case entity.CategoryBread, entity.CategoryCakes, entity.CategorySweets, entity.CategoryOther:
		return true
	}
	return false
}

// foldForSearch normaliza para búsqueda: minúsculas y sin marcas diacríticas
// ("Café" y "cafe" deben calzar).
func foldForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Price:       money.FormatCents(p.PriceCents),
		CostCents:   p.CostCents,
		Quantity:    p.Quantity,
		ExpiresAt:   p.ExpiresAt,
		Category:    p.Category,
		Active:      p.Active,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
