package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/breadcraft/backoffice/internal/domain"
	"github.com/breadcraft/backoffice/internal/domain/entity"
	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// ProductUseCase operaciones CRUD sobre productos terminados.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput datos de alta de un producto.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Create da de alta un producto.
func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Price.LessThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, "")
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(domain.CodeProductNotFound, id)
	}
	return product, nil
}

// List lista productos.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// UpdateProductInput datos editables de un producto.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Update modifica nombre, descripción y precio. El precio nuevo aplica a
// ventas futuras; las líneas ya vendidas conservan su precio congelado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(domain.CodeProductNotFound, id)
	}
	if input.Name == "" || input.Price.LessThan(decimal.Zero) {
		return nil, domain.NewInvalidInput(domain.CodeInvalidItems, id)
	}
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
