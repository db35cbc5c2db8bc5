package svproduct

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/modules/mdproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/repo/mocks"
)

type fixedID int64

func (f fixedID) NextID() int64 { return int64(f) }

func TestCreateProduct(t *testing.T) {
	repo := mocks.NewProductRepository(t)
	svc := NewProductService(mdproduct.NewProductModule(repo), fixedID(42))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *etproduct.Product) bool {
		return p.ID == 42 && p.SKU == "CAC-1"
	})).Return(nil)

	p, err := svc.CreateProduct(context.Background(), ProductInput{
		SKU:    " CAC-1 ",
		Name:   "Cacao 1kg",
		Price:  decimal.NewFromInt(1500),
		Weight: decimal.NewFromInt(1),
		Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cacao 1kg", p.Name)
}

func TestCreateProduct_Invalid(t *testing.T) {
	repo := mocks.NewProductRepository(t)
	svc := NewProductService(mdproduct.NewProductModule(repo), fixedID(1))

	_, err := svc.CreateProduct(context.Background(), ProductInput{SKU: "X", Name: "X", Weight: decimal.NewFromInt(-2)})
	assert.ErrorIs(t, err, etproduct.ErrNegativeAttribute)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := mocks.NewProductRepository(t)
	svc := NewProductService(mdproduct.NewProductModule(repo), fixedID(1))
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, fmt.Errorf("%w: id=9", etproduct.ErrProductNotFound))

	_, err := svc.GetProduct(context.Background(), 9)
	assert.ErrorIs(t, err, etproduct.ErrProductNotFound)
}
