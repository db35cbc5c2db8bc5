package product

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/request"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/services/svproduct"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// ProductService 商品服务（svproduct.ProductService 实现）
type ProductService interface {
	CreateProduct(ctx context.Context, in svproduct.ProductInput) (*etproduct.Product, error)
	GetProduct(ctx context.Context, productID int64) (*etproduct.Product, error)
}

// ProductHandler 商品 HTTP 处理器
type ProductHandler struct {
	productService ProductService
}

// NewProductHandler 创建商品处理器
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create POST /api/v1/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.ToInput())
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Created(c, response.FromProductEntity(product))
}

// Get GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product_id")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromProductEntity(product))
}
