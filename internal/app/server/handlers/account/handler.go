package account

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/request"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/apimodel/response"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etaccount"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/ginx"
)

// AccountService 账号服务（svaccount.AccountService 实现）
type AccountService interface {
	CreateAccount(ctx context.Context, name, email, phone string) (*etaccount.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error)
}

// AccountHandler 顾客账号：注册与查询，手机号用于移动支付
type AccountHandler struct {
	accountService AccountService
}

func NewAccountHandler(accountService AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Create POST /api/v1/accounts
// 201 创建成功；400 参数错误；409 邮箱已存在
func (h *AccountHandler) Create(c *gin.Context) {
	var req request.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Created(c, response.FromAccountEntity(account))
}

// Get GET /api/v1/accounts/:id
func (h *AccountHandler) Get(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		ginx.BadRequest(c, "invalid account_id")
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		ginx.Fail(c, err)
		return
	}
	ginx.Success(c, response.FromAccountEntity(account))
}
