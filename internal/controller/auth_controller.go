package controller

import (
	"time"

	"skillmap_backend/internal/config"
	"skillmap_backend/internal/service"
	"skillmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 模拟登录：任何姓名与邮箱都会得到会话令牌，不校验密码
type AuthController struct {
	Secret     string
	Expiration time.Duration
}

func NewAuthController(cfg *config.JWTConfig) *AuthController {
	return &AuthController{Secret: cfg.Secret, Expiration: cfg.ExpireTime}
}

// @Summary 登录
// @Description 模拟登录，签发会话令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "用户信息"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := util.GenerateJWT(req.Name, req.Email, c.Secret, c.Expiration)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"name":  req.Name,
			"email": req.Email,
		},
	})
}

// @Summary 当前用户
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, gin.H{
		"name":  user.Name,
		"email": user.Email,
	})
}
