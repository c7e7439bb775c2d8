package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-resume-builder/internal/core/auth"
	"go-resume-builder/internal/domain"
	httpez "go-resume-builder/internal/transport/http/ez"
	"go-resume-builder/pkg/utils"
)

// ---------- 动作注册：/auth/register + /auth/login + /me ----------

type userOut struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func mountAuthActions(api, authUser *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer) {
	// 公共分组（无需登录）
	ezPublic := httpez.New(api)

	// /auth/register：邮箱唯一，成功即发 JWT
	type registerIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name"     binding:"omitempty,max=64"`
	}
	type authOut struct {
		Token string  `json:"token"`
		User  userOut `json:"user"`
	}
	httpez.RegisterAction[registerIn, authOut](ezPublic, db, httpez.Action[registerIn, authOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *registerIn) (authOut, error) {
			email := strings.ToLower(strings.TrimSpace(in.Email))
			name := strings.TrimSpace(in.Name)
			if name == "" {
				if at := strings.IndexByte(email, '@'); at > 0 {
					name = email[:at]
				} else {
					name = "user"
				}
			}

			u := domain.User{
				ID:           utils.NewID(),
				Email:        email,
				Name:         name,
				PasswordHash: utils.HashPassword(in.Password),
				Role:         "user",
			}
			if e := tx.Create(&u).Error; e != nil {
				if isDupKey(e) {
					return authOut{}, httpez.BadRequest("email already registered")
				}
				return authOut{}, httpez.Internal("register failed", e)
			}
			tok, e := jwter.Issue(u.ID, u.Role)
			if e != nil || tok == "" {
				return authOut{}, httpez.Internal("issue token failed", e)
			}
			return authOut{Token: tok, User: toUserOut(&u)}, nil
		},
	})

	// /auth/login：凭据不对一律 invalid credentials，不区分原因
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	httpez.RegisterAction[loginIn, authOut](ezPublic, db, httpez.Action[loginIn, authOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (authOut, error) {
			email := strings.ToLower(strings.TrimSpace(in.Email))

			var u domain.User
			err := tx.Where("email = ?", email).First(&u).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return authOut{}, httpez.Unauthorized("invalid credentials")
			case err != nil:
				return authOut{}, httpez.Internal("db error", err)
			}
			if !utils.CheckPassword(in.Password, u.PasswordHash) {
				return authOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, e := jwter.Issue(u.ID, u.Role)
			if e != nil || tok == "" {
				return authOut{}, httpez.Internal("issue token failed", e)
			}
			return authOut{Token: tok, User: toUserOut(&u)}, nil
		},
	})

	// 鉴权分组（需要登录）
	ezAuth := httpez.New(authUser)

	httpez.RegisterAction[struct{}, userOut](ezAuth, db, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (userOut, error) {
			uid := c.GetString("userId")
			var u domain.User
			if err := tx.Where("id = ?", uid).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return userOut{}, httpez.NotFound("user not found")
				}
				return userOut{}, httpez.Internal("db error", err)
			}
			return toUserOut(&u), nil
		},
	})
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动版本差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
