package ez

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-resume-builder/internal/transport/http/response"
)

/* ================== 轻封装 ================== */

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

func (e EZ) Group() *gin.RouterGroup { return e.g }

func (e EZ) GET(path string, h func(c *gin.Context) (any, error)) {
	e.g.GET(path, func(c *gin.Context) {
		data, err := h(c)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(codeOf(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp.OK(data))
	})
}

func (e EZ) DELETE(path string, h func(c *gin.Context) (any, error)) {
	e.g.DELETE(path, func(c *gin.Context) {
		data, err := h(c)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(codeOf(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp.OK(data))
	})
}

func POST[T any](e EZ, path string, h func(c *gin.Context, in T) (any, error)) {
	e.g.POST(path, func(c *gin.Context) {
		var in T
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		data, err := h(c, in)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(codeOf(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp.OK(data))
	})
}

// POSTFILES 处理 multipart/form-data 多文件上传
func POSTFILES(e EZ, path string, fieldName string, h func(c *gin.Context, files []*multipart.FileHeader) (any, error)) {
	e.g.POST(path, func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "invalid multipart form: "+err.Error()))
			return
		}
		files := form.File[fieldName]
		if len(files) == 0 {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "no files uploaded"))
			return
		}

		data, err := h(c, files)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(codeOf(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp.OK(data))
	})
}

// POSTRAW 返回二进制（PDF 下载）。成功直接写 body，失败仍走统一错误信封。
func POSTRAW[T any](e EZ, path, contentType string, h func(c *gin.Context, in T) ([]byte, error)) {
	e.g.POST(path, func(c *gin.Context) {
		var in T
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		data, err := h(c, in)
		if err != nil {
			// 失败时不能吐半截文件，只给错误信封
			c.JSON(http.StatusOK, resp.Error(codeOf(err), err.Error()))
			return
		}
		c.Data(http.StatusOK, contentType, data)
	})
}
