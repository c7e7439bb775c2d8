package router

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/repo"
	httpez "go-resume-builder/internal/transport/http/ez"
)

// 头像上传上限，内联 data URI 存库，太大拖垮聚合查询
const maxPhotoBytes = 5 << 20

// ---------- 主档：/resume + /resume/save + /resume/photo ----------

func mountResumeActions(authUser *gin.RouterGroup, db *gorm.DB) {
	resumes := repo.NewResumeRepo(db)
	ezAuth := httpez.New(authUser)

	// GET /resume：主档 + 六类子集合的完整聚合
	ezAuth.GET("/resume", func(c *gin.Context) (any, error) {
		agg, err := resumes.AggregateByUser(c, c.GetString("userId"))
		if errors.Is(err, domain.ErrNoResume) {
			return nil, httpez.NotFound("resume not found")
		}
		if err != nil {
			return nil, httpez.Internal("load resume failed", err)
		}
		return agg, nil
	})

	// POST /resume/save：upsert 主档标量字段
	type saveIn struct {
		FullName      string `json:"fullName" binding:"required"`
		Position      string `json:"position"`
		Address       string `json:"address"`
		Phone         string `json:"phone"`
		Email         string `json:"email" binding:"omitempty,email"`
		Linkedin      string `json:"linkedin"`
		Github        string `json:"github"`
		ProfileImage  string `json:"profileImage"`
		CareerSummary string `json:"careerSummary"`
	}
	httpez.POST(ezAuth, "/resume/save", func(c *gin.Context, in saveIn) (any, error) {
		saved, err := resumes.SaveInfo(c, c.GetString("userId"), &domain.Resume{
			FullName:      strings.TrimSpace(in.FullName),
			Position:      in.Position,
			Address:       in.Address,
			Phone:         in.Phone,
			Email:         in.Email,
			Linkedin:      in.Linkedin,
			Github:        in.Github,
			ProfileImage:  in.ProfileImage,
			CareerSummary: in.CareerSummary,
		})
		if err != nil {
			return nil, httpez.Internal("save resume failed", err)
		}
		return saved, nil
	})

	// DELETE /resume：整份删除，子表级联
	ezAuth.DELETE("/resume", func(c *gin.Context) (any, error) {
		err := resumes.Delete(c, c.GetString("userId"))
		if errors.Is(err, domain.ErrNoResume) {
			return nil, httpez.NotFound("resume not found")
		}
		if err != nil {
			return nil, httpez.Internal("delete resume failed", err)
		}
		return gin.H{"deleted": true}, nil
	})

	// POST /resume/photo：multipart 上传，转 data URI 存主档
	httpez.POSTFILES(ezAuth, "/resume/photo", "photo", func(c *gin.Context, files []*multipart.FileHeader) (any, error) {
		fh := files[0]
		if fh.Size > maxPhotoBytes {
			return nil, httpez.BadRequest("photo too large (max 5MB)")
		}
		dataURI, err := fileToDataURI(fh)
		if err != nil {
			return nil, httpez.BadRequest("read photo failed: " + err.Error())
		}
		if e := resumes.UpdateProfileImage(c, c.GetString("userId"), dataURI); e != nil {
			if errors.Is(e, domain.ErrNoResume) {
				return nil, httpez.NotFound("save resume info first")
			}
			return nil, httpez.Internal("update photo failed", e)
		}
		return gin.H{"profileImage": dataURI}, nil
	})
}

func fileToDataURI(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return "", err
	}
	if len(b) > maxPhotoBytes {
		return "", errors.New("photo too large")
	}
	ct := http.DetectContentType(b)
	if !strings.HasPrefix(ct, "image/") {
		return "", errors.New("not an image")
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
