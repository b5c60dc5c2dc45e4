package apiUsers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/adityarizki/amora/internal/routes/api/respond"
	profileUseCase "github.com/adityarizki/amora/internal/usecase/profile"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const (
	maxPhotoCount = 6
	maxPhotoBytes = 5 << 20
)

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func GetMeHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	user, err := profileCase.GetProfile(c.Request().Context(), respond.CurrentUserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, user)
}

func UpdateMeHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	reqBody, err := http_util.Decode[entity.UpdateProfileRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	user, err := profileCase.UpdateProfile(c.Request().Context(), respond.CurrentUserID(c), reqBody)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, user)
}

// UploadPhotosHandler accepts a multipart form with up to six image files
// under the "photos" field, stores them under uploadsDir with generated
// names and appends their public paths to the profile.
func UploadPhotosHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase, uploadsDir string) error {
	form, err := c.MultipartForm()
	if err != nil {
		return http_util.BadRequest(c, "invalid multipart form")
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return http_util.BadRequest(c, "no photos provided")
	}
	if len(files) > maxPhotoCount {
		return http_util.BadRequest(c, fmt.Sprintf("at most %d photos per upload", maxPhotoCount))
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return respond.Error(c, err)
	}

	paths := []string{}
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedPhotoExt[ext] {
			return http_util.BadRequest(c, "unsupported file type")
		}
		if file.Size > maxPhotoBytes {
			return http_util.BadRequest(c, "photo exceeds 5MB limit")
		}

		src, err := file.Open()
		if err != nil {
			return respond.Error(c, err)
		}

		name := uuid.NewString() + ext
		dst, err := os.Create(filepath.Join(uploadsDir, name))
		if err != nil {
			src.Close()
			return respond.Error(c, err)
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return respond.Error(c, err)
		}

		paths = append(paths, "/uploads/"+name)
	}

	user, err := profileCase.AddPhotos(c.Request().Context(), respond.CurrentUserID(c), paths)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, user)
}

// DeletePhotoHandler removes a photo referenced either by ?index= or
// ?path=.
func DeletePhotoHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	var index *int
	if raw := c.QueryParam("index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return http_util.BadRequest(c, "invalid index")
		}
		index = &parsed
	}
	path := c.QueryParam("path")

	if index == nil && path == "" {
		return http_util.BadRequest(c, "index or path is required")
	}

	user, err := profileCase.RemovePhoto(c.Request().Context(), respond.CurrentUserID(c), index, path)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, user)
}

func QuestionOptionsHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	return http_util.Encode(c, http.StatusOK, profileCase.QuestionOptions())
}

func SubmitQuestionsHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	reqBody, err := http_util.Decode[entity.SubmitQuestionsRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	user, err := profileCase.SubmitQuestions(c.Request().Context(), respond.CurrentUserID(c), reqBody)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, user)
}
