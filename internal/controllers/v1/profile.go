package v1

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// maxAvatarSize is the upload limit for avatar images.
const maxAvatarSize = 2 << 20

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)

	r.OPTIONS("/avatar", httputil.OptionsPost)
	r.POST("/avatar", UploadAvatar)
}

// @Summary		Get profile
// @Description	Returns the profile and preferences of the authenticated user
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Security		BearerAuth
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.ProfileForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Update profile
// @Description	Replaces the profile and preferences with the submitted set
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Security		BearerAuth
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	var editable ProfileEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	if err := validatePreferences(editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	profile, err := models.ProfileForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	editable.apply(&profile)
	if err := models.DB.Save(&profile).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Upload avatar
// @Description	Stores an avatar image (PNG or JPEG, at most 2 MiB) and records its public URL on the profile
// @Tags			Profile
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Param			file	formData	file	true	"Avatar image"
// @Security		BearerAuth
// @Router			/v1/profile/avatar [post]
func UploadAvatar(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		s := errNoFilePost.Error()
		c.JSON(status(errNoFilePost), ProfileResponse{Error: &s})
		return
	}

	if formFile.Size > maxAvatarSize {
		s := errAvatarTooLarge.Error()
		c.JSON(status(errAvatarTooLarge), ProfileResponse{Error: &s})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ProfileResponse{Error: &s})
		return
	}
	defer file.Close()

	// Sniff the content instead of trusting the file name
	head := make([]byte, 512)
	n, _ := file.Read(head)

	var extension string
	switch http.DetectContentType(head[:n]) {
	case "image/png":
		extension = ".png"
	case "image/jpeg":
		extension = ".jpg"
	default:
		s := errAvatarNotImage.Error()
		c.JSON(status(errAvatarNotImage), ProfileResponse{Error: &s})
		return
	}

	profile, err := models.ProfileForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	name := uuid.NewString() + extension
	if err := saveUpload(filepath.Join(cfg.AvatarDir, name), head[:n], file); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ProfileResponse{Error: &s})
		return
	}

	profile.AvatarURL = cfg.AvatarURL + "/" + name
	err = models.DB.Model(&profile).Select("AvatarURL").Updates(profile).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

func validatePreferences(editable ProfileEditable) error {
	if editable.Language != "" {
		if _, err := language.Parse(editable.Language); err != nil {
			return errLanguageInvalid
		}
	}

	if editable.Theme != "" && !slices.Contains([]string{"dark", "light"}, editable.Theme) {
		return errThemeInvalid
	}

	return nil
}

func saveUpload(path string, head []byte, rest io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, io.MultiReader(bytes.NewReader(head), rest))
	return err
}
