package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/profiles-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func accountIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		badRequest(c, "AccountID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateProfile handles POST /profiles
// @Summary Create profile
// @Description Create a profile with up to three photos
// @Tags profiles
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param request formData profile.ProfileRequest true "Profile data"
// @Success 200 {object} IDResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profile.ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err, "invalid request body: "+err.Error())
		return
	}

	id, err := h.profileUseCase.AddProfile(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, IDResponse{ID: id.String()})
}

// GetProfile handles GET /profiles/:account_id
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{account_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetProfileByAccountID(c.Request.Context(), accountID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /profiles
// @Summary Update profile
// @Description Replace profile fields; uploaded photos replace slots from 0 upwards
// @Tags profiles
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param request formData profile.ProfileRequest true "Profile data"
// @Success 200 {boolean} boolean
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /profiles [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profile.ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err, "invalid request body: "+err.Error())
		return
	}

	if err := h.profileUseCase.UpdateProfile(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, true)
}

// DeleteProfile handles DELETE /profiles/:account_id
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {boolean} boolean
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{account_id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), accountID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, true)
}

// SetPhotos handles POST /profiles/:account_id/photos
// @Summary Upload photos
// @Description Store 1 to 3 photos sent in the "photos" form field
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {boolean} boolean
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /profiles/{account_id}/photos [post]
func (h *ProfileHandler) SetPhotos(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		bindError(c, err, "photos must be sent as multipart/form-data")
		return
	}

	if err := h.profileUseCase.SetPhotos(c.Request.Context(), accountID, form.File["photos"]); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, true)
}

// GetPhoto handles GET /profiles/:account_id/photos/:index
// @Summary Get photo
// @Tags profiles
// @Produce image/jpeg,image/png,image/webp
// @Param account_id path string true "Account ID"
// @Param index path int true "Slot 0-2"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{account_id}/photos/{index} [get]
func (h *ProfileHandler) GetPhoto(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "Photo index must be between 0 and 2")
		return
	}

	photo, err := h.profileUseCase.GetPhoto(c.Request.Context(), accountID, index)
	if err != nil {
		writeError(c, err)
		return
	}
	defer photo.Content.Close()

	c.DataFromReader(http.StatusOK, photo.Size, photo.ContentType, photo.Content, nil)
}
