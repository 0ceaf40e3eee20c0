package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// ProfileHandler exposes the profile directory.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

type updateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=client technician admin"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     p.Role,
	}
}

// List handles GET /v1/profiles. Staff only.
//
// @Summary      List all profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  profileResponse
// @Router       /v1/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = toProfileResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/profiles/:id.
//
// @Summary      Get a profile by id
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Me handles GET /v1/profiles/me. When the directory has no row for the
// authenticated user it falls back to the token claims instead of failing,
// so a valid session always resolves to an identity.
//
// @Summary      Current user's profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Router       /v1/profiles/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), caller.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			email, _ := c.Get("email").(string)
			return c.JSON(http.StatusOK, profileResponse{
				ID:    caller.UserID,
				Email: email,
				Role:  caller.Role,
			})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /v1/profiles/:id.
//
// @Summary      Edit a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Profile id"
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  profileResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateProfileInput{
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /v1/profiles/:id. Admin only.
//
// @Summary      Remove a profile
// @Tags         profiles
// @Security     BearerAuth
// @Param        id  path  string  true  "Profile id"
// @Success      204  "profile removed"
// @Failure      403  {object}  errorResponse
// @Router       /v1/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
