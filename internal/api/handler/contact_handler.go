package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// ContactHandler covers the public contact form and the admin inbox.
type ContactHandler struct {
	contact ports.ContactService
}

func NewContactHandler(contact ports.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send handles POST /contact. Public: visitors submit inquiries without an
// account.
//
// @Summary      Submit a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Inquiry"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.contact.Send(c.Request().Context(), domain.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Message: status})
}

// Inbox handles GET /contact/messages for the admin settings page.
//
// @Summary      List submitted inquiries
// @Tags         contact
// @Produce      json
// @Success      200  {array}  domain.ContactMessage
// @Router       /contact/messages [get]
func (h *ContactHandler) Inbox(c echo.Context) error {
	messages, err := h.contact.Inbox(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
