package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/services"
	"github.com/dmitrijs2005/secondchance/internal/server/validation"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type registerResponse struct {
	AuthToken string `json:"authtoken"`
	Email     string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authtoken"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type updateResponse struct {
	AuthToken string `json:"authtoken"`
}

type validationErrorsResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ctx := c.Request.Context()
	session, err := h.accounts.Register(ctx, services.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			h.logger.Warn(ctx, "Email already exists", "email", req.Email)
			c.JSON(http.StatusConflict, errorResponse{Error: msgEmailTaken})
			return
		}
		h.internalError(c, err)
		return
	}

	h.logger.Info(ctx, "Registration successful for email", "email", req.Email)
	c.JSON(http.StatusCreated, registerResponse{AuthToken: session.Token, Email: req.Email})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ctx := c.Request.Context()
	session, err := h.accounts.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorNotFound):
		h.logger.Error(ctx, "User not found", "email", req.Email)
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgUserNotFound})
		return
	case errors.Is(err, common.ErrorIncorrectPassword):
		h.logger.Error(ctx, "Wrong password", "email", req.Email)
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgWrongPassword})
		return
	default:
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AuthToken: session.Token,
		UserName:  session.Account.FirstName,
		UserEmail: session.Account.Email,
	})
}

// updateProfile reads the account email from the request header and the new
// first name from the body. An empty body is validated like an empty object.
func (h *Handler) updateProfile(c *gin.Context) {
	var req validation.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badBody(c)
		return
	}

	ctx := c.Request.Context()
	if errs := h.validator.ValidateBody(&req); len(errs) > 0 {
		h.logger.Error(ctx, "Validation errors", "errors", errs)
		c.JSON(http.StatusBadRequest, validationErrorsResponse{Errors: errs})
		return
	}

	email := c.GetHeader(common.EmailHeaderName)
	session, err := h.accounts.UpdateProfile(ctx, email, req.TrimmedName())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.logger.Error(ctx, "User not found", "email", email)
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgUserNotFound})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, updateResponse{AuthToken: session.Token})
}
