package account

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest - POST /user body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
	)
}

// TokenResponse - credential trả về cho registered account
type TokenResponse struct {
	Token string `json:"token"`
}
