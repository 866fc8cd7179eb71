package usecase

import (
	"errors"
	"fmt"
)

// 画面に出すメッセージ
const (
	MsgPasswordsDoNotMatch = "Passwords do not match"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgInvalidRole         = "Please choose a role: vendor or supplier"
	MsgUserAlreadyExists   = "User already registered"
	MsgInvalidCredentials  = "Invalid login credentials"
	MsgEmailNotConfirmed   = "Email not confirmed"
	MsgRegisterFailed      = "Failed to register. Please try again."
	MsgLoginFailed         = "Failed to sign in. Please try again."
	MsgProfileFailed       = "Failed to save profile. Please try again."
	MsgInvalidConfirmation = "Invalid or expired confirmation link"
	MsgSaveProductFailed   = "Failed to save product. Please try again."
	MsgDeleteProductFailed = "Failed to delete product. Please try again."
	MsgUpdateStatusFailed  = "Failed to update order status. Please try again."
	MsgPlaceOrderFailed    = "Failed to place order. Please try again."
	MsgCartEmpty           = "cart is empty"
	MsgCheckoutInProgress  = "checkout already in progress"
	MsgInvalidTransition   = "invalid status transition"
	MsgStatusChanged       = "order status has changed. Please reload."
	MsgProductNotFound     = "product not found"
	MsgOrderNotFound       = "order not found"
	MsgProfileNotFound     = "profile not found"
	MsgProductOutOfStock   = "product is out of stock"
	MsgUnauthorized        = "unauthorized"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
