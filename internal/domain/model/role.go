package model

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

var ErrInvalidRole = errors.New("invalid role")

// vendor / supplier 以外は受け付けない
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleVendor:
		return RoleVendor, nil
	case RoleSupplier:
		return RoleSupplier, nil
	default:
		return "", ErrInvalidRole
	}
}

// ログイン後の遷移先
func (r Role) DashboardPath() string {
	switch r {
	case RoleVendor:
		return "/vendor/dashboard"
	case RoleSupplier:
		return "/supplier/dashboard"
	default:
		return CompleteProfilePath
	}
}

const (
	LoginPath           = "/auth/login"
	VerifyEmailPath     = "/auth/verify-email"
	CompleteProfilePath = "/auth/complete-profile"
	HomePath            = "/"
)
