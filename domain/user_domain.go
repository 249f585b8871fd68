package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister              = "user registered successfully"
	MessageSuccessLogin                 = "login success"
	MessageSuccessGetProfile            = "profile retrieved successfully"
	MessageSuccessUpdateProfile         = "profile updated successfully"
	MessageSuccessSendVerificationEmail = "verification email sent successfully"
	MessageSuccessVerifyEmail           = "email verified successfully"
	MessageSuccessForgotPassword        = "password reset email sent successfully"
	MessageSuccessResetPassword         = "password reset successfully"
	MessageSuccessUploadProfileImage    = "profile image uploaded successfully"

	MessageFailedRegister              = "failed to register user"
	MessageFailedLogin                 = "failed to login"
	MessageFailedGetProfile            = "failed to retrieve profile"
	MessageFailedUpdateProfile         = "failed to update profile"
	MessageFailedSendVerificationEmail = "failed to send verification email"
	MessageFailedVerifyEmail           = "failed to verify email"
	MessageFailedForgotPassword        = "failed to send password reset email"
	MessageFailedResetPassword         = "failed to reset password"
	MessageFailedUploadProfileImage    = "failed to upload profile image"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmailAlreadyVerified = errors.New("email already verified")
	ErrMissingProfileImage  = errors.New("no profile image provided")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone" validate:"required"`
		Address         string `json:"address" validate:"required"`
		Role            string `json:"role" validate:"required,oneof=consumer donor ngo"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  *UserProfile `json:"user"`
	}

	UserProfile struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Role     string `json:"role"`
		Bio      string `json:"bio,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
		Verified bool   `json:"verified"`
	}

	UpdateProfileRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Phone   string `json:"phone" validate:"omitempty"`
		Address string `json:"address" validate:"omitempty"`
		Bio     string `json:"bio" validate:"omitempty"`
		Image   string `json:"image" validate:"omitempty,url"`
	}

	SendVerificationEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token           string `json:"token" validate:"required"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image"`
	}
)
