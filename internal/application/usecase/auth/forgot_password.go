package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/walletwise/backend/internal/application/adapter"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// forgotPasswordMessage is always returned to prevent email enumeration.
const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

// Execute issues a reset token and emails the reset link. The response
// is identical whether or not the email is registered.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil || user == nil {
		slog.Debug("Password reset requested for unknown email", "email", input.Email)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "user_id", user.ID, "error", err)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailSender != nil {
		result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      user.Email,
			Name:    user.Name,
			Subject: "Reset your WalletWise password",
			HTML:    passwordResetHTML(user.Name, resetURL),
			Text:    passwordResetText(user.Name, resetURL),
		})
		if err != nil {
			slog.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
		} else {
			slog.Info("Password reset email sent", "user_id", user.ID, "provider_id", result.ProviderID)
		}
	} else {
		// Development fallback when no email provider is configured.
		slog.Info("Password reset token generated (email sender not configured)",
			"user_id", user.ID,
			"reset_url", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
}

func passwordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>We received a request to reset your WalletWise password.</p><p><a href="%s">Reset your password</a></p><p>The link expires in one hour. If you did not request this, you can ignore this email.</p>`,
		name, resetURL,
	)
}

func passwordResetText(name, resetURL string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your WalletWise password.\n\nReset it here: %s\n\nThe link expires in one hour. If you did not request this, you can ignore this email.\n",
		name, resetURL,
	)
}
