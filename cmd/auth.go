package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/vidsum/internal/session"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates an account with the identity provider and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	confirm := cmd.String("confirm")

	if err := session.ValidatePassword(password, confirm); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	r.logger.Info("registering account", "email", email)

	user, err := r.oracle.SignUp(ctx, email, password)
	if err != nil {
		return err
	}

	r.writePlain("✓ Account created\n")
	r.writePlain("Signed in as %s (uid: %s)\n", user.Email, user.UID)
	return nil
}

// AuthLogin signs in with email and password and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("signing in", "email", email)

	user, err := r.oracle.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	r.writePlain("✓ Signed in as %s (uid: %s)\n", user.Email, user.UID)
	return nil
}

// AuthLogout destroys the active session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w", shared.ErrNoActiveSession)
	}

	if err := r.oracle.SignOut(ctx); err != nil {
		return err
	}

	r.writePlain("✓ Signed out\n")
	return nil
}

// AuthWhoami prints the current signed-in user.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	user := r.oracle.CurrentUser()
	if user == nil {
		return fmt.Errorf("%w", shared.ErrNoActiveSession)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"uid":            user.UID,
			"email":          user.Email,
			"email_verified": user.EmailVerified,
		}, true)
	}

	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("UID: %s\n", user.UID)
	if user.EmailVerified {
		r.writePlain("Verified: ✓\n")
	} else {
		r.writePlain("Verified: ✗\n")
	}
	return nil
}

// AuthVerify asks the backend to verify the bearer token and prints the decoded claims.
func (r *Runner) AuthVerify(ctx context.Context, cmd *cli.Command) error {
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w", shared.ErrNotAuthenticated)
	}

	r.logger.Info("verifying token with backend")

	claims, err := r.backend.VerifyAuth(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(claims, true)
	}

	r.writePlainHeader("Token Verified")
	r.writePlain("UID: %s\n", claims.UID)
	r.writePlain("Email: %s\n", claims.Email)
	r.writePlain("Email verified: %t\n", claims.EmailVerified)
	r.writePlain("Auth time: %s\n", time.Unix(claims.AuthTime, 0).Local().Format(time.RFC1123))
	return nil
}
