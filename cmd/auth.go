package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthSignin exchanges credentials for a session and persists it locally.
func (r *Runner) AuthSignin(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}
	if err := r.config.ValidateBackend(); err != nil {
		return err
	}

	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Infof("signing in as %v", email)

	session, err := r.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	if err := r.sessions.Save(session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return r.writePlain("✓ Signed in as %s\n", session.Name)
}

// AuthSignup registers a new account. It does not sign the user in; the
// backend only issues tokens from signin.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	if err := r.config.ValidateBackend(); err != nil {
		return err
	}

	name := cmd.String("name")
	email := cmd.String("email")
	password := cmd.String("password")

	message, err := r.auth.SignUp(ctx, name, email, password)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Account created"
	}

	r.writePlain("✓ %s\n", message)
	return r.writePlain("Run 'mvx auth signin' to start a session.\n")
}

// AuthSignout clears the persisted session.
func (r *Runner) AuthSignout(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}

	if _, ok := r.sessions.Load(); !ok {
		return r.writePlain("No active session.\n")
	}

	if err := r.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.engine.Reset()

	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows whether a session is persisted and who owns it.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}

	session, ok := r.sessions.Load()
	if !ok {
		r.writePlain("✗ Not signed in\n")
		return r.writePlain("Run 'mvx auth signin' to start a session.\n")
	}

	r.writePlain("✓ Signed in\n")
	r.writePlain("Name:  %s\n", session.Name)
	r.writePlain("Email: %s\n", session.Email)

	// The token may have been revoked server-side since it was saved; a
	// cheap fetch confirms it still works.
	if _, err := r.remote.FetchAll(ctx, session.Token); err != nil {
		if errors.Is(err, shared.ErrSessionExpired) {
			r.writePlain("Token: ✗ expired, sign in again\n")
			return nil
		}
		r.writePlain("Token: ? could not verify (%v)\n", err)
		return nil
	}

	return r.writePlain("Token: ✓ valid\n")
}
