package assertion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/tschedule/internal/ports"
	"golang.org/x/oauth2"
)

const defaultBrowserTimeout = 5 * time.Minute

// BrowserFlow runs the authorization code grant with PKCE through a loopback
// redirect and returns the resulting id_token.
type BrowserFlow struct {
	Provider   ProviderSettings
	ListenAddr string
	Timeout    time.Duration
	// OpenURL opens the authorization page. When nil the URL is only printed.
	OpenURL func(url string) error
	Out     io.Writer
}

var _ ports.AssertionProvider = (*BrowserFlow)(nil)

func (f *BrowserFlow) Assertion(ctx context.Context) (string, error) {
	config, err := f.Provider.discover(ctx)
	if err != nil {
		return "", err
	}

	state, err := NewState()
	if err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}

	callback, err := StartCallbackServer(f.ListenAddr, state)
	if err != nil {
		return "", err
	}
	defer func() { _ = callback.Close() }()

	config.RedirectURL = callback.RedirectURI()
	verifier := oauth2.GenerateVerifier()
	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.S256ChallengeOption(verifier))

	if f.Out != nil {
		_, _ = fmt.Fprintf(f.Out, "Open this URL to sign in:\n%s\n", authURL)
	}
	if f.OpenURL != nil {
		if err := f.OpenURL(authURL); err != nil && f.Out != nil {
			_, _ = fmt.Fprintf(f.Out, "Could not open a browser automatically: %v\n", err)
		}
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultBrowserTimeout
	}

	code, err := callback.WaitForCode(ctx, timeout)
	if err != nil {
		return "", mapCanceled(err)
	}

	token, err := config.Exchange(f.Provider.withClient(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	return assertionFromToken(token)
}

// mapCanceled folds user-driven aborts into ports.ErrAssertionCanceled.
func mapCanceled(err error) error {
	var callbackErr *CallbackError
	if errors.As(err, &callbackErr) && callbackErr.Code == "access_denied" {
		return fmt.Errorf("%w: %w", ports.ErrAssertionCanceled, err)
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "access_denied" {
		return fmt.Errorf("%w: %w", ports.ErrAssertionCanceled, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ports.ErrAssertionCanceled, err)
	}
	return err
}
