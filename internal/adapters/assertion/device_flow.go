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

const defaultDeviceTimeout = 10 * time.Minute

var ErrDeviceFlowTimeout = errors.New("timed out waiting for device authorization")

// DeviceFlow runs the OAuth device authorization grant for terminals
// without a browser.
type DeviceFlow struct {
	Provider ProviderSettings
	Timeout  time.Duration
	Out      io.Writer
}

var _ ports.AssertionProvider = (*DeviceFlow)(nil)

func (f *DeviceFlow) Assertion(ctx context.Context) (string, error) {
	config, err := f.Provider.discover(ctx)
	if err != nil {
		return "", err
	}
	if config.Endpoint.DeviceAuthURL == "" {
		return "", errors.New("identity provider does not advertise a device authorization endpoint")
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultDeviceTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientCtx := f.Provider.withClient(ctx)

	auth, err := config.DeviceAuth(clientCtx)
	if err != nil {
		return "", fmt.Errorf("request device code: %w", err)
	}

	if f.Out != nil {
		verificationURL := auth.VerificationURI
		if auth.VerificationURIComplete != "" {
			verificationURL = auth.VerificationURIComplete
		}
		_, _ = fmt.Fprintf(f.Out, "Visit %s and enter code %s\n", verificationURL, auth.UserCode)
	}

	token, err := config.DeviceAccessToken(clientCtx, auth)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrDeviceFlowTimeout
		}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "expired_token" {
			return "", ErrDeviceFlowTimeout
		}
		return "", mapCanceled(fmt.Errorf("poll device token: %w", err))
	}

	return assertionFromToken(token)
}
