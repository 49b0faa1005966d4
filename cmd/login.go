package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tschedule/internal/adapters/assertion"
	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/spf13/cobra"
)

const assertionEnvKey = "TS_ASSERTION"

func newLoginCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to TDMU with a Google identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowserLogin(cmd, app, false)
		},
	}

	cmd.AddCommand(newLoginBrowserCmd(app), newLoginDeviceCmd(app), newLoginAssertionCmd(app))

	return cmd
}

func newLoginBrowserCmd(app *app) *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "browser",
		Short: "Sign in through the browser (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowserLogin(cmd, app, noOpen)
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Print the sign-in URL without opening a browser")

	return cmd
}

func newLoginDeviceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Sign in with a code on another device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := providerSettings(cmd.Context(), app)
			if err != nil {
				return err
			}

			return runLogin(cmd, app, &assertion.DeviceFlow{
				Provider: settings,
				Timeout:  app.cfg.OAuth.Timeout,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
}

func newLoginAssertionCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "assertion",
		Short: "Sign in with a Google ID token obtained elsewhere",
		Long:  "Exchange an existing Google ID token for a TDMU session. Pass --token, set " + assertionEnvKey + ", or use --token - to read it from stdin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value := envOrDefault(assertionEnvKey, "")
			if token == "-" {
				read, err := readAssertion(cmd.InOrStdin())
				if err != nil {
					return err
				}
				value = read
			} else if token != "" {
				value = token
			}

			return runLogin(cmd, app, assertion.Static{Value: value})
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Google ID token, or - to read from stdin")

	return cmd
}

func runBrowserLogin(cmd *cobra.Command, app *app, noOpen bool) error {
	settings, err := providerSettings(cmd.Context(), app)
	if err != nil {
		return err
	}

	flow := &assertion.BrowserFlow{
		Provider:   settings,
		ListenAddr: app.cfg.OAuth.ListenAddr,
		Timeout:    app.cfg.OAuth.Timeout,
		Out:        cmd.OutOrStdout(),
	}
	if !noOpen {
		flow.OpenURL = app.openURL
	}

	return runLogin(cmd, app, flow)
}

func runLogin(cmd *cobra.Command, app *app, provider ports.AssertionProvider) error {
	value, err := provider.Assertion(cmd.Context())
	if err != nil {
		if errors.Is(err, ports.ErrAssertionCanceled) {
			return errors.New("sign-in canceled")
		}
		return fmt.Errorf("obtain identity assertion: %w", err)
	}

	credential, err := app.client.AuthenticateWithAssertion(cmd.Context(), value)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if email, err := assertion.EmailFromIDToken(value); err == nil {
		_, _ = fmt.Fprintf(out, "Signed in to TDMU as %s\n", email)
	} else {
		_, _ = fmt.Fprintln(out, "Signed in to TDMU")
	}
	if expiresAt, ok := credential.ExpiresAt(app.now()); ok {
		_, _ = fmt.Fprintf(out, "Session expires at %s\n", expiresAt.Format("15:04 on 02 Jan"))
	}

	return nil
}

// providerSettings fills the OAuth client id from the portal's auth config
// when it is not configured.
func providerSettings(ctx context.Context, app *app) (assertion.ProviderSettings, error) {
	settings := assertion.ProviderSettings{
		Issuer:       app.cfg.OAuth.Issuer,
		ClientID:     app.cfg.OAuth.ClientID,
		ClientSecret: app.cfg.OAuth.ClientSecret,
		HTTPClient:   app.httpClient,
	}
	if settings.ClientID != "" {
		return settings, nil
	}

	authConfig, err := app.client.FetchAuthConfig(ctx)
	if err != nil {
		return assertion.ProviderSettings{}, fmt.Errorf("discover google client id: %w", err)
	}
	if authConfig.IdentityProviderClientID == "" {
		return assertion.ProviderSettings{}, fmt.Errorf("discover google client id: %w", domain.ErrFetch)
	}

	settings.ClientID = authConfig.IdentityProviderClientID
	return settings, nil
}

func readAssertion(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read assertion from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
