package assertion

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const callbackPath = "/auth/callback"

var (
	ErrStateMismatch   = errors.New("oauth callback state mismatch")
	ErrCallbackTimeout = errors.New("timed out waiting for oauth callback")
	ErrMissingState    = errors.New("expected state is required")
)

// CallbackError is an error reported by the authorization server on the
// redirect, such as access_denied.
type CallbackError struct {
	Code        string
	Description string
}

func (e *CallbackError) Error() string {
	if e.Description != "" {
		return e.Code + ": " + e.Description
	}
	return e.Code
}

func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// CallbackServer receives the authorization code on a loopback redirect.
type CallbackServer struct {
	expectedState string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	code string
	err  error
}

func StartCallbackServer(listenAddr string, expectedState string) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		expectedState: expectedState,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, cb.handleCallback)

	cb.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) RedirectURI() string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://127.0.0.1:%d%s", tcpAddr.Port, callbackPath)
	}
	return "http://127.0.0.1" + callbackPath
}

// WaitForCode blocks until the redirect arrives, the timeout elapses or ctx
// is done. The server is closed on return.
func (c *CallbackServer) WaitForCode(ctx context.Context, timeout time.Duration) (string, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.code, result.err
	case <-timer.C:
		return "", ErrCallbackTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("state") != c.expectedState {
		c.trySendResult(callbackResult{err: ErrStateMismatch})
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	if code := query.Get("error"); code != "" {
		c.trySendResult(callbackResult{err: &CallbackError{Code: code, Description: query.Get("error_description")}})
		http.Error(w, "sign-in failed", http.StatusBadRequest)
		return
	}

	code := query.Get("code")
	if code == "" {
		c.trySendResult(callbackResult{err: errors.New("missing authorization code")})
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	c.trySendResult(callbackResult{code: code})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Sign-in complete. You can close this window and return to the terminal."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
