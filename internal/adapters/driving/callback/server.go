// Package callback provides the local OAuth callback server and browser
// utilities.
package callback

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// Result carries the query parameters of one provider redirect.
type Result struct {
	Platform domain.PlatformID
	Code     string
	State    string
}

// Server receives the provider redirect on a local HTTP endpoint. The
// redirect lands on the origin root with platform, code and state as query
// parameters; verification happens in the connection service, not here.
type Server struct {
	mu         sync.Mutex
	port       int
	resultChan chan Result
	errChan    chan error
	server     *http.Server
	listener   net.Listener
}

// NewServer creates a new callback server.
func NewServer(port int) *Server {
	return &Server{
		port:       port,
		resultChan: make(chan Result, 1),
		errChan:    make(chan error, 1),
	}
}

// SetPort changes the listen port. Has no effect once Start has been called.
func (s *Server) SetPort(port int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		s.port = port
	}
}

// Start starts the callback server on the configured port.
// If port is 0, a random available port will be chosen.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	// Store the actual port (important when port was 0)
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case s.errChan <- err:
			default:
			}
		}
	}()

	return nil
}

// handleCallback processes the provider redirect.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Check for error from provider
	if errParam := q.Get("error"); errParam != "" {
		errDesc := q.Get("error_description")
		select {
		case s.errChan <- fmt.Errorf("oauth error: %s - %s", errParam, errDesc):
		default:
		}
		writePage(w, "Authorization failed: "+html.EscapeString(errDesc), "")
		return
	}

	platform := domain.PlatformID(q.Get("platform"))
	code := q.Get("code")
	if platform == "" || code == "" {
		select {
		case s.errChan <- fmt.Errorf("callback missing platform or code"):
		default:
		}
		writePage(w, "Authorization failed: incomplete callback", "")
		return
	}

	select {
	case s.resultChan <- Result{Platform: platform, Code: code, State: q.Get("state")}:
	default:
	}

	writePage(w, "Authorization successful!", "You can close this window and return to the terminal.")
}

// WaitForCallback blocks until the redirect arrives or timeout.
func (s *Server) WaitForCallback(timeout time.Duration) (*Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case result := <-s.resultChan:
		return &result, nil
	case err := <-s.errChan:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("timeout waiting for authorization callback")
	}
}

// Stop shuts down the callback server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Origin returns the callback origin, the base the redirect URIs are built
// on. Providers append ?platform={id}&code=...&state=... to it.
func (s *Server) Origin() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

func writePage(w http.ResponseWriter, title, message string) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <title>CrossPost - OAuth Callback</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #FAFAFA;
        }
        .container {
            text-align: center;
            background: white;
            padding: 48px 64px;
            border-radius: 16px;
            border: 1px solid #C7C8CC;
            box-shadow: 0 4px 24px rgba(0,0,0,0.08);
        }
        h1 {
            color: #333F50;
            margin: 0 0 8px 0;
            font-size: 24px;
            font-weight: 600;
        }
        p {
            color: #7B8088;
            margin: 0;
            font-size: 16px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <p>%s</p>
    </div>
</body>
</html>`, title, message)
}

// OpenBrowser opens the default browser to the given URL.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
