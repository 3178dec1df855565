package corpus

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

//go:embed data/weak-password.bin
var embeddedCorpus []byte

// DefaultHTTPTimeout bounds a remote corpus download, including the body.
const DefaultHTTPTimeout = 30 * time.Second

// Source supplies the compressed bytes of a corpus.
type Source interface {
	// Open returns a reader over the zlib-compressed corpus.
	// The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the source for logs and error messages.
	String() string
}

// embeddedSource serves the corpus bundled into the binary.
type embeddedSource struct{}

// Embedded returns the source for the corpus bundled with passguard.
func Embedded() Source {
	return embeddedSource{}
}

func (embeddedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(embeddedCorpus)), nil
}

func (embeddedSource) String() string { return "embedded" }

// fileSource reads a corpus from the local filesystem.
type fileSource struct {
	path string
}

// File returns a source that reads the compressed corpus at path.
func File(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s fileSource) String() string { return s.path }

// httpSource downloads a corpus over HTTP(S).
type httpSource struct {
	url          string
	timeout      time.Duration
	proxyAddress string
	client       *http.Client
}

// HTTPOption configures an HTTP source.
type HTTPOption func(*httpSource)

// WithTimeout sets the download timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *httpSource) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithProxy routes the download through a SOCKS5 proxy at "host:port".
// An empty address means a direct connection.
func WithProxy(address string) HTTPOption {
	return func(s *httpSource) {
		s.proxyAddress = address
	}
}

// WithHTTPClient uses client as-is, ignoring timeout and proxy options.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *httpSource) {
		s.client = client
	}
}

// HTTP returns a source that downloads the compressed corpus from url.
func HTTP(url string, opts ...HTTPOption) (Source, error) {
	s := &httpSource{
		url:     url,
		timeout: DefaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		client, err := newHTTPClient(s.proxyAddress, s.timeout)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s, nil
}

// newHTTPClient builds a client that optionally dials through SOCKS5.
func newHTTPClient(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	if proxyAddress == "" {
		return &http.Client{Timeout: timeout}, nil
	}

	if _, _, err := net.SplitHostPort(proxyAddress); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProxyAddress, proxyAddress)
	}

	// nil auth: local SOCKS proxies normally accept unauthenticated clients
	dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		},
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

func (s *httpSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return resp.Body, nil
}

func (s *httpSource) String() string { return s.url }

// ParseSource turns a configuration value into a Source:
//   - "" or "embedded": the bundled corpus
//   - "http://..." or "https://...": a remote download (opts apply)
//   - "file://path" or any other value: a local file path
func ParseSource(value string, opts ...HTTPOption) (Source, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "" || value == "embedded":
		return Embedded(), nil
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return HTTP(value, opts...)
	case strings.HasPrefix(value, "file://"):
		path := strings.TrimPrefix(value, "file://")
		if path == "" {
			return nil, fmt.Errorf("%w: empty file path", ErrInvalidSource)
		}
		return File(path), nil
	case strings.Contains(value, "://"):
		return nil, fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidSource, value)
	default:
		return File(value), nil
	}
}
