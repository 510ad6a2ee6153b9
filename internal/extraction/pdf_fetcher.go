package extraction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// errBlockedAddress is returned by the dialer for addresses outside the public internet.
var errBlockedAddress = errors.New("destination address is not publicly routable")

// sharedAddressSpace is the carrier-grade NAT range, which netip does not flag as private.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// PDFFetcherConfig configures PDFFetcher.
type PDFFetcherConfig struct {
	Timeout    time.Duration
	MaxRetries int
	MaxBytes   int64
	// AllowPrivateNetworks disables the dial guard that refuses loopback,
	// private, link-local and unspecified destinations.
	AllowPrivateNetworks bool
}

// PDFFetcher downloads resume documents over HTTP with retries on transient failures.
type PDFFetcher struct {
	client   *retryablehttp.Client
	maxBytes int64
	logger   *slog.Logger
}

// NewPDFFetcher creates a PDFFetcher. Retry attempts are logged through logger.
func NewPDFFetcher(cfg PDFFetcherConfig, logger *slog.Logger) *PDFFetcher {
	logger = logger.With(slog.String("component", "pdf_fetcher"))

	transport := cleanhttp.DefaultPooledTransport()
	if !cfg.AllowPrivateNetworks {
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			Control:   guardPublicAddress,
		}
		transport.DialContext = dialer.DialContext
		// A proxy would be the only address the guard ever sees.
		transport.Proxy = nil
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Transport: transport, Timeout: cfg.Timeout}
	client.RetryMax = cfg.MaxRetries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = logger
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if errors.Is(err, errBlockedAddress) {
			return false, err
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &PDFFetcher{client: client, maxBytes: cfg.MaxBytes, logger: logger}
}

// Fetch downloads url and returns the body. The response must be 2xx, be
// served as application/pdf and fit within the size limit.
//
// Download failures surface as ErrDocumentUnreachable with a fixed message;
// the cause is only logged.
func (f *PDFFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Debug("invalid document url", slog.Any("error", err))
		return nil, ErrDocumentUnreachable
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.logger.Warn("document download failed",
			slog.String("host", req.URL.Host),
			slog.Bool("blocked", errors.Is(err, errBlockedAddress)),
			slog.Any("error", err))
		return nil, ErrDocumentUnreachable
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("document download rejected",
			slog.String("host", req.URL.Host),
			slog.Int("status", resp.StatusCode))
		return nil, ErrDocumentUnreachable
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/pdf" {
		return nil, ErrNotPDF
	}

	if resp.ContentLength > f.maxBytes {
		return nil, ErrDocumentTooLarge
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.logger.Warn("document body read failed",
			slog.String("host", req.URL.Host),
			slog.Any("error", err))
		return nil, ErrDocumentUnreachable
	}
	if int64(len(body)) > f.maxBytes {
		return nil, ErrDocumentTooLarge
	}

	return body, nil
}

// guardPublicAddress is a net.Dialer Control hook. It runs after name
// resolution for every connection, redirects included.
func guardPublicAddress(network, address string, _ syscall.RawConn) error {
	addrPort, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", errBlockedAddress, address)
	}
	if !isPublicAddress(addrPort.Addr()) {
		return fmt.Errorf("%w: %s", errBlockedAddress, addrPort.Addr())
	}
	return nil
}

func isPublicAddress(addr netip.Addr) bool {
	addr = addr.Unmap()
	switch {
	case !addr.IsValid(),
		addr.IsUnspecified(),
		addr.IsLoopback(),
		addr.IsPrivate(),
		addr.IsLinkLocalUnicast(),
		addr.IsLinkLocalMulticast(),
		addr.IsInterfaceLocalMulticast(),
		addr.IsMulticast(),
		sharedAddressSpace.Contains(addr):
		return false
	}
	return true
}
