package security

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"net/url"
	"strings"

	apperrors "github.com/contenthub/backend/internal/errors"
)

// Resolver resolves hostnames to addresses. *net.Resolver satisfies it; tests
// substitute a stub so no real DNS traffic happens.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Guard validates user-supplied URLs before any outbound fetch. It combines
// structural validation, the domain allow-list and a DNS-resolution check
// against private address ranges. A Guard is built once at startup and safe
// for concurrent use.
type Guard struct {
	allowList *AllowList
	devMode   bool
	resolver  Resolver
	logger    *slog.Logger
}

// NewGuard creates a Guard. A nil resolver defaults to net.DefaultResolver.
func NewGuard(allowList *AllowList, devMode bool, resolver Resolver, logger *slog.Logger) *Guard {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &Guard{
		allowList: allowList,
		devMode:   devMode,
		resolver:  resolver,
		logger:    logger,
	}
}

// ValidateFetchURL runs the full gate over a candidate URL, short-circuiting
// on the first failure:
//
//  1. sanitize, then validate structure
//  2. check the hostname against the allow-list (skipped in dev mode, loudly)
//  3. when checkDNS is set, classify the host as an IP literal or resolve it,
//     and reject private addresses either way
//
// Resolution failures fail closed. Every rejection wraps ErrSecurityValidation
// with a reason safe to surface to the caller; resolved private addresses are
// only logged, never returned. No resolution result is cached across calls, so
// each retry revalidates from scratch.
func (g *Guard) ValidateFetchURL(ctx context.Context, rawURL string, checkDNS bool) error {
	rawURL = SanitizeURL(rawURL)

	if err := ValidateURLFormat(rawURL); err != nil {
		return err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf("invalid url format: %v", err),
		)
	}
	hostname := strings.ToLower(u.Hostname())

	if g.devMode {
		g.logger.Warn("dev mode: outbound domain allow-list check bypassed",
			slog.String("hostname", hostname),
		)
	} else if !g.allowList.Contains(hostname) {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf(
				"domain %s is not allow-listed, extend the list via ALLOWED_IMAGE_DOMAINS",
				hostname,
			),
		)
	}

	if checkDNS {
		if err := g.checkAddress(ctx, hostname); err != nil {
			return err
		}
	}

	return nil
}

// checkAddress classifies the hostname as an IP literal or resolves it via
// DNS, rejecting private addresses. Resolving fresh on every call closes the
// allow-listed-hostname-rebinds-to-localhost attack.
func (g *Guard) checkAddress(ctx context.Context, hostname string) error {
	if addr, err := netip.ParseAddr(hostname); err == nil {
		if isPrivateAddr(addr) {
			return apperrors.Wrap(
				apperrors.ErrSecurityValidation,
				fmt.Sprintf("access to private address %s is not allowed", addr),
			)
		}
		return nil
	}

	addrs, err := g.resolver.LookupIPAddr(ctx, hostname)
	if err != nil || len(addrs) == 0 {
		// Fail closed: a hostname we cannot resolve is a hostname we
		// cannot vouch for.
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf("unable to resolve hostname %s", hostname),
		)
	}

	for _, addr := range addrs {
		ip, ok := netip.AddrFromSlice(addr.IP)
		if !ok {
			return apperrors.Wrap(
				apperrors.ErrSecurityValidation,
				fmt.Sprintf("unable to resolve hostname %s", hostname),
			)
		}
		if isPrivateAddr(ip) {
			g.logger.Warn("hostname resolved to a private address, possible SSRF attempt",
				slog.String("hostname", hostname),
				slog.String("resolved", ip.Unmap().String()),
			)
			return apperrors.Wrap(
				apperrors.ErrSecurityValidation,
				fmt.Sprintf("hostname %s resolves to a private address", hostname),
			)
		}
	}

	return nil
}
