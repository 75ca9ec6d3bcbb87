package utils

import (
	"context"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"net"
	"net/http"
	"strings"
)

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID, ok && requestID != ""
}

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevServerParseSessionData)
	}
	return session, nil
}

// ClientIP returns the socket address of the caller. Forwarding headers are
// honoured only when that address belongs to one of trustedProxies; the first
// X-Forwarded-For hop wins over X-Real-IP.
func ClientIP(r *http.Request, trustedProxies []*net.IPNet) string {
	remote := RemoteIP(r)
	if !isTrustedProxy(remote, trustedProxies) {
		return remote
	}

	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get(constvars.HeaderXRealIP)); net.ParseIP(realIP) != nil {
		return realIP
	}
	return remote
}

// RemoteIP is the host part of the socket address.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ParseTrustedProxies reads a comma separated list of IPs and CIDRs.
// Unparsable entries are skipped.
func ParseTrustedProxies(raw string) []*net.IPNet {
	networks := make([]*net.IPNet, 0)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				continue
			}
			if ip.To4() != nil {
				entry += "/32"
			} else {
				entry += "/128"
			}
		}
		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			continue
		}
		networks = append(networks, network)
	}
	return networks
}

func isTrustedProxy(remote string, trustedProxies []*net.IPNet) bool {
	ip := net.ParseIP(remote)
	if ip == nil {
		return false
	}
	for _, network := range trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(constvars.CONTEXT_CLIENT_IP_KEY).(string)
	return ip
}

func BearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}
