package dns

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	mdns "github.com/miekg/dns"
)

// DefaultServers are queried when no server list is configured: Cloudflare,
// Google and OpenDNS.
var DefaultServers = []string{
	"1.1.1.1:53",
	"8.8.8.8:53",
	"208.67.222.222:53",
}

// Timeout bounds a single exchange with one server.
var Timeout = 3 * time.Second

// Caller resolves a domain into its addresses using the given servers.
type Caller func(ctx context.Context, domain string, servers []string) ([]net.IP, error)

var commentRe = regexp.MustCompile(`(#[\s\S]*)`)

// ParseServerList reads one DNS server per line. Anything after a # is a
// comment. Servers without a port get port 53.
func ParseServerList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	servers := []string{}

	for scanner.Scan() {
		line := strings.TrimSpace(commentRe.ReplaceAllLiteralString(scanner.Text(), ""))

		if len(line) == 0 {
			continue
		}

		server, err := withPort(line)

		if err != nil {
			return nil, err
		}

		servers = append(servers, server)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return servers, nil
}

func withPort(server string) (string, error) {
	if ip := net.ParseIP(server); ip != nil {
		return net.JoinHostPort(ip.String(), "53"), nil
	}

	host, port, err := net.SplitHostPort(server)

	if err != nil {
		return "", fmt.Errorf("invalid DNS server %q: %w", server, err)
	}

	if net.ParseIP(host) == nil {
		return "", fmt.Errorf("invalid DNS server %q", server)
	}

	return net.JoinHostPort(host, port), nil
}

// MergeIPArrays appends the addresses of b that are not in a yet.
func MergeIPArrays(a []net.IP, b []net.IP) []net.IP {
	for _, ip := range b {
		found := false

		for _, existing := range a {
			if existing.Equal(ip) {
				found = true
				break
			}
		}

		if !found {
			a = append(a, ip)
		}
	}

	return a
}

// Lookup queries every server for the A and AAAA records of domain and merges
// the answers. An error is only returned when no server answered at all.
func Lookup(ctx context.Context, domain string, servers []string) ([]net.IP, error) {
	if len(servers) == 0 {
		servers = DefaultServers
	}

	client := &mdns.Client{Timeout: Timeout}
	ips := []net.IP{}
	answered := false

	var result *multierror.Error

	for _, server := range servers {
		for _, qtype := range []uint16{mdns.TypeA, mdns.TypeAAAA} {
			found, err := exchange(ctx, client, server, domain, qtype)

			if err != nil {
				result = multierror.Append(result, err)
				continue
			}

			answered = true
			ips = MergeIPArrays(ips, found)
		}
	}

	if !answered {
		return nil, result.ErrorOrNil()
	}

	return ips, nil
}

func exchange(ctx context.Context, client *mdns.Client, server, domain string, qtype uint16) ([]net.IP, error) {
	msg := new(mdns.Msg)
	msg.SetQuestion(mdns.Fqdn(domain), qtype)

	in, _, err := client.ExchangeContext(ctx, msg, server)

	if err != nil {
		return nil, fmt.Errorf("%s %s via %s: %w", mdns.TypeToString[qtype], domain, server, err)
	}

	if in.Rcode != mdns.RcodeSuccess {
		return nil, fmt.Errorf("%s %s via %s: %s", mdns.TypeToString[qtype], domain, server, mdns.RcodeToString[in.Rcode])
	}

	ips := []net.IP{}

	for _, rr := range in.Answer {
		switch record := rr.(type) {
		case *mdns.A:
			ips = append(ips, record.A)
		case *mdns.AAAA:
			ips = append(ips, record.AAAA)
		}
	}

	return ips, nil
}
