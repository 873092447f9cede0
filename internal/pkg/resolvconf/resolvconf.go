// Package resolvconf publishes DNS server addresses to a resolv.conf file.
package resolvconf

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/sirupsen/logrus"
)

const header = "# Generated by golang-ethernetd\n"

// Publisher writes nameserver lines to one file. Interfaces sharing the file
// share one Publisher; the file lists the servers of every interface that published,
// in interface name order.
type Publisher struct {
	path    string
	fileMgr port.FileManager
	logger  *logrus.Entry

	mu      sync.Mutex
	servers map[string][]types.Addr
}

// NewPublisher creates a Publisher for path.
func NewPublisher(path string, fileMgr port.FileManager) *Publisher {
	return &Publisher{
		path:    path,
		fileMgr: fileMgr,
		logger:  logging.WithComponent("resolvconf").WithField("path", path),
		servers: make(map[string][]types.Addr),
	}
}

// Publish records the DNS servers of iface and rewrites the file if its content changed.
// Zero addresses are skipped.
func (p *Publisher) Publish(iface string, servers ...types.Addr) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var kept []types.Addr
	for _, s := range servers {
		if !s.IsZero() {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(p.servers, iface)
	} else {
		p.servers[iface] = kept
	}

	content := p.render()
	if current, err := p.fileMgr.ReadFile(p.path); err == nil && string(current) == content {
		p.logger.Debug("DNS configuration already up to date, skipping")
		return nil
	}

	if err := p.fileMgr.WriteFile(p.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.path, err)
	}
	p.logger.WithField("interface", iface).Info("Updated resolv.conf with DNS servers")
	return nil
}

func (p *Publisher) render() string {
	names := make([]string, 0, len(p.servers))
	for name := range p.servers {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(header)
	seen := make(map[types.Addr]bool)
	for _, name := range names {
		for _, s := range p.servers[name] {
			if seen[s] {
				continue
			}
			seen[s] = true
			fmt.Fprintf(&b, "nameserver %s\n", s.String())
		}
	}
	return b.String()
}
