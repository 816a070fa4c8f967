// Package visitor turns raw request metadata into the anonymous visit
// attributes counted by analytics.
package visitor

import (
	"log/slog"
	"net"
	"net/url"
	"strings"
	"sync"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/service"

	"github.com/mssola/user_agent"
	"github.com/oschwald/geoip2-golang"
)

// cityReader is the subset of *geoip2.Reader used for lookups.
type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

type inspector struct {
	mu     sync.RWMutex
	reader cityReader
	logger *slog.Logger
}

// NewInspector returns a VisitInspector. When dbPath is empty or cannot be
// opened visits carry no country.
func NewInspector(dbPath string, logger *slog.Logger) service.VisitInspector {
	return openInspector(dbPath, logger)
}

func openInspector(dbPath string, logger *slog.Logger) *inspector {
	insp := &inspector{logger: logger}
	if dbPath == "" {
		logger.Info("GeoIP database not configured, visitor locations disabled")

		return insp
	}

	reader, err := geoip2.Open(dbPath)
	if err != nil {
		logger.Warn("Failed to open GeoIP database, visitor locations disabled",
			slog.String("path", dbPath),
			slog.Any("error", err),
		)

		return insp
	}

	meta := reader.Metadata()
	logger.Info("GeoIP database loaded",
		slog.String("path", dbPath),
		slog.String("type", meta.DatabaseType),
		slog.Uint64("epoch", uint64(meta.BuildEpoch)),
	)
	insp.reader = reader

	return insp
}

func newInspectorWithReader(reader cityReader, logger *slog.Logger) *inspector {
	return &inspector{reader: reader, logger: logger}
}

// Inspect reports the visit attributes and false when the user agent is a crawler.
func (i *inspector) Inspect(req service.VisitRequest) (entity.Visit, bool) {
	if req.UserAgent != "" && user_agent.New(req.UserAgent).Bot() {
		return entity.Visit{}, false
	}

	return entity.Visit{
		Country:  i.country(req.IP),
		Referrer: ReferrerHost(req.Referer),
	}, true
}

// Close releases the GeoIP database.
func (i *inspector) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.reader == nil {
		return nil
	}
	err := i.reader.Close()
	i.reader = nil

	return err
}

// country returns the ISO code of rawIP, or "" when it cannot be located.
func (i *inspector) country(rawIP string) string {
	ip := net.ParseIP(strings.TrimSpace(rawIP))
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return ""
	}

	i.mu.RLock()
	reader := i.reader
	i.mu.RUnlock()
	if reader == nil {
		return ""
	}

	record, err := reader.City(ip)
	if err != nil {
		i.logger.Debug("GeoIP lookup failed", slog.String("ip", rawIP), slog.Any("error", err))

		return ""
	}

	if code := record.Country.IsoCode; code != "" {
		return code
	}

	return record.Country.Names["en"]
}

// ReferrerHost reduces a Referer header to its lowercase host without "www.".
// Empty or unparsable values yield "".
func ReferrerHost(referer string) string {
	u, err := url.Parse(strings.TrimSpace(referer))
	if err != nil || u.Hostname() == "" {
		return ""
	}

	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
