package visitor

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"linkvault/config"
	"linkvault/internal/domain/service"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeReader struct {
	city   func(ip net.IP) (*geoip2.City, error)
	closed bool
}

func (f *fakeReader) City(ip net.IP) (*geoip2.City, error) { return f.city(ip) }
func (f *fakeReader) Close() error                         { f.closed = true; return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestInspect_Country(t *testing.T) {
	reader := &fakeReader{city: func(ip net.IP) (*geoip2.City, error) {
		record := &geoip2.City{}
		switch ip.String() {
		case "8.8.8.8":
			record.Country.IsoCode = "US"
		case "9.9.9.9":
			record.Country.Names = map[string]string{"en": "Switzerland"}
		case "1.1.1.1":
			return nil, errors.New("lookup failed")
		}

		return record, nil
	}}
	insp := newInspectorWithReader(reader, discardLogger())

	tests := []struct {
		name string
		ip   string
		want string
	}{
		{"iso code", "8.8.8.8", "US"},
		{"english name fallback", "9.9.9.9", "Switzerland"},
		{"lookup error", "1.1.1.1", ""},
		{"empty record", "4.4.4.4", ""},
		{"loopback", "127.0.0.1", ""},
		{"private", "10.0.0.5", ""},
		{"invalid", "not-an-ip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visit, ok := insp.Inspect(service.VisitRequest{IP: tt.ip, UserAgent: browserUA})
			require.True(t, ok)
			assert.Equal(t, tt.want, visit.Country)
		})
	}
}

func TestInspect_WithoutDatabase(t *testing.T) {
	insp := NewInspector("", discardLogger())

	visit, ok := insp.Inspect(service.VisitRequest{IP: "8.8.8.8", UserAgent: browserUA, Referer: "https://www.google.com/search?q=x"})
	require.True(t, ok)
	assert.Empty(t, visit.Country)
	assert.Equal(t, "google.com", visit.Referrer)
}

func TestInspect_MissingDatabaseFile(t *testing.T) {
	insp := NewInspector(t.TempDir()+"/missing.mmdb", discardLogger())

	visit, ok := insp.Inspect(service.VisitRequest{IP: "8.8.8.8"})
	require.True(t, ok)
	assert.Empty(t, visit.Country)
	assert.Empty(t, visit.Referrer)
}

func TestInspect_Bot(t *testing.T) {
	insp := NewInspector("", discardLogger())

	_, ok := insp.Inspect(service.VisitRequest{
		IP:        "8.8.8.8",
		UserAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	})
	assert.False(t, ok)
}

func TestReferrerHost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"not a url", ""},
		{"https://Twitter.com/someone", "twitter.com"},
		{"https://www.youtube.com/watch?v=1", "youtube.com"},
		{"http://localhost:8080/p/alice", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferrerHost(tt.in))
		})
	}
}

func TestClose(t *testing.T) {
	reader := &fakeReader{}
	insp := newInspectorWithReader(reader, discardLogger())

	require.NoError(t, insp.Close())
	assert.True(t, reader.closed)
	assert.NoError(t, insp.Close())
}

func TestNew_RegistersCloseHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	insp := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NotNil(t, insp)

	lc.RequireStart().RequireStop()
}
