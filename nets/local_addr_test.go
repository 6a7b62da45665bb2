package nets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		yes, err := isLocalAddr("127.0.0.1:10000")
		if err != nil {
			t.Fatal(err)
		}
		if !yes {
			t.Fatal()
		}
		yes, err = isLocalAddr("192.168.1.1")
		if err != nil {
			t.Fatal(err)
		}
		if !yes {
			t.Fatal()
		}
		yes, err = isLocalAddr("192.0.2.1:80")
		if err != nil {
			t.Fatal(err)
		}
		if yes {
			t.Fatal()
		}
	})
}

func TestProxyAddrInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}

func TestParseProxyAddr(t *testing.T) {
	u, err := parseProxyAddr("socks://127.0.0.1:1080")
	if err != nil {
		t.Fatal(err)
	}
	if u.Scheme != "socks5" || u.Host != "127.0.0.1:1080" {
		t.Fatalf("got %v", u)
	}
	u, err = parseProxyAddr("")
	if err != nil || u != nil {
		t.Fatal()
	}
}

func TestProxyAddrFromConfigs(t *testing.T) {
	for _, name := range proxyEnvs {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	first := filepath.Join(dir, "first.cue")
	if err := os.WriteFile(first, []byte(`proxy_addr: ""`), 0644); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(dir, "second.cue")
	if err := os.WriteFile(second, []byte(`proxy_addr: "socks://127.0.0.1:1080"`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForProduction(),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{first, second}, "proxy_addr?: string")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "socks://127.0.0.1:1080" {
			t.Fatalf("got %q", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u)
		}
	})
}
