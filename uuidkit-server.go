package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	uuidhttp "github.com/PaulFidika/uuidkit/adapters/http"
	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/PaulFidika/uuidkit/idfmt"
	"github.com/PaulFidika/uuidkit/registry"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type config struct {
	ListenAddr       string
	NamespacesFile   string
	DefaultNamespace string
	DefaultVersion   uuid.Version
	RedisURL         string
	TrustedProxies   []netip.Prefix
	RateLimitOff     bool
}

func main() {
	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		cmd = strings.TrimSpace(args[0])
		args = args[1:]
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	switch cmd {
	case "serve":
		if err := runServe(cfg); err != nil {
			fatal(err)
		}
	case "gen":
		if err := runGen(cfg, args, os.Stdin, os.Stdout); err != nil {
			fatal(err)
		}
	default:
		fatal(fmt.Errorf("unknown command %q (supported: serve, gen)", cmd))
	}
}

func loadConfig() (*config, error) {
	c := &config{
		ListenAddr:       env(":8080", "UUIDKIT_LISTEN_ADDR"),
		NamespacesFile:   env("", "UUIDKIT_NAMESPACES_FILE"),
		DefaultNamespace: env("events", "UUIDKIT_DEFAULT_NAMESPACE"),
		RedisURL:         env("", "UUIDKIT_REDIS_URL", "REDIS_URL"),
		RateLimitOff:     envBool("UUIDKIT_RATE_LIMIT_DISABLED"),
	}
	v, err := parseVersion(env("5", "UUIDKIT_DEFAULT_VERSION"))
	if err != nil {
		return nil, fmt.Errorf("UUIDKIT_DEFAULT_VERSION: %w", err)
	}
	c.DefaultVersion = v
	for _, raw := range envList("UUIDKIT_TRUSTED_PROXIES") {
		p, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("UUIDKIT_TRUSTED_PROXIES: %w", err)
		}
		c.TrustedProxies = append(c.TrustedProxies, p)
	}
	return c, nil
}

func loadRegistry(cfg *config) (*registry.Registry, error) {
	if cfg.NamespacesFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(cfg.NamespacesFile)
}

func runServe(cfg *config) error {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	if _, err := reg.Resolve(cfg.DefaultNamespace); err != nil {
		return fmt.Errorf("UUIDKIT_DEFAULT_NAMESPACE: %w", err)
	}

	svc := uuidhttp.NewService(reg).WithDefaults(cfg.DefaultNamespace, cfg.DefaultVersion)
	if len(cfg.TrustedProxies) > 0 {
		svc.WithClientIPFunc(uuidhttp.ClientIPFromForwardedHeaders(cfg.TrustedProxies))
	}
	switch {
	case cfg.RateLimitOff:
		svc.DisableRateLimiter()
		log.Printf("[uuidkit/serve] rate limiting disabled")
	case cfg.RedisURL != "":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		svc.WithRedis(rdb)
		log.Printf("[uuidkit/serve] using redis rate limiter")
	default:
		log.Printf("[uuidkit/serve] Redis not configured; using in-memory rate limiter (single-node only)")
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("[uuidkit/serve] listening on %s (%d namespaces)", cfg.ListenAddr, len(reg.Names()))
	return server.ListenAndServe()
}

// runGen prints one identifier per name. Names come from args, or from stdin (one per
// line) when no names are given.
func runGen(cfg *config, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	ns := fs.String("ns", cfg.DefaultNamespace, "namespace name or UUID")
	versionFlag := fs.String("v", strconv.Itoa(int(cfg.DefaultVersion)), "UUID version: 3 (MD5) or 5 (SHA-1)")
	format := fs.String("format", idfmt.Canonical, "output format: canonical, short, guidhex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := parseVersion(*versionFlag)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	namespaceID, err := reg.Resolve(*ns)
	if err != nil {
		return fmt.Errorf("namespace: %w", err)
	}
	if !idfmt.Valid(*format) {
		return fmt.Errorf("format %q: %w", *format, idfmt.ErrUnknownFormat)
	}

	out := bufio.NewWriter(stdout)
	emit := func(name string) error {
		id, err := deterministic.CreateVersion(namespaceID, name, version)
		if err != nil {
			return err
		}
		text, err := idfmt.Format(id, *format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	if fs.NArg() > 0 {
		for _, name := range fs.Args() {
			if err := emit(name); err != nil {
				return err
			}
		}
		return out.Flush()
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if err := emit(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read names: %w", err)
	}
	return out.Flush()
}

// parseVersion accepts "3" or "5". Anything else matches deterministic.ErrInvalidArgument.
func parseVersion(raw string) (uuid.Version, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || (n != int(deterministic.MD5) && n != int(deterministic.SHA1)) {
		return 0, fmt.Errorf("%w: version must be 3 or 5, got %q", deterministic.ErrInvalidArgument, raw)
	}
	return uuid.Version(n), nil
}

// env returns the first non-blank variable among keys, or fallback.
func env(fallback string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return fallback
}

// envList splits a comma-separated variable, dropping blank items.
func envList(key string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envBool is false when key is unset or not a valid bool.
func envBool(key string) bool {
	b, _ := strconv.ParseBool(env("", key))
	return b
}

func fatal(err error) {
	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, http.ErrServerClosed) || errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
