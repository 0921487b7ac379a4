package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FilaVirtual-api/pkg/config"
)

// NewPool crea el pool de conexiones PostgreSQL. El dimensionado (máx/mín de
// conexiones, vida útil, tiempo ocioso) sale de DBConfig, con lo que se ajusta
// por entorno vía DB_MAX_CONNS, DB_MIN_CONNS, etc. sin recompilar.
//
// Cuando la DB es la de Supabase el hostname puede resolver solo a AAAA y los
// contenedores sin IPv6 no llegan; por eso el DSN y el dial fuerzan IPv4
// cuando hay una dirección A disponible.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(preferIPv4DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = dialPreferIPv4
	applyPoolSizing(poolConfig, cfg)

	// NUMERIC/DECIMAL se escanean como shopspring/decimal en todas las
	// conexiones: price en menu_items, revenue y abandonment_rate en daily_stats.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// applyPoolSizing vuelca el dimensionado de DBConfig al pool. Valores <= 0
// caen al default de pgxpool.
func applyPoolSizing(pc *pgxpool.Config, cfg config.DBConfig) {
	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pc.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnLifetimeMin > 0 {
		pc.MaxConnLifetime = time.Duration(cfg.ConnLifetimeMin) * time.Minute
	}
	if cfg.ConnIdleMin > 0 {
		pc.MaxConnIdleTime = time.Duration(cfg.ConnIdleMin) * time.Minute
	}
	pc.HealthCheckPeriod = time.Minute
}

// preferIPv4DSN arma el DSN final, sustituyendo el hostname por su dirección
// IPv4 cuando existe. Si no hay IPv4 se deja el hostname tal cual.
func preferIPv4DSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return urlWithIPv4Host(cfg.DatabaseURL)
	}
	if ipv4, err := lookupIPv4(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

// dialPreferIPv4 es el DialFunc del pool: intenta tcp4 con la dirección A del
// host y, si no hay, cae al dial normal.
func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	dialer := &net.Dialer{}
	ipv4, err := lookupIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// lookupIPv4 resuelve el host a una dirección IPv4. Primero el resolver del
// sistema; si ese solo devuelve AAAA (DNS de contenedor), reintenta contra un
// DNS público.
func lookupIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("dirección IPv6: %s", host)
	}
	if ip, err := firstIPv4(net.LookupIP(host)); err == nil {
		return ip, nil
	}
	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return firstIPv4(fallback.LookupIP(context.Background(), "ip4", host))
}

func firstIPv4(ips []net.IP, err error) (string, error) {
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", fmt.Errorf("sin dirección IPv4")
}

// urlWithIPv4Host reemplaza el hostname de un connection string completo por
// su IPv4. Ante cualquier problema devuelve la URL original.
func urlWithIPv4Host(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	ipv4, err := lookupIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
