package config

import "github.com/kelseyhightower/envconfig"

type App struct {
	// Network
	HTTPAddr    string `envconfig:"HTTP_ADDR"    default:":3001"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`
	// Store
	PGDSN string `envconfig:"PG_DSN" default:"host=localhost user=postgres password=postgres dbname=pousada port=5432 sslmode=disable"`
	// Voucher
	LogoPath string `envconfig:"LOGO_PATH" default:"public/imagens/SolRiso.jpg"`
	// Postal lookup; empty means the public ViaCEP host
	ViaCEPURL string `envconfig:"VIACEP_URL" default:""`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
