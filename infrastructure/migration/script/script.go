// Script de carga inicial: gera os arquivos CSV de exemplo no diretório de dados configurado.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type options struct {
	Sales    int
	Clients  int
	Products int
	Team     int
	From     string
	To       string
	Seed     uint64
	Force    bool
}

type table struct {
	file    string
	header  []string
	records func() any
}

func parseOptions(args []string) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flags.IntVar(&opts.Sales, "sales", 50000, "quantidade de vendas")
	flags.IntVar(&opts.Clients, "clients", 1000, "quantidade de clientes")
	flags.IntVar(&opts.Products, "products", 200, "quantidade de produtos")
	flags.IntVar(&opts.Team, "team", 10, "quantidade de membros da equipe")
	flags.StringVar(&opts.From, "from", "2018-01-01", "primeiro dia das vendas e do tráfego")
	flags.StringVar(&opts.To, "to", "2024-11-29", "último dia das vendas e do tráfego")
	flags.Uint64Var(&opts.Seed, "seed", 42, "semente para resultados reproduzíveis (maior que zero)")
	flags.BoolVarP(&opts.Force, "force", "f", false, "sobrescreve arquivos existentes")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	// vendas sorteiam cliente e produto entre os IDs gerados
	switch {
	case opts.Clients < 1:
		return opts, fmt.Errorf("--clients deve ser maior que zero: %d", opts.Clients)
	case opts.Products < 1:
		return opts, fmt.Errorf("--products deve ser maior que zero: %d", opts.Products)
	case opts.Sales < 0:
		return opts, fmt.Errorf("--sales não pode ser negativo: %d", opts.Sales)
	case opts.Team < 0:
		return opts, fmt.Errorf("--team não pode ser negativo: %d", opts.Team)
	case opts.Seed == 0:
		return opts, fmt.Errorf("--seed deve ser maior que zero")
	}

	return opts, nil
}

// tables monta as tabelas a partir de geradores independentes, um por arquivo
func tables(cfg config.Database, opts options, from, to time.Time) []table {
	return []table{
		{cfg.SalesFile, salesColumns, func() any {
			return NewGenerator(opts.Seed).Sales(opts.Sales, opts.Clients, opts.Products, from, to)
		}},
		{cfg.ProductsFile, productColumns, func() any { return NewGenerator(opts.Seed + 1).Products(opts.Products) }},
		{cfg.ClientsFile, clientColumns, func() any { return NewGenerator(opts.Seed + 2).Clients(opts.Clients) }},
		{cfg.TeamFile, teamColumns, func() any { return NewGenerator(opts.Seed + 3).Team(opts.Team) }},
		{cfg.TrafficFile, trafficColumns, func() any { return NewGenerator(opts.Seed + 4).Traffic(from, to) }},
	}
}

func seed(ctx context.Context, cfg config.Database, opts options) error {
	from, err := time.Parse(time.DateOnly, opts.From)
	if err != nil {
		return err
	}
	to, err := time.Parse(time.DateOnly, opts.To)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	conn, err := flatfile.NewConnection(ctx, cfg)
	if err != nil {
		return err
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for _, t := range tables(cfg, opts, from, to) {
		t := t
		p.Go(func(ctx context.Context) error {
			path := cfg.Path(t.file)
			if _, err := os.Stat(path); err == nil && !opts.Force {
				logrus.WithField("file", path).Warn("Arquivo já existe, mantido (use --force para sobrescrever)")
				return nil
			}

			startTime := time.Now()
			if err := conn.WriteTable(t.file, t.header, t.records()); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"file":     path,
				"duration": time.Since(startTime).String(),
			}).Info("Arquivo gerado")
			return nil
		})
	}

	return p.Wait()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando geração dos arquivos de dados...")

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("Parâmetros inválidos")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	if err := seed(context.Background(), cfg.Database, opts); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar arquivos de dados")
	}

	logrus.WithField("data_dir", cfg.Database.DataDir).Info("Arquivos de dados gerados com sucesso")
}
