package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/config"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"github.com/prefeitura-rio/app-busca-boletins/internal/observability"
	"github.com/prefeitura-rio/app-busca-boletins/internal/search"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "busca",
		Usage: "Consulta o arquivo de boletins de ocorrência",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "URL base do arquivo (sobrepõe ARCHIVE_BASE_URL)",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "Usa o arquivo fictício",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Exibe logs de depuração",
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			bulletinCommand(),
			healthCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Busca boletins por número ou termos",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bo", Usage: "Número do boletim"},
			&cli.StringSliceFlag{Name: "termo", Aliases: []string{"t"}, Usage: "Termo de pesquisa (repetível)"},
			&cli.StringFlag{Name: "operador", Value: "AND", Usage: "AND (todos os termos) ou OR (qualquer termo)"},
			&cli.StringFlag{Name: "inicio", Usage: "Data inicial (AAAA-MM-DD)"},
			&cli.StringFlag{Name: "fim", Usage: "Data final (AAAA-MM-DD)"},
			&cli.StringFlag{Name: "pessoa", Usage: "Nome usado para rotular os resultados"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			service, cleanup, err := newService(c)
			if err != nil {
				return err
			}
			defer cleanup()

			input := &models.SearchInput{
				BONumber:   c.String("bo"),
				PersonName: c.String("pessoa"),
				Operator:   models.Operator(c.String("operador")),
				StartDate:  c.String("inicio"),
				EndDate:    c.String("fim"),
			}
			for i, term := range c.StringSlice("termo") {
				input.AdvancedTerms = append(input.AdvancedTerms, models.AdvancedTerm{
					Term: term,
					ID:   fmt.Sprintf("cli-%d", i),
				})
			}

			result, err := service.Search(ctx, "cli", input)
			if err != nil {
				return classified(err)
			}
			return printJSON(result)
		},
	}
}

func bulletinCommand() *cli.Command {
	return &cli.Command{
		Name:      "boletim",
		Usage:     "Exibe o texto completo de um boletim",
		ArgsUsage: "<numero>",
		Action: func(ctx context.Context, c *cli.Command) error {
			service, cleanup, err := newService(c)
			if err != nil {
				return err
			}
			defer cleanup()

			detail, err := service.LookupBulletin(ctx, c.Args().First())
			if err != nil {
				return classified(err)
			}
			return printJSON(detail)
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Verifica o status do arquivo",
		Action: func(ctx context.Context, c *cli.Command) error {
			service, cleanup, err := newService(c)
			if err != nil {
				return err
			}
			defer cleanup()

			health := service.Health(ctx)
			if err := printJSON(health); err != nil {
				return err
			}
			if health.Status == "error" {
				return cli.Exit("", 2)
			}
			return nil
		},
	}
}

func newService(c *cli.Command) (*search.Service, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if url := c.String("url"); url != "" {
		cfg.ArchiveBaseURL = url
	}
	if c.Bool("mock") {
		cfg.ArchiveMock = true
		cfg.ArchiveMockLatency = 0
	}

	level := "warn"
	if c.Bool("debug") {
		level = "debug"
	}
	logger, err := observability.NewLogger(level, "console")
	if err != nil {
		return nil, nil, err
	}

	service := search.NewService(
		archive.NewFromConfig(cfg, logger),
		search.NewMemorySequencer(time.Minute, 1),
		search.NewNormalizer(time.Now),
		nil,
		logger,
	)
	return service, func() { _ = logger.Sync() }, nil
}

func classified(err error) error {
	if ce := search.Classify(err); ce != nil {
		if ce.Detail != "" {
			return cli.Exit(fmt.Sprintf("%s (%s): %s", ce.Message, ce.Category, ce.Detail), 1)
		}
		return cli.Exit(fmt.Sprintf("%s (%s)", ce.Message, ce.Category), 1)
	}
	return err
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
