// import_products carga un catálogo de productos desde CSV (separador ';') en la empresa indicada.
//
// Uso: go run ./cmd/import_products -company <uuid> [-latin1] [-dry-run] productos.csv
// Cabecera: sku;nombre;precio[;costo;categoria;descripcion]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Temucosoft-api/pkg/config"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

func main() {
	companyID := flag.String("company", "", "empresa destino (uuid)")
	latin1 := flag.Bool("latin1", false, "el archivo viene en ISO-8859-1")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo")
	flag.Parse()

	if *companyID == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_products -company <uuid> [-latin1] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("import_products")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, rowErrs, err := readProducts(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	for _, re := range rowErrs {
		log.Warn().Int("line", re.Line).Err(re.Err).Msg("fila descartada")
	}
	if *dryRun {
		log.Info().Int("valid", len(rows)).Int("invalid", len(rowErrs)).Msg("validación terminada")
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	products := usecase.NewProductUseCase(usecase.Deps{
		Repos:    postgres.NewRepos(pool),
		Tx:       postgres.NewTxRunner(pool),
		Log:      log,
		Location: cfg.App.Location(),
	})
	// La carga se registra como una operación de plataforma.
	importer := entity.Principal{UserID: "import_products", Role: entity.RoleSuperAdmin}

	created, skipped := 0, 0
	for _, in := range rows {
		in.CompanyID = *companyID
		if _, err := products.Create(ctx, importer, in); err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.Is(err, domain.ErrDuplicate):
				log.Info().Str("sku", in.SKU).Msg("SKU ya existe, se omite")
			case errors.As(err, &verr):
				log.Warn().Str("sku", in.SKU).Err(err).Msg("producto inválido")
			default:
				log.Fatal().Err(err).Str("sku", in.SKU).Msg("crear producto")
			}
			skipped++
			continue
		}
		created++
	}
	log.Info().Int("created", created).Int("skipped", skipped).Int("invalid_rows", len(rowErrs)).Msg("importación terminada")
}
