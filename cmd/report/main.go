// Command report genera un reporte PDF de inventario o movimientos desde la
// línea de comandos, sin pasar por la API HTTP.
//
// Uso:
//
//	report -type inventario -out inventario.pdf
//	report -type movimientos -from 2026-01-01 -to 2026-01-31 -out enero.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/application/report"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	var (
		kind = flag.String("type", "inventario", "tipo de reporte: inventario | movimientos")
		from = flag.String("from", "", "fecha inicial (YYYY-MM-DD, solo movimientos)")
		to   = flag.String("to", "", "fecha final (YYYY-MM-DD, solo movimientos)")
		out  = flag.String("out", "reporte.pdf", "ruta del PDF de salida")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("cargar configuración: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	queryUC := query.NewUseCase(postgres.NewQueryRepository(pool))
	reportUC := report.NewUseCase(queryUC, infrapdf.NewMarotoReportGenerator())

	var pdf []byte
	switch *kind {
	case "inventario":
		pdf, err = reportUC.GenerateInventoryReport(ctx)
	case "movimientos":
		fromT, perr := parseDate(*from)
		if perr != nil {
			fatal("flag -from: %v", perr)
		}
		toT, perr := parseDate(*to)
		if perr != nil {
			fatal("flag -to: %v", perr)
		}
		pdf, err = reportUC.GenerateMovementsReport(ctx, fromT, toT)
	default:
		fatal("tipo de reporte desconocido: %q", *kind)
	}
	if err != nil {
		log.Fatal().Err(err).Str("type", *kind).Msg("generar reporte")
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("escribir PDF")
	}
	fmt.Printf("reporte %s escrito en %s (%d bytes)\n", *kind, *out, len(pdf))
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
