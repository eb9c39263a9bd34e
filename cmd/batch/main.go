package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ronaldmendzas/licor-system-sub000/app/config"
	"github.com/ronaldmendzas/licor-system-sub000/app/services"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
	"github.com/ronaldmendzas/licor-system-sub000/internal/matcher"
	"github.com/ronaldmendzas/licor-system-sub000/internal/parser"
)

// Intérprete por lotes: lee comandos de texto (uno por línea, de un
// archivo o stdin) y escribe cada resultado como JSON por línea.
// Sirve para reprocesar historiales y para calibrar umbrales con
// corpus reales sin levantar el servidor.
func main() {
	var (
		configPath = flag.String("config", "config/parser.yaml", "ruta del archivo de configuración")
		inputPath  = flag.String("input", "", "archivo con un comando por línea (default stdin)")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("No se pudo iniciar el logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Error al cargar configuración", zap.Error(err))
	}
	applyParserTunables(cfg)

	catalog := services.NewCatalogService(cfg.Catalog.SeedPath, logger)
	if err := catalog.Load(); err != nil {
		logger.Fatal("Error al cargar catálogo", zap.Error(err))
	}

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Fatal("Error al abrir archivo de entrada", zap.Error(err))
		}
		defer f.Close()
		in = f
	}

	snapshot := catalog.Snapshot()
	enc := json.NewEncoder(os.Stdout)
	scanner := bufio.NewScanner(in)

	total := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result := parser.ParseCommand(line, snapshot)
		if err := enc.Encode(result); err != nil {
			logger.Fatal("Error al escribir resultado", zap.Error(err))
		}
		total++
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("Error al leer la entrada", zap.Error(err))
	}

	logger.Info("Lote procesado", zap.Int("commands", total))
}

func applyParserTunables(cfg *config.Config) {
	if cfg.Parser.ScoreCeiling > 0 {
		intent.ScoreCeiling = cfg.Parser.ScoreCeiling
	}
	if cfg.Parser.ProductThreshold > 0 {
		matcher.DefaultThresholds.ProductPhrase = cfg.Parser.ProductThreshold
	}
	if cfg.Parser.ProductTokenThreshold > 0 {
		matcher.DefaultThresholds.ProductToken = cfg.Parser.ProductTokenThreshold
	}
	if cfg.Parser.TermThreshold > 0 {
		matcher.DefaultThresholds.Term = cfg.Parser.TermThreshold
	}
}
