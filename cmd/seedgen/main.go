package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
)

// Genera el seed del catálogo a partir de un export JSON del
// inventario de la tienda. El resultado es el yaml que carga
// CatalogService al arrancar.
func main() {
	var (
		inputPath  = flag.String("input", "storage/inventario.json", "export JSON del inventario")
		outputPath = flag.String("output", "config/catalog.yaml", "destino del seed yaml")
	)
	flag.Parse()

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error al leer %s: %v", *inputPath, err)
	}

	var snapshot models.CatalogSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Fatalf("Error al parsear el inventario: %v", err)
	}

	if len(snapshot.Products) == 0 {
		log.Fatal("El inventario no tiene productos")
	}

	out, err := yaml.Marshal(&snapshot)
	if err != nil {
		log.Fatalf("Error al generar yaml: %v", err)
	}

	if err := os.WriteFile(*outputPath, out, 0o644); err != nil {
		log.Fatalf("Error al escribir %s: %v", *outputPath, err)
	}

	fmt.Printf("Seed generado en %s: %d productos, %d categorías, %d proveedores\n",
		*outputPath, len(snapshot.Products), len(snapshot.Categories), len(snapshot.Suppliers))
}
