//go:build tools

package main

// Dependencias de herramientas: swag genera docs/swagger.json a partir de
// las anotaciones de los handlers (make docs).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
