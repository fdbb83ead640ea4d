// Comando reset: borra todas las claves del almacén local para que el
// próximo arranque vuelva a sembrar el dataset inicial (la demo no es una
// base de datos durable; reiniciarla es un flujo soportado).
package main

import (
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
	"github.com/jhoicas/panaderia-demo/pkg/config"
	"github.com/jhoicas/panaderia-demo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := localstore.Open(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	if err := store.Reset(); err != nil {
		log.Fatal().Err(err).Msg("reiniciar almacén")
	}

	log.Info().Str("store", cfg.Store.Dir).Msg("almacén reiniciado; el próximo arranque vuelve a sembrar")
}
