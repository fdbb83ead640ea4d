// Package localstore implementa el almacén persistente local de la demo:
// un directorio con un archivo JSON por clave lógica (users, products,
// sales, contacts, session, seeded). No hay base de datos real; cada
// colección se lee y escribe como snapshot completo.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Claves lógicas del almacén.
const (
	KeyUsers    = "users"
	KeyProducts = "products"
	KeySales    = "sales"
	KeyContacts = "contacts"
	KeySession  = "session"
	KeySeeded   = "seeded"
)

// Store es el accesor tipado sobre el directorio de datos. Las lecturas que
// fallan (clave ausente, payload malformado) devuelven el fallback del
// llamador en vez de propagar error: disponibilidad antes que corrección
// estricta en el contexto de una demo local.
type Store struct {
	dir  string
	ioMu sync.Mutex // serializa el acceso a archivos
	txMu sync.Mutex // candado de la transacción lógica (ver Run)
}

// Open prepara el directorio de datos y devuelve el almacén.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Run ejecuta fn bajo el candado de transacción: nada más puede correr entre
// la lectura del snapshot y la escritura de vuelta, así que la secuencia
// leer-calcular-escribir se comporta como una sola transacción. Implementa
// repository.TxRunner.
func (s *Store) Run(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn()
}

// Get lee la clave y decodifica en T; cualquier fallo devuelve fallback.
func Get[T any](s *Store, key string, fallback T) T {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

// Set codifica value como JSON y lo escribe de forma atómica
// (archivo temporal + rename).
func Set[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	tmp := filepath.Join(s.dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Remove elimina la clave. Quitar una clave ausente no es error.
func (s *Store) Remove(key string) error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Reset borra todas las claves conocidas (la demo puede reiniciarse desde
// cero en cualquier arranque).
func (s *Store) Reset() error {
	for _, key := range []string{KeyUsers, KeyProducts, KeySales, KeyContacts, KeySession, KeySeeded} {
		if err := s.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// Seeded indica si el dataset inicial ya fue sembrado.
func (s *Store) Seeded() bool {
	return Get(s, KeySeeded, false)
}

// MarkSeeded persiste la marca de sembrado.
func (s *Store) MarkSeeded() error {
	return Set(s, KeySeeded, true)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
