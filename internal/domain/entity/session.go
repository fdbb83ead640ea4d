package entity

import "time"

// Session es el registro único de autenticación vigente (tabla lógica de
// una fila): el último login gana y el logout la limpia.
type Session struct {
	Token  string    `json:"token"`
	UserID int64     `json:"userId"`
	At     time.Time `json:"at"`
}
