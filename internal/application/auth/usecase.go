package auth

import (
	"time"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/domain"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/domain/repository"
	"github.com/jhoicas/panaderia-demo/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación sobre la sesión única persistida.
//
// El password se compara en texto plano: comportamiento explícito de la
// demo local, no una postura de producción.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, sessions repository.SessionRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, sessions: sessions, jwtCfg: jwtCfg}
}

// Login verifica email/password contra los usuarios activos, sobreescribe la
// sesión única (el último login gana) y retorna token + usuario.
// Retorna ErrInvalidCredentials si ningún usuario activo calza exacto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *entity.User
	for _, u := range uc.users.List() {
		if u.Active && u.Email == in.Email && u.Password == in.Password {
			user = &u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Put(entity.Session{Token: token, UserID: user.ID, At: time.Now()}); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Logout limpia la sesión incondicionalmente. Idempotente.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}

// CurrentUser resuelve la sesión vigente contra la colección de usuarios.
// Retorna nil si no hay sesión, si el usuario ya no existe o si fue
// desactivado después del login (la desactivación es el único mecanismo de
// bloqueo del panel, así que el flag se re-chequea en cada resolución).
func (uc *UseCase) CurrentUser() *dto.UserResponse {
	s := uc.sessions.Get()
	if s == nil {
		return nil
	}
	u := uc.users.GetByID(s.UserID)
	if u == nil || !u.Active {
		return nil
	}
	return toUserResponse(u)
}

// CurrentCashierID devuelve el id del usuario autenticado, o el centinela
// CashierNone si nadie ha iniciado sesión. Lo consume la creación de ventas.
func (uc *UseCase) CurrentCashierID() int64 {
	u := uc.CurrentUser()
	if u == nil {
		return entity.CashierNone
	}
	return u.ID
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Roles:  u.Roles,
		Active: u.Active,
	}
}
