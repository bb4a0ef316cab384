package domain

import (
	"errors"
	"time"
)

// Access levels stored in usuarios.nivel_liberacao.
const (
	RoleAdmin       = "ADMIN"
	RoleSolicitante = "SOLICITANTE"
	RoleAprovador   = "APROVADOR"
	RoleCompras     = "COMPRAS"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models an authenticated actor. Users are provisioned out-of-band (see
// cmd/create_user); the API only reads them. The password hash never leaves
// the server: it is excluded from JSON serialization.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Nome           string    `json:"nome" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"size:255"`
	Username       string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Senha          string    `json:"-" gorm:"size:255;not null"`
	Setor          string    `json:"setor" gorm:"size:100"`
	NivelLiberacao string    `json:"nivel_liberacao" gorm:"column:nivel_liberacao;size:20;not null;default:SOLICITANTE"`
	Ativo          bool      `json:"-" gorm:"not null;default:true"`
	CriadoEm       time.Time `json:"-" gorm:"column:criado_em;autoCreateTime"`
}

func (User) TableName() string { return "usuarios" }
