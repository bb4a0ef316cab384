package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suprimentos/requisition-system/internal/core/domain"
)

// Users are provisioned from the command line; the API itself never creates
// them.
func main() {
	nome := flag.String("nome", "", "full name")
	username := flag.String("username", "", "login handle")
	senha := flag.String("senha", "", "plain password, hashed before storage")
	email := flag.String("email", "", "email address")
	setor := flag.String("setor", "", "department")
	nivel := flag.String("nivel", domain.RoleSolicitante, "access level: ADMIN, SOLICITANTE, APROVADOR or COMPRAS")
	flag.Parse()

	if *nome == "" || *username == "" || *senha == "" {
		fmt.Println("usage: create_user -nome <nome> -username <username> -senha <senha> [-email ...] [-setor ...] [-nivel ...]")
		os.Exit(2)
	}

	switch *nivel {
	case domain.RoleAdmin, domain.RoleSolicitante, domain.RoleAprovador, domain.RoleCompras:
	default:
		log.Fatalf("unknown access level: %s", *nivel)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("POSTGRES_DSN not set in environment")
	}
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatalf("failed to migrate usuarios: %v", err)
	}

	var existing domain.User
	if err := db.Where("username = ?", *username).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", *username, existing.ID)
		os.Exit(0)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}

	user := domain.User{
		Nome:           *nome,
		Email:          *email,
		Username:       *username,
		Senha:          string(hash),
		Setor:          *setor,
		NivelLiberacao: *nivel,
		Ativo:          true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s id=%d nivel=%s\n", user.Username, user.ID, user.NivelLiberacao)
}
