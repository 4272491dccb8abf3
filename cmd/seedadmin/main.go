// Command seedadmin creates the administrator role and an initial admin
// account. Intended for first-time setup:
//
//	ADMIN_EMAIL=admin@refugio.org ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("ADMIN_EMAIL y ADMIN_PASSWORD son requeridos")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rol := &model.Rol{ID: cfg.AdminRolID, Nombre: "Administrador"}
		if err := tx.FirstOrCreate(rol, model.Rol{ID: cfg.AdminRolID}).Error; err != nil {
			return err
		}
		usuarioRol := &model.Rol{ID: 2, Nombre: "Usuario"}
		if err := tx.FirstOrCreate(usuarioRol, model.Rol{ID: 2}).Error; err != nil {
			return err
		}

		var existente model.Usuario
		err := tx.Where("LOWER(email) = LOWER(?)", email).First(&existente).Error
		if err == nil {
			log.Info().Str("email", email).Msg("el administrador ya existe, nada que hacer")
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			return err
		}
		admin := &model.Usuario{
			Alias:        "admin",
			Email:        email,
			PasswordHash: string(hash),
			RolID:        cfg.AdminRolID,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		persona := &model.Persona{
			UsuarioID: admin.ID,
			Nombres:   "Administrador",
			Apellidos: "Refugio",
			DNI:       "00000000",
			Sexo:      "M",
		}
		return tx.Create(persona).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo sembrar el administrador")
	}

	log.Info().Str("email", email).Msg("administrador listo")
}
