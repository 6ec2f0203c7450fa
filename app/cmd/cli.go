package cmd

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/yaarastore/backend/app/configs"
	"github.com/yaarastore/backend/app/db/backup"
	"github.com/yaarastore/backend/app/db/seeders"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/models/migrations"
	"github.com/yaarastore/backend/app/services"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with demo data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "insert-user",
				Usage: "Create an admin user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					hashed, err := helpers.HashPassword(c.String("password"))
					if err != nil {
						return err
					}
					user := &models.User{
						Username: c.String("username"),
						Email:    c.String("email"),
						Password: hashed,
					}
					if err := db.Create(user).Error; err != nil {
						return err
					}
					log.Printf("✅ User %s created", user.Username)
					return nil
				},
			},
			{
				Name:  "reset-mock",
				Usage: "Wipe the catalog and orders and reload them from mock data",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Value: "app/db/mockdata/mock-data.json"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := services.NewMockResetService(db, c.String("file"), true).Reset(ctx); err != nil {
						return err
					}
					log.Println("✅ Mock data reset complete")
					return nil
				},
			},
			{
				Name:  "backup",
				Usage: "Export all store data and images to a local directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Value: "backups"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					dir, err := backup.Run(db, c.String("dir"))
					if err != nil {
						return err
					}
					log.Printf("✅ Backup written to %s", dir)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
