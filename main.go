package main

import (
	"log"
	"net/http"
	"os"

	"github.com/yaarastore/backend/app/cmd"
	"github.com/yaarastore/backend/app/configs"
	"github.com/yaarastore/backend/app/models/migrations"
	"github.com/yaarastore/backend/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)

	}
	log.Println("✅ Database connected.")

	if err := migrations.AutoMigrate(db); err != nil {
		log.Fatal("Schema sync failed:", err)
	}
	log.Println("✅ Schema synchronized.")

	router := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
