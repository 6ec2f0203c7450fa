package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
)

func UserFaker() *models.User {
	hashed, err := helpers.HashPassword("password")
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		Username: faker.Username(),
		Email:    faker.Email(),
		Password: hashed,
	}
}
