package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
)

func CategoryFaker(position int) *models.Category {
	title := fmt.Sprintf("%s %d", faker.Word(), rand.Intn(10000))

	return &models.Category{
		Title:     title,
		Handle:    helpers.TitleToHandle(title),
		Position:  position,
		UpdatedAt: time.Now(),
	}
}
