package main

import (
	"wander/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserProfileModel{},
		model.MerchantProfileModel{},
		model.MerchantListingModel{},
		model.TripPlanModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
