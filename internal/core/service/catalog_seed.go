package service

import (
	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// defaultCatalog is the fixed dataset used to bootstrap an empty catalog.
func defaultCatalog() []ports.SeedMake {
	return []ports.SeedMake{
		{
			Make: domain.CarMake{Name: "NISSAN", Description: "Great cars. Japanese technology"},
			Models: []domain.CarModel{
				{Name: "Pathfinder", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "Qashqai", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "XTRAIL", Type: domain.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Mercedes", Description: "Great cars. German technology"},
			Models: []domain.CarModel{
				{Name: "A-Class", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "C-Class", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "E-Class", Type: domain.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Audi", Description: "Great cars. German technology"},
			Models: []domain.CarModel{
				{Name: "A4", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "A5", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "A6", Type: domain.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Kia", Description: "Great cars. Korean technology"},
			Models: []domain.CarModel{
				{Name: "Sorrento", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "Carnival", Type: domain.CarTypeSUV, Year: 2023},
				{Name: "Cerato", Type: domain.CarTypeSedan, Year: 2023},
			},
		},
		{
			Make: domain.CarMake{Name: "Toyota", Description: "Great cars. Japanese technology"},
			Models: []domain.CarModel{
				{Name: "Corolla", Type: domain.CarTypeSedan, Year: 2023},
				{Name: "Camry", Type: domain.CarTypeSedan, Year: 2023},
				{Name: "Kluger", Type: domain.CarTypeSUV, Year: 2023},
			},
		},
	}
}
