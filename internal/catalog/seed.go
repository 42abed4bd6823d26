// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package catalog

import (
	"context"
	"fmt"

	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/models"
)

func ip(v int) *int { return &v }

// DemoCatalog is the bundled sample inventory used for first-run demos
// and tests. Prices are VND.
func DemoCatalog() []models.Laptop {
	return []models.Laptop{
		{
			Name: "ASUS ROG Strix G16", Brand: "Asus",
			CPU: "Intel Core i7-13650HX", RAMGB: 16,
			GPU: "NVIDIA GeForce RTX 4060", Storage: "512GB SSD",
			Screen: "16 inch FHD+ 165Hz", Price: 35_990_000,
			Category:             models.CategoryGaming,
			BatteryCapacityWh:    ip(90),
			BatteryLifeOfficeMin: ip(420), BatteryLifeGamingMin: ip(75),
			CPUSingleCorePlugged: ip(2450), CPUMultiCorePlugged: ip(13800),
			GPUScorePlugged: ip(10500),
			CPUSingleCoreBattery: ip(1720), CPUMultiCoreBattery: ip(9100),
			GPUScoreBattery: ip(5800),
		},
		{
			Name: "Acer Nitro 5", Brand: "Acer",
			CPU: "AMD Ryzen 5 7535HS", RAMGB: 16,
			GPU: "NVIDIA GeForce RTX 3050", Storage: "512GB SSD",
			Screen: "15.6 inch FHD 144Hz", Price: 19_490_000,
			Category:             models.CategoryGaming,
			BatteryCapacityWh:    ip(57),
			BatteryLifeOfficeMin: ip(360), BatteryLifeGamingMin: ip(65),
			CPUSingleCorePlugged: ip(1950), CPUMultiCorePlugged: ip(9200),
			GPUScorePlugged: ip(5400),
			CPUSingleCoreBattery: ip(1540), CPUMultiCoreBattery: ip(7100),
			GPUScoreBattery: ip(3200),
		},
		{
			Name: "MSI Katana 15", Brand: "MSI",
			CPU: "Intel Core i7-13620H", RAMGB: 16,
			GPU: "NVIDIA GeForce RTX 4050", Storage: "1TB SSD",
			Screen: "15.6 inch FHD 144Hz", Price: 26_990_000,
			Category:             models.CategoryGaming,
			BatteryCapacityWh:    ip(53),
			BatteryLifeOfficeMin: ip(330), BatteryLifeGamingMin: ip(60),
			CPUSingleCorePlugged: ip(2320), CPUMultiCorePlugged: ip(12100),
			GPUScorePlugged: ip(8200),
			CPUSingleCoreBattery: ip(1650), CPUMultiCoreBattery: ip(8300),
			GPUScoreBattery: ip(4100),
		},
		{
			Name: "MacBook Pro 14 M3 Pro", Brand: "Apple",
			CPU: "Apple M3 Pro", RAMGB: 18,
			GPU: "Apple M3 Pro 14-core GPU", Storage: "512GB SSD",
			Screen: "14.2 inch Liquid Retina XDR 120Hz", Price: 49_990_000,
			Category:             models.CategoryDesign,
			BatteryCapacityWh:    ip(70),
			BatteryLifeOfficeMin: ip(900),
			CPUSingleCorePlugged: ip(3100), CPUMultiCorePlugged: ip(15200),
			CPUSingleCoreBattery: ip(3080), CPUMultiCoreBattery: ip(15000),
			GPUScorePlugged: ip(9100),
		},
		{
			Name: "Dell XPS 15 9530", Brand: "Dell",
			CPU: "Intel Core i7-13700H", RAMGB: 32,
			GPU: "NVIDIA GeForce RTX 4050", Storage: "1TB SSD",
			Screen: "15.6 inch 3.5K OLED", Price: 52_990_000,
			Category:             models.CategoryDesign,
			BatteryCapacityWh:    ip(86),
			BatteryLifeOfficeMin: ip(540),
			CPUSingleCorePlugged: ip(2500), CPUMultiCorePlugged: ip(13200),
			GPUScorePlugged: ip(7800),
		},
		{
			Name: "Lenovo ThinkPad X1 Carbon Gen 11", Brand: "Lenovo",
			CPU: "Intel Core i7-1355U", RAMGB: 16,
			GPU: "Intel Iris Xe Graphics", Storage: "512GB SSD",
			Screen: "14 inch WUXGA", Price: 38_990_000,
			Category:             models.CategoryDev,
			BatteryCapacityWh:    ip(57),
			BatteryLifeOfficeMin: ip(660),
			CPUSingleCorePlugged: ip(2300), CPUMultiCorePlugged: ip(8300),
		},
		{
			Name: "Dell Inspiron 16 5630", Brand: "Dell",
			CPU: "Intel Core i5-1340P", RAMGB: 16,
			GPU: "Intel Iris Xe Graphics", Storage: "512GB SSD",
			Screen: "16 inch FHD+", Price: 18_990_000,
			Category:             models.CategoryDev,
			BatteryCapacityWh:    ip(54),
			BatteryLifeOfficeMin: ip(480),
			CPUSingleCorePlugged: ip(2250), CPUMultiCorePlugged: ip(9600),
		},
		{
			Name: "ASUS Vivobook 15 OLED", Brand: "Asus",
			CPU: "AMD Ryzen 5 7530U", RAMGB: 16,
			GPU: "AMD Radeon Graphics", Storage: "512GB SSD",
			Screen: "15.6 inch FHD OLED", Price: 14_490_000,
			Category:             models.CategoryStudent,
			BatteryCapacityWh:    ip(42),
			BatteryLifeOfficeMin: ip(420),
			CPUSingleCorePlugged: ip(1900), CPUMultiCorePlugged: ip(8100),
		},
		{
			Name: "HP Pavilion 14", Brand: "HP",
			CPU: "Intel Core i5-1335U", RAMGB: 8,
			GPU: "Intel Iris Xe Graphics", Storage: "512GB SSD",
			Screen: "14 inch FHD", Price: 13_990_000,
			Category:             models.CategoryStudent,
			BatteryCapacityWh:    ip(43),
			BatteryLifeOfficeMin: ip(450),
			CPUSingleCorePlugged: ip(2200), CPUMultiCorePlugged: ip(7800),
		},
		{
			Name: "Lenovo IdeaPad Slim 3", Brand: "Lenovo",
			CPU: "AMD Ryzen 5 7430U", RAMGB: 8,
			GPU: "", Storage: "512GB SSD",
			Screen: "15.6 inch FHD", Price: 11_290_000,
			Category:             models.CategoryStudent,
			BatteryCapacityWh:    ip(47),
			BatteryLifeOfficeMin: ip(430),
		},
		{
			Name: "Acer Aspire 3", Brand: "Acer",
			CPU: "Intel Core i3-N305", RAMGB: 8,
			GPU: "Intel UHD Graphics", Storage: "256GB SSD",
			Screen: "15.6 inch FHD", Price: 8_490_000,
			Category:             models.CategoryOffice,
			BatteryCapacityWh:    ip(40),
			BatteryLifeOfficeMin: ip(390),
		},
		{
			Name: "HP 240 G9", Brand: "HP",
			CPU: "Intel Core i3-1215U", RAMGB: 8,
			GPU: "", Storage: "256GB SSD",
			Screen: "14 inch FHD", Price: 9_190_000,
			Category:             models.CategoryOffice,
			BatteryCapacityWh:    ip(41),
			BatteryLifeOfficeMin: ip(360),
		},
		{
			Name: "Dell Latitude 3440", Brand: "Dell",
			CPU: "Intel Core i5-1335U", RAMGB: 16,
			GPU: "Intel UHD Graphics", Storage: "512GB HDD",
			Screen: "14 inch FHD", Price: 16_790_000,
			Category:             models.CategoryOffice,
			BatteryCapacityWh:    ip(54),
			BatteryLifeOfficeMin: ip(500),
		},
		{
			Name: "MSI Modern 14", Brand: "MSI",
			CPU: "Intel Core i5-1235U", RAMGB: 16,
			GPU: "Intel Iris Xe Graphics", Storage: "512GB SSD",
			Screen: "14 inch FHD", Price: 12_990_000,
			Category:             models.CategoryDev,
			BatteryCapacityWh:    ip(39),
			BatteryLifeOfficeMin: ip(340),
		},
		{
			Name: "ASUS TUF Gaming A15", Brand: "Asus",
			CPU: "AMD Ryzen 7 7735HS", RAMGB: 16,
			GPU: "NVIDIA GeForce RTX 4060", Storage: "512GB SSD",
			Screen: "15.6 inch FHD 144Hz", Price: 28_990_000,
			Category:             models.CategoryGaming,
			BatteryCapacityWh:    ip(90),
			BatteryLifeOfficeMin: ip(450), BatteryLifeGamingMin: ip(80),
			CPUSingleCorePlugged: ip(2150), CPUMultiCorePlugged: ip(11300),
			GPUScorePlugged: ip(10200),
		},
		{
			Name: "Lenovo Legion 5", Brand: "Lenovo",
			CPU: "AMD Ryzen 7 7745HX", RAMGB: 16,
			GPU: "NVIDIA GeForce RTX 4060", Storage: "1TB SSD",
			Screen: "16 inch WQXGA 165Hz", Price: 32_490_000,
			Category:             models.CategoryGaming,
			BatteryCapacityWh:    ip(80),
			BatteryLifeOfficeMin: ip(400), BatteryLifeGamingMin: ip(70),
			CPUSingleCorePlugged: ip(2600), CPUMultiCorePlugged: ip(14600),
			GPUScorePlugged: ip(10800),
		},
	}
}

// SeedIfEmpty inserts the demo catalog when the store has no records.
// It is a no-op on a populated catalog so restarts never duplicate rows.
func SeedIfEmpty(ctx context.Context, s Store) error {
	n, err := s.Count(ctx, Filter{})
	if err != nil {
		return fmt.Errorf("failed to check catalog size: %w", err)
	}
	if n > 0 {
		logging.Debug().Int("laptops", n).Msg("Catalog already populated, skipping seed")
		return nil
	}

	for _, l := range DemoCatalog() {
		if _, err := s.Insert(ctx, l); err != nil {
			return fmt.Errorf("failed to seed laptop %q: %w", l.Name, err)
		}
	}
	logging.Info().Int("laptops", len(DemoCatalog())).Msg("Seeded demo catalog")
	return nil
}
