package dashboard

import (
	"sort"

	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type StoreSummary struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
	Available int    `json:"available"`
	Sold      int    `json:"sold"`
}

// GET /api/dashboard/summary
func SummaryHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stock := repo.Stock()
		sales := repo.Sales()
		stores := repo.Stores()

		totalAvailable := 0
		for _, s := range stock {
			if s.Status == models.StockAvailable {
				totalAvailable++
			}
		}

		perStore := make([]StoreSummary, 0, len(stores))
		for _, store := range stores {
			summary := StoreSummary{StoreID: store.ID, StoreName: store.Name}
			for _, s := range stock {
				if s.StoreID == store.ID && s.Status == models.StockAvailable {
					summary.Available++
				}
			}
			for _, sale := range sales {
				if sale.StoreID == store.ID {
					summary.Sold++
				}
			}
			perStore = append(perStore, summary)
		}

		return c.JSON(fiber.Map{
			"totalAvailable": totalAvailable,
			"totalSales":     len(sales),
			"stores":         perStore,
			"counts": fiber.Map{
				"stores":     len(stores),
				"users":      len(repo.Users()),
				"transfers":  len(repo.Transfers()),
				"activities": len(repo.ActivityLogs()),
			},
		})
	}
}

type ModelGroup struct {
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Quantity int      `json:"quantity"`
	Serials  []string `json:"serials"`
}

type StoreReport struct {
	StoreID   string       `json:"storeId"`
	StoreName string       `json:"storeName"`
	Available int          `json:"available"`
	Models    []ModelGroup `json:"models"`
}

type SoldItem struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	StoreID      string `json:"storeId"`
}

// GET /api/reports/stock — per-store available units grouped by
// brand+model, plus the sold list.
func StockReportHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stock := repo.Stock()
		stores := repo.Stores()

		products := make(map[string]models.Product)
		for _, p := range repo.Products() {
			products[p.ID] = p
		}

		reports := make([]StoreReport, 0, len(stores))
		totalAvailable := 0
		for _, store := range stores {
			report := StoreReport{StoreID: store.ID, StoreName: store.Name}
			groups := make(map[string]*ModelGroup)
			for _, s := range stock {
				if s.StoreID != store.ID || s.Status != models.StockAvailable {
					continue
				}
				report.Available++
				totalAvailable++

				p := products[s.ProductID]
				key := p.Brand + "\x00" + p.Model
				g, ok := groups[key]
				if !ok {
					g = &ModelGroup{Brand: p.Brand, Model: p.Model}
					groups[key] = g
				}
				g.Quantity++
				g.Serials = append(g.Serials, s.SerialNumber)
			}

			report.Models = make([]ModelGroup, 0, len(groups))
			for _, g := range groups {
				report.Models = append(report.Models, *g)
			}
			sort.Slice(report.Models, func(i, j int) bool {
				a, b := report.Models[i], report.Models[j]
				if a.Brand != b.Brand {
					return a.Brand < b.Brand
				}
				return a.Model < b.Model
			})

			reports = append(reports, report)
		}

		sold := make([]SoldItem, 0)
		for _, s := range stock {
			if s.Status != models.StockSold {
				continue
			}
			p := products[s.ProductID]
			sold = append(sold, SoldItem{
				Brand:        p.Brand,
				Model:        p.Model,
				SerialNumber: s.SerialNumber,
				StoreID:      s.StoreID,
			})
		}

		return c.JSON(fiber.Map{
			"stores": reports,
			"sold":   sold,
			"totals": fiber.Map{
				"available": totalAvailable,
				"sold":      len(sold),
				"tracked":   len(stock),
			},
		})
	}
}
