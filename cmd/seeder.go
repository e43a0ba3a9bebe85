package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/danupratama/category-admin/internal/category"
	"github.com/danupratama/category-admin/internal/storage"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the persisted store snapshot with sample categories",
	Long:  `Write the sample category set as the persisted dashboard snapshot, for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := storage.Open(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		kv := storage.NewGormStore(db)

		if clearSnapshot {
			if err := kv.Delete(cfg.Store.Name); err != nil {
				log.Fatalf("failed to clear snapshot: %v", err)
			}
			fmt.Println("Cleared existing snapshot:", cfg.Store.Name)
		}

		payload, err := json.Marshal(struct {
			Categories       []category.Category `json:"categories"`
			SelectedCategory *category.Category  `json:"selectedCategory"`
		}{
			Categories: category.SampleCategories(),
		})
		if err != nil {
			log.Fatalf("failed to encode snapshot: %v", err)
		}

		if err := kv.Save(cfg.Store.Name, payload); err != nil {
			log.Fatalf("failed to save snapshot: %v", err)
		}

		fmt.Println("Seeded snapshot:", cfg.Store.Name)
	},
}
