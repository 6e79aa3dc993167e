package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
)

// Prints a verification report over an ingested store: row counts per table
// and the usual data-quality suspects (photos whose check-in was never seen,
// venues that never resolved coordinates).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	dbPath := flag.String("db", cfg.DBPath, "path of the SQLite store")
	flag.Parse()

	db, err := (config.Store{Path: *dbPath}).Open()
	if err != nil {
		if errors.Is(err, config.ErrStoreNotFound) {
			fmt.Fprintf(os.Stderr, "store %s not found, run the importer first\n", *dbPath)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	defer config.Close(db)

	tables := []struct {
		name  string
		model any
	}{
		{"venues", &models.Venue{}},
		{"checkins", &models.Checkin{}},
		{"photos", &models.Photo{}},
		{"users", &models.User{}},
		{"friends", &models.Friend{}},
		{"visits", &models.Visit{}},
		{"unconfirmed_visits", &models.UnconfirmedVisit{}},
		{"tips", &models.Tip{}},
		{"comments", &models.Comment{}},
		{"venue_ratings", &models.VenueRating{}},
		{"expertise", &models.Expertise{}},
		{"plans", &models.Plan{}},
		{"shares", &models.Share{}},
	}

	fmt.Println("--- Row counts ---")
	for _, t := range tables {
		var count int64
		if err := db.Model(t.model).Count(&count).Error; err != nil {
			fmt.Fprintf(os.Stderr, "count %s: %v\n", t.name, err)
			continue
		}
		fmt.Printf("%-20s %d\n", t.name, count)
	}

	fmt.Println("\n--- Photos without a matching check-in ---")
	var orphanPhotos int64
	err = db.Table("photos").
		Joins("LEFT JOIN checkins ON checkins.id = photos.checkin_id").
		Where("photos.checkin_id IS NOT NULL AND checkins.id IS NULL").
		Count(&orphanPhotos).Error
	reportCount(orphanPhotos, err, "photos reference a check-in that was never imported")

	var unlinkedPhotos int64
	err = db.Model(&models.Photo{}).Where("checkin_id IS NULL").Count(&unlinkedPhotos).Error
	reportCount(unlinkedPhotos, err, "photos carry no check-in reference at all")

	fmt.Println("\n--- Venues without coordinates ---")
	var blindVenues int64
	err = db.Model(&models.Venue{}).Where("lat IS NULL OR lng IS NULL").Count(&blindVenues).Error
	reportCount(blindVenues, err, "venues never resolved coordinates")
	if blindVenues > 0 {
		var samples []models.Venue
		if err := db.Where("lat IS NULL OR lng IS NULL").Limit(5).Find(&samples).Error; err == nil {
			for _, v := range samples {
				name := "(unnamed)"
				if v.Name != nil {
					name = *v.Name
				}
				fmt.Printf("  %s  %s\n", v.ID, name)
			}
		}
	}
}

func reportCount(n int64, err error, what string) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("%d %s\n", n, what)
}
