// Command seed prepares a fresh database: it creates the admin user row and,
// when the catalog is empty, a handful of starter services.
package main

import (
	"flag"
	"log"

	"github.com/maitaibeauty/site/internal/database"
	"github.com/maitaibeauty/site/internal/store"
)

func main() {
	dbPath := flag.String("db", "maitai.db", "path to the sqlite database")
	username := flag.String("username", "admin", "admin username to create")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	users := store.NewUserStore(db)
	existing, err := users.GetByUsername(*username)
	if err != nil {
		log.Fatalf("look up user: %v", err)
	}
	if existing != nil {
		log.Printf("user %q already exists, skipping", *username)
	} else {
		u, err := users.Create(*username, *password)
		if err != nil {
			log.Fatalf("create user: %v", err)
		}
		log.Printf("created user %q (id=%d)", u.Username, u.ID)
	}

	services := store.NewServiceStore(db)
	active, err := services.ListActive()
	if err != nil {
		log.Fatalf("list services: %v", err)
	}
	if len(active) > 0 {
		log.Printf("catalog already has %d services, skipping", len(active))
		return
	}

	price := func(s string) *string { return &s }
	starters := []struct {
		title, description, image, details string
		price                              *string
	}{
		{"Manucure", "Soin complet des mains", "/uploads/manucure.jpg", "Limage, soin des cuticules et pose de vernis.", price("3 500 XPF")},
		{"Soin du visage", "Nettoyage et hydratation en profondeur", "/uploads/visage.jpg", "Soin adapté à votre type de peau, 60 minutes.", price("6 000 XPF")},
		{"Massage polynésien", "Détente traditionnelle au monoï", "/uploads/massage.jpg", "Massage taurumi du corps entier, 90 minutes.", nil},
	}
	for _, s := range starters {
		svc, err := services.Create(s.title, s.description, s.image, s.details, s.price, true)
		if err != nil {
			log.Fatalf("create service %q: %v", s.title, err)
		}
		log.Printf("created service %q (id=%d)", svc.Title, svc.ID)
	}
}
