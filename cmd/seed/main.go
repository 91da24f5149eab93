package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/quickhaul/logistics-backend/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	recipientID := "seed-recipient-1"
	if _, err := db.Exec(`
		INSERT INTO recipients (id, name, phone, address, memo)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET phone = EXCLUDED.phone, address = EXCLUDED.address
	`, recipientID, "Kim Minji", "010-1111-2222", "12 Teheran-ro, Gangnam-gu, Seoul", "leave at the door"); err != nil {
		log.Fatalf("failed to seed recipient: %v", err)
	}
	fmt.Printf("seeded recipient: id=%s\n", recipientID)

	contactID := "seed-contact-1"
	if _, err := db.Exec(`
		INSERT INTO contacts (id, business_name, phone, address, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET phone = EXCLUDED.phone, address = EXCLUDED.address
	`, contactID, "Acme Trading", "02-555-0100", "3 Mapo-daero, Mapo-gu, Seoul", "regular sender"); err != nil {
		log.Fatalf("failed to seed contact: %v", err)
	}
	fmt.Printf("seeded contact: id=%s\n", contactID)

	deliveryID := "seed-delivery-1"
	if _, err := db.Exec(`
		INSERT INTO deliveries (id, recipient_id, pickup_place, box_count, settlement, fee, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'PICKED_UP', $7)
		ON CONFLICT (id) DO NOTHING
	`, deliveryID, recipientID, "Warehouse A", 3, "PREPAID", 5000, time.Now().UTC()); err != nil {
		log.Fatalf("failed to seed delivery: %v", err)
	}
	fmt.Printf("seeded delivery: id=%s\n", deliveryID)
}
