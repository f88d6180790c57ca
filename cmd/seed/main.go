package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kashvi-creations/storefront-api/config"
	"github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

type seedProduct struct {
	title        string
	description  string
	designNumber string
	price        float64
	salePrice    float64
	stock        int
}

var demoProducts = []seedProduct{
	{"Banarasi Silk Saree", "Handwoven Banarasi silk saree with zari border", "KC-1001", 4999, 3999, 12},
	{"Chanderi Cotton Saree", "Lightweight Chanderi cotton for daily wear", "KC-1002", 1899, 1499, 30},
	{"Kanjeevaram Bridal Saree", "Pure Kanjeevaram silk in temple red", "KC-1003", 10999, 9499, 5},
	{"Georgette Party Saree", "Sequined georgette saree with blouse piece", "KC-1004", 2499, 1999, 18},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@kashvicreations.com"
	password := "KashviAdmin@2024"
	name := "storeAdmin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (user_name, email, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE SET user_name = EXCLUDED.user_name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	var seeded []entity.Product
	for _, p := range demoProducts {
		var prod entity.Product
		err := db.QueryRow(`
			INSERT INTO products (title, description, design_number, price, sale_price, total_stock)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (design_number) WHERE design_number <> '' DO UPDATE SET
				title = EXCLUDED.title,
				price = EXCLUDED.price,
				sale_price = EXCLUDED.sale_price,
				total_stock = EXCLUDED.total_stock
			RETURNING id, title, description, design_number, price, sale_price, total_stock
		`, p.title, p.description, p.designNumber, p.price, p.salePrice, p.stock).
			Scan(&prod.ID, &prod.Title, &prod.Description, &prod.DesignNumber, &prod.Price, &prod.SalePrice, &prod.TotalStock)
		if err != nil {
			log.Fatalf("failed to seed product %s: %v", p.designNumber, err)
		}
		seeded = append(seeded, prod)
	}
	fmt.Printf("seeded %d products\n", len(seeded))

	// Index into Elasticsearch so search works out of the box; skip quietly
	// when the cluster is not reachable.
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Printf("elasticsearch unavailable, skipping index: %v", err)
		return
	}
	svc := application.NewProductService(nil, es, cfg.ESProductsIndex, nil)
	ctx := context.Background()
	for i := range seeded {
		if err := svc.Index(ctx, &seeded[i]); err != nil {
			log.Printf("index %s failed: %v", seeded[i].DesignNumber, err)
		}
	}
	fmt.Println("indexed products into elasticsearch")
}
