// Command seed populates a PostgreSQL database with a synthetic entity
// graph for development and load testing. It drops and recreates the
// schema first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/internal/store/postgres"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/database"
)

var (
	basestations = flag.Int("basestations", 5, "Number of basestations to create")
	telecells    = flag.Int("telecells", 200, "Number of telecells to create")
	assets       = flag.Int("assets", 500, "Number of assets to create")
	users        = flag.Int("users", 3, "Number of users to create")
	seed         = flag.Int64("seed", 0, "Random seed (0 picks one)")
)

func main() {
	flag.Parse()
	gofakeit.Seed(*seed)

	ctx := context.Background()
	db, err := database.New(ctx, database.FromGlobalConfig(config.New()))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Reset(ctx, db); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := run(ctx, postgres.New(db)); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

func run(ctx context.Context, st store.Store) error {
	bsIDs := make([]int64, 0, *basestations)
	for i := 0; i < *basestations; i++ {
		bs, err := st.Basestations().Create(ctx, &store.Basestation{
			UUID:     int64(100000 + i),
			Status:   store.StatusActive,
			Location: randomLocation(),
			Version:  store.DefaultBasestationVersion,
		})
		if err != nil {
			return fmt.Errorf("create basestation: %w", err)
		}
		bsIDs = append(bsIDs, bs.ID)
	}
	log.Printf("Created %d basestations", len(bsIDs))

	tcIDs := make([]int64, 0, *telecells)
	for i := 0; i < *telecells; i++ {
		tc := &store.Telecell{
			UUID:     int64(900000 + i),
			Relay:    gofakeit.Bool(),
			Status:   store.StatusActive,
			Location: randomLocation(),
		}
		if len(bsIDs) > 0 && gofakeit.Number(0, 9) > 0 {
			tc.BasestationID = &bsIDs[gofakeit.Number(0, len(bsIDs)-1)]
		}
		created, err := st.Telecells().Create(ctx, tc)
		if err != nil {
			return fmt.Errorf("create telecell: %w", err)
		}
		tcIDs = append(tcIDs, created.ID)
	}
	log.Printf("Created %d telecells", len(tcIDs))

	elements := 0
	for i := 0; i < *assets; i++ {
		a := &store.Asset{Status: store.StatusActive}
		// Roughly one asset in twenty has no surveyed coordinate.
		if gofakeit.Number(0, 19) > 0 {
			a.Location = randomLocation()
		}
		created, err := st.Assets().Create(ctx, a)
		if err != nil {
			return fmt.Errorf("create asset: %w", err)
		}
		for j := 0; j < gofakeit.Number(1, 3); j++ {
			el := &store.Element{
				Description: gofakeit.ProductName(),
				Status:      store.StatusActive,
				AssetID:     &created.ID,
			}
			if len(tcIDs) > 0 && gofakeit.Number(0, 3) > 0 {
				el.TelecellID = &tcIDs[gofakeit.Number(0, len(tcIDs)-1)]
			}
			if _, err := st.Elements().Create(ctx, el); err != nil {
				return fmt.Errorf("create element: %w", err)
			}
			elements++
		}
	}
	log.Printf("Created %d assets with %d elements", *assets, elements)

	for i := 0; i < *users; i++ {
		if _, err := st.Users().Create(ctx, &store.User{
			Username:   gofakeit.Username(),
			HashedPass: gofakeit.Password(true, true, true, false, false, 60),
			Role:       store.Role(gofakeit.Number(1, 3)),
		}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
	}
	log.Printf("Created %d users", *users)

	return nil
}

func randomLocation() *store.Location {
	return &store.Location{
		Latitude:  gofakeit.Float64Range(55.55, 55.85),
		Longitude: gofakeit.Float64Range(12.45, 12.65),
	}
}
