package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"framelight/internal/database"
	"framelight/internal/domain"
)

func main() {
	db, err := database.Connect("framelight.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM service_details")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@framelight.studio",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Studio Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@framelight.studio / admin123")

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Email:        "maya@example.com",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
		Name:         "Maya Client",
		Phone:        "5551234567",
	}
	db.Create(&client)

	// ================== CATALOG ==================
	log.Println("Creating catalog...")

	type seedPackage struct {
		name      string
		price     string
		features  []string
		highlight bool
	}

	catalog := []struct {
		slug     string
		title    string
		desc     string
		packages []seedPackage
	}{
		{
			slug:  "wedding",
			title: "Wedding Photography",
			desc:  "Full-day coverage of your wedding, from preparations to the last dance.",
			packages: []seedPackage{
				{"Silver", "40000", []string{"6 hours coverage", "200 edited photos"}, false},
				{"Gold", "60000", []string{"10 hours coverage", "400 edited photos", "Second shooter"}, true},
				{"Platinum", "90000", []string{"Full day", "600 edited photos", "Second shooter", "Photo album"}, false},
			},
		},
		{
			slug:  "portrait",
			title: "Portrait Sessions",
			desc:  "Studio and outdoor portrait sessions for individuals and families.",
			packages: []seedPackage{
				{"Mini", "8000", []string{"30 minutes", "10 edited photos"}, false},
				{"Classic", "15000", []string{"1 hour", "25 edited photos", "Outfit change"}, true},
			},
		},
		{
			slug:  "product",
			title: "Product Photography",
			desc:  "Clean, consistent product shots for catalogs and online stores.",
			packages: []seedPackage{
				{"Starter", "20000", []string{"Up to 20 products", "White background"}, false},
				{"Studio", "45000", []string{"Up to 60 products", "Styled scenes", "Retouching"}, true},
			},
		},
	}

	for _, entry := range catalog {
		svc := domain.Service{
			Slug:        entry.slug,
			Title:       entry.title,
			Description: entry.desc,
		}
		db.Create(&svc)

		detail := domain.ServiceDetail{
			ServiceID:   svc.ID,
			Title:       entry.title,
			Description: entry.desc,
			Gallery:     []string{},
		}
		db.Create(&detail)

		for i, p := range entry.packages {
			pkg := domain.Package{
				ID:              uuid.NewString(),
				ServiceDetailID: detail.ID,
				Name:            p.name,
				Price:           p.price,
				Features:        p.features,
				Highlight:       p.highlight,
				SortOrder:       i,
			}
			db.Create(&pkg)
		}
		log.Printf("Seeded service %q with %d packages", entry.slug, len(entry.packages))
	}

	// ================== DEMO BOOKING ==================
	var detail domain.ServiceDetail
	db.Where("title = ?", "Wedding Photography").First(&detail)
	var pkg domain.Package
	db.Where("service_detail_id = ? AND name = ?", detail.ID, "Gold").First(&pkg)

	bookingDate, _ := time.Parse("2006-01-02", "2026-10-17")
	db.Create(&domain.Booking{
		UserID:          client.ID,
		ServiceDetailID: detail.ID,
		PackageID:       pkg.ID,
		ServiceTitle:    detail.Title,
		PackageName:     pkg.Name,
		PackagePrice:    pkg.Price,
		PackageFeatures: pkg.Features,
		FullName:        "Maya Client",
		Email:           client.Email,
		Phone:           "5551234567",
		Address:         "12 Garden Lane",
		BookingDate:     bookingDate,
		AmountPaid:      20000,
		PaymentStatus:   domain.PaymentPartial,
		Status:          domain.BookingConfirmed,
	})

	log.Println("Seed complete")
}
