package main

import (
	"fmt"
	"log"
	"os"

	"pluggedin/internal/database"
	"pluggedin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "pluggedin.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM business_posts")
	db.Exec("DELETE FROM businesses")
	db.Exec("DELETE FROM password_resets")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	emails := []string{"sam@uni.edu", "riley@uni.edu", "jordan@uni.edu", "casey@uni.edu"}
	names := []string{"Sam", "Riley", "Jordan", "Casey"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         names[i],
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== BUSINESSES ==================
	log.Println("Creating businesses...")

	str := func(s string) *string { return &s }

	businesses := []domain.Business{
		{
			UserID:       users[0].ID,
			OwnerName:    "Sam",
			BusinessName: "Sam's Snacks",
			Tagline:      "Late-night snack runs for the dorms",
			Description:  "Homemade cookies and snack boxes delivered on campus.",
			CategoryID:   int(domain.CategoryFoodBaking),
			ContactEmail: "sam@uni.edu",
			ContactPhone: str("5551234567"),
			IsVerified:   true,
		},
		{
			UserID:          users[1].ID,
			OwnerName:       "Riley",
			BusinessName:    "Riley's Braids",
			Tagline:         "Protective styles between classes",
			Description:     "Braiding and styling out of the east residence hall.",
			CategoryID:      int(domain.CategoryBeautyHair),
			ContactEmail:    "riley@uni.edu",
			InstagramHandle: str("rileybraids"),
		},
		{
			UserID:       users[2].ID,
			OwnerName:    "Jordan",
			BusinessName: "Campus Threads",
			Tagline:      "Custom tees and thrift flips",
			Description:  "Screen printing and upcycled clothing for students.",
			CategoryID:   int(domain.CategoryFashion),
			ContactEmail: "jordan@uni.edu",
			WebsiteURL:   str("https://campusthreads.example"),
		},
		{
			UserID:       users[3].ID,
			OwnerName:    "Casey",
			BusinessName: "Notes & Tutoring Co",
			Description:  "Exam prep sessions for intro math and physics.",
			CategoryID:   int(domain.CategoryTutoring),
			ContactEmail: "casey@uni.edu",
		},
	}
	for i := range businesses {
		db.Create(&businesses[i])
	}

	// ================== POSTS ==================
	log.Println("Creating posts...")
	posts := []domain.Post{
		{
			BusinessID: businesses[0].ID,
			UserID:     users[0].ID,
			Title:      "Midterm fuel boxes are back",
			ImageURL:   "/static/uploads/post-images/seed-1.jpg",
		},
		{
			BusinessID: businesses[1].ID,
			UserID:     users[1].ID,
			Title:      "Knotless braids, fresh set",
			ImageURL:   "/static/uploads/post-images/seed-2.jpg",
		},
		{
			BusinessID: businesses[2].ID,
			UserID:     users[2].ID,
			Title:      "New drop: spring tees",
			ImageURL:   "/static/uploads/post-images/seed-3.jpg",
		},
	}
	for i := range posts {
		db.Create(&posts[i])
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	reviews := []domain.Review{
		{BusinessID: businesses[0].ID, UserID: users[1].ID, ReviewerName: "Riley", Rating: 5},
		{BusinessID: businesses[0].ID, UserID: users[2].ID, ReviewerName: "Jordan", Rating: 4},
		{BusinessID: businesses[1].ID, UserID: users[0].ID, ReviewerName: "Sam", Rating: 5},
		{BusinessID: businesses[2].ID, UserID: users[3].ID, ReviewerName: "Casey", Rating: 4},
	}
	for i := range reviews {
		db.Create(&reviews[i])
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	for _, email := range emails {
		log.Println(fmt.Sprintf("  %s / student123", email))
	}
}
