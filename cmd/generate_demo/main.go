// Command generate_demo creates a demo database with public domain books, FAQs,
// UI translations and a few reviews.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/myapp/bookstore/internal/auth"
	"github.com/myapp/bookstore/internal/database"
	"github.com/myapp/bookstore/internal/database/books"
	"github.com/myapp/bookstore/internal/database/faqs"
	"github.com/myapp/bookstore/internal/database/reviews"
	"github.com/myapp/bookstore/internal/database/translations"
	"github.com/myapp/bookstore/internal/database/users"
	"github.com/myapp/bookstore/internal/entities"
	"github.com/myapp/bookstore/internal/logging"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	logging.Init("info", true)
	log.Info().Str("path", *dbPath).Msg("Generating demo database")

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to remove existing demo database")
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create demo directory")
	}

	db, err := database.NewDatabase(database.DriverSQLite, *dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database")
	}
	defer db.Close()

	ctx := context.Background()

	bookRepo := books.NewRepository(db.DB)
	saved := make([]entities.Book, 0)
	for _, book := range publicDomainBooks() {
		if err := bookRepo.CreateBook(ctx, &book); err != nil {
			log.Error().Err(err).Str("title", book.Title).Msg("Failed to save book")
			continue
		}
		saved = append(saved, book)
		log.Info().Str("title", book.Title).Str("author", book.Author).Msg("Saved")
	}

	faqRepo := faqs.NewRepository(db.DB)
	for _, faq := range demoFaqs() {
		if err := faqRepo.CreateFaq(ctx, &faq); err != nil {
			log.Error().Err(err).Str("question", faq.Question).Msg("Failed to save FAQ")
		}
	}

	translationRepo := translations.NewRepository(db.DB)
	for language, values := range demoTranslations() {
		if err := translationRepo.UpsertTranslations(ctx, language, values); err != nil {
			log.Error().Err(err).Str("language", language).Msg("Failed to save translations")
		}
	}

	reader := createDemoUser(ctx, users.NewRepository(db.DB))
	if reader != nil {
		addReviews(ctx, reviews.NewRepository(db.DB), reader, saved)
	}

	log.Info().Int("books", len(saved)).Msg("Demo database generated successfully")
}

func publicDomainBooks() []entities.Book {
	return []entities.Book{
		{Title: "Война и мир", Author: "Лев Толстой", Genre: "Роман", Language: "Русский", Age: "16+", Year: 1869},
		{Title: "Анна Каренина", Author: "Лев Толстой", Genre: "Роман", Language: "Русский", Age: "16+", Year: 1877},
		{Title: "Преступление и наказание", Author: "Фёдор Достоевский", Genre: "Роман", Language: "Русский", Age: "16+", Year: 1866},
		{Title: "Братья Карамазовы", Author: "Фёдор Достоевский", Genre: "Роман", Language: "Русский", Age: "16+", Year: 1880},
		{Title: "Евгений Онегин", Author: "Александр Пушкин", Genre: "Поэзия", Language: "Русский", Age: "12+", Year: 1833},
		{Title: "Капитанская дочка", Author: "Александр Пушкин", Genre: "Повесть", Language: "Русский", Age: "12+", Year: 1836},
		{Title: "Мёртвые души", Author: "Николай Гоголь", Genre: "Поэма", Language: "Русский", Age: "12+", Year: 1842},
		{Title: "Отцы и дети", Author: "Иван Тургенев", Genre: "Роман", Language: "Русский", Age: "12+", Year: 1862},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Роман", Language: "Английский", Age: "12+", Year: 1813},
		{Title: "Moby-Dick", Author: "Herman Melville", Genre: "Приключения", Language: "Английский", Age: "12+", Year: 1851},
		{Title: "The Time Machine", Author: "H. G. Wells", Genre: "Фантастика", Language: "Английский", Age: "12+", Year: 1895},
		{Title: "Alice's Adventures in Wonderland", Author: "Lewis Carroll", Genre: "Сказка", Language: "Английский", Age: "6+", Year: 1865},
	}
}

func demoFaqs() []entities.Faq {
	return []entities.Faq{
		{Question: "Как скачать книгу?", Answer: "Откройте страницу книги и нажмите «Скачать». Книга появится в разделе «Мои загрузки»."},
		{Question: "Как добавить книгу в избранное?", Answer: "Нажмите на значок сердца на карточке книги."},
		{Question: "Как оставить отзыв?", Answer: "Войдите в аккаунт, откройте страницу книги и поставьте оценку от 1 до 5."},
		{Question: "Не пришло письмо с подтверждением", Answer: "Проверьте папку «Спам». Ссылка действует, пока аккаунт не подтверждён."},
	}
}

func demoTranslations() map[string]map[string]string {
	return map[string]map[string]string{
		"ru": {
			"nav.home":      "Главная",
			"nav.catalog":   "Каталог",
			"nav.favorites": "Избранное",
			"nav.downloads": "Мои загрузки",
			"nav.faq":       "Вопросы",
			"auth.login":    "Войти",
			"auth.register": "Регистрация",
		},
		"en": {
			"nav.home":      "Home",
			"nav.catalog":   "Catalog",
			"nav.favorites": "Favorites",
			"nav.downloads": "My downloads",
			"nav.faq":       "FAQ",
			"auth.login":    "Log in",
			"auth.register": "Sign up",
		},
	}
}

func createDemoUser(ctx context.Context, userRepo *users.Repository) *entities.User {
	hash, err := auth.HashPassword("demo", bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash demo password")
		return nil
	}

	user := &entities.User{
		Username:   "demo",
		Email:      "demo@bookstore.local",
		Password:   hash,
		FirstName:  "Демо",
		IsVerified: true,
		Role:       entities.DefaultUserRole,
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		log.Error().Err(err).Msg("Failed to create demo user")
		return nil
	}
	log.Info().Str("username", user.Username).Msg("Demo user created (password: demo)")
	return user
}

func addReviews(ctx context.Context, reviewRepo *reviews.Repository, user *entities.User, saved []entities.Book) {
	ratings := []int{5, 4, 5, 3, 4}
	for i, book := range saved {
		if i >= len(ratings) {
			break
		}
		review := &entities.Review{
			BookID:  book.ID,
			UserID:  user.ID,
			Rating:  ratings[i],
			Comment: "Отличная книга",
		}
		if err := reviewRepo.CreateReview(ctx, review); err != nil {
			log.Error().Err(err).Str("title", book.Title).Msg("Failed to save review")
		}
	}
}
