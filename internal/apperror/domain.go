package apperror

// Domain errors returned by the auth and services packages. Messages are the
// ones the front-end already displays.
var (
	ErrDuplicateUsername  = Conflict("Пользователь с таким именем уже существует")
	ErrDuplicateEmail     = Conflict("Пользователь с таким email уже существует")
	ErrInvalidToken       = NotFound("Неверный или устаревший токен подтверждения.")
	ErrInvalidCredentials = Unauthorized("Неверные учетные данные")
	ErrNotVerified        = Unauthorized("Email не подтвержден")
	ErrTooManyAttempts    = RateLimited("Слишком много попыток входа. Попробуйте позже.")

	ErrAlreadyFavorited  = Conflict("Book is already in favorites")
	ErrFavoriteNotFound  = NotFound("Favorite entry not found")
	ErrAlreadyDownloaded = Conflict("Книга уже скачана этим пользователем")

	ErrBookNotFound     = NotFound("Книга не найдена")
	ErrUserNotFound     = NotFound("Пользователь не найден")
	ErrReviewNotFound   = NotFound("Отзыв не найден")
	ErrDownloadNotFound = NotFound("Скачивание не найдено")
	ErrFaqNotFound      = NotFound("FAQ не найден")
)
