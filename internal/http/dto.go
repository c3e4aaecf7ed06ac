package http

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/myapp/bookstore/internal/auth"
	"github.com/myapp/bookstore/internal/entities"
)

type createBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	Language string `json:"language"`
	Age      string `json:"age"`
	Year     int    `json:"year"`
	ImageURL string `json:"imageUrl"`
}

func (r createBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Author, validation.Length(0, 100)),
		validation.Field(&r.Genre, validation.Length(0, 50)),
		validation.Field(&r.Language, validation.Length(0, 50)),
		validation.Field(&r.Age, validation.Length(0, 50)),
		validation.Field(&r.ImageURL, validation.Length(0, 255)),
	)
}

func (r createBookRequest) toEntity() *entities.Book {
	return &entities.Book{
		Title:    r.Title,
		Author:   r.Author,
		Genre:    r.Genre,
		Language: r.Language,
		Age:      r.Age,
		Year:     r.Year,
		ImageURL: r.ImageURL,
	}
}

type createDownloadRequest struct {
	BookID uint `json:"bookId"`
	UserID uint `json:"userId"`
}

func (r createDownloadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

type createFaqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r createFaqRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question, validation.Required),
		validation.Field(&r.Answer, validation.Required),
	)
}

// addFavoriteRequest keeps bookId a pointer so a missing field can be told
// apart from an explicit zero.
type addFavoriteRequest struct {
	BookID *uint `json:"bookId"`
}

type reviewRequest struct {
	BookID  uint   `json:"bookId"`
	UserID  uint   `json:"userId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r reviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r updateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}

// registerRequest ignores any role sent by the client.
type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birthDate"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, auth.MaxPasswordLength)),
	)
}

func (r registerRequest) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Phone:      r.Phone,
		BirthDate:  r.BirthDate,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
}

func (r updateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
	)
}

func (r updateProfileRequest) toInput() auth.ProfileInput {
	return auth.ProfileInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Phone:      r.Phone,
		Email:      r.Email,
		BirthDate:  r.BirthDate,
	}
}

// ProfileResponse is the user profile shape shared by login and profile reads.
type ProfileResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BirthDate  string `json:"birth_date"`
}

func newProfileResponse(u *entities.User) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Phone:      u.Phone,
		Email:      u.Email,
		BirthDate:  u.BirthDateString(),
	}
}
