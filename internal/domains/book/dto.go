package book

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var isbnPattern = regexp.MustCompile(`^[0-9Xx-]{10,20}$`)

// validDate là ozzo rule cho chuỗi YYYY-MM-DD
func validDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required rule xử lý empty
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return errors.New("must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

// CreateBookRequest - POST /createbooks body
type CreateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationDate string `json:"publication_date"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Match(isbnPattern).Error("isbn must be 10-20 digits, hyphens or X"),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication_date is required"),
			validation.By(validDate),
		),
	)
}

// ToBook convert request thành entity với owner đã stamp
func (r CreateBookRequest) ToBook(profileID int64) (*Book, error) {
	date, err := ParseDate(r.PublicationDate)
	if err != nil {
		return nil, err
	}

	return &Book{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		PublicationDate: date,
		ProfileID:       profileID,
	}, nil
}

// UpdateBookRequest - PUT (full) / PATCH (partial) /books/:id body.
// Pointer fields phân biệt "absent" với "empty" cho partial update
type UpdateBookRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	ISBN            *string `json:"isbn"`
	PublicationDate *string `json:"publication_date"`
}

// Validate - partial=false (PUT) yêu cầu đủ mọi field.
// Field có mặt trong body nhưng rỗng bị reject ở cả hai mode:
// partial chỉ cho phép OMIT field, không cho phép blank nó
func (r UpdateBookRequest) Validate(partial bool) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.When(!partial || r.Title != nil).Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Author,
			validation.Required.When(!partial || r.Author != nil).Error("author is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.ISBN,
			validation.Required.When(!partial || r.ISBN != nil).Error("isbn is required"),
			validation.Match(isbnPattern).Error("isbn must be 10-20 digits, hyphens or X"),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.When(!partial || r.PublicationDate != nil).Error("publication_date is required"),
			validation.By(validDate),
		),
	)
}

// ApplyTo merge các field có mặt vào entity
func (r UpdateBookRequest) ApplyTo(b *Book) error {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.PublicationDate != nil {
		date, err := ParseDate(*r.PublicationDate)
		if err != nil {
			return err
		}
		b.PublicationDate = date
	}
	return nil
}

// Page là paginated list response: {count, next, previous, results}
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Book  `json:"results"`
}

// NewPage build page response với next/previous markers.
// Markers là page URLs (nil khi không có trang tương ứng)
func NewPage(results []Book, count, page, pageSize int, basePath string) *Page {
	if results == nil {
		results = []Book{}
	}

	p := &Page{
		Count:   count,
		Results: results,
	}

	if page*pageSize < count {
		next := fmt.Sprintf("%s?page=%d", basePath, page+1)
		p.Next = &next
	}
	if page > 1 {
		previous := fmt.Sprintf("%s?page=%d", basePath, page-1)
		p.Previous = &previous
	}

	return p
}

// TotalPages - số trang với fixed page size (tối thiểu 1)
func TotalPages(count, pageSize int) int {
	if count == 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}
