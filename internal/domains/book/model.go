package book

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout - publication_date trên wire luôn là YYYY-MM-DD
const DateLayout = "2006-01-02"

// Date wraps time.Time để serialize dạng calendar date (không giờ, không timezone)
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parse chuỗi YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner - pgx scan DATE column vào Date
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Book là domain entity - ánh xạ 1:1 với bảng books
// ProfileID là owner reference, luôn resolve về một Profile tồn tại (FK)
type Book struct {
	ID              int64     `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Author          string    `db:"author" json:"author"`
	ISBN            string    `db:"isbn" json:"isbn"`
	PublicationDate Date      `db:"publication_date" json:"publication_date"`
	ProfileID       int64     `db:"profile_id" json:"user"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
