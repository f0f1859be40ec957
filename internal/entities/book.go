package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidReadStatus  = errors.New("invalid read status")
	ErrInvalidSearchField = errors.New("invalid search field")
)

// ReadStatus tells whether the owner has finished a book.
// On disk it is stored as the text "True" or "False".
type ReadStatus uint8

const (
	ReadStatusUnread ReadStatus = iota
	ReadStatusRead
)

const (
	readStatusTrue  = "True"
	readStatusFalse = "False"
)

// ReadStatusOptions lists the choices offered by the add forms, in display order.
var ReadStatusOptions = []ReadStatus{ReadStatusRead, ReadStatusUnread}

// ParseReadStatus accepts the stored representation as well as common
// boolean spellings coming from forms and flags.
func ParseReadStatus(s string) (ReadStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "read":
		return ReadStatusRead, nil
	case "false", "no", "n", "0", "unread":
		return ReadStatusUnread, nil
	}
	return ReadStatusUnread, fmt.Errorf("%w: %q", ErrInvalidReadStatus, s)
}

func (s ReadStatus) IsRead() bool {
	return s == ReadStatusRead
}

// String returns the stored representation.
func (s ReadStatus) String() string {
	if s == ReadStatusRead {
		return readStatusTrue
	}
	return readStatusFalse
}

// Value implements driver.Valuer.
func (s ReadStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *ReadStatus) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = ReadStatusUnread
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidReadStatus, value)
	}

	switch raw {
	case readStatusTrue:
		*s = ReadStatusRead
	case readStatusFalse:
		*s = ReadStatusUnread
	default:
		return fmt.Errorf("%w: stored value %q", ErrInvalidReadStatus, raw)
	}
	return nil
}

func (s ReadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IsRead())
}

// UnmarshalJSON accepts a JSON boolean or any string ParseReadStatus understands.
func (s *ReadStatus) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*s = ReadStatusRead
		} else {
			*s = ReadStatusUnread
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidReadStatus, string(data))
	}
	parsed, err := ParseReadStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Book is a single catalog record.
type Book struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"type:text" json:"title"`
	Author     string     `gorm:"type:text" json:"author"`
	Year       string     `gorm:"type:text" json:"year"`
	Genre      string     `gorm:"type:text" json:"genre"`
	ReadStatus ReadStatus `gorm:"column:read_status;type:text" json:"read"`
}

func (Book) TableName() string {
	return "books"
}

// SearchField is the closed set of columns a catalog search may filter on.
type SearchField uint8

const (
	SearchFieldTitle SearchField = iota
	SearchFieldAuthor
	SearchFieldGenre
)

// SearchFields lists every field in display order.
var SearchFields = []SearchField{SearchFieldTitle, SearchFieldAuthor, SearchFieldGenre}

// ParseSearchField is case-insensitive, so both "title" and "Title" work.
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SearchFieldTitle, nil
	case "author":
		return SearchFieldAuthor, nil
	case "genre":
		return SearchFieldGenre, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSearchField, s)
}

// Column returns the database column for the field. The boolean is false for
// values outside the enumeration.
func (f SearchField) Column() (string, bool) {
	switch f {
	case SearchFieldTitle:
		return "title", true
	case SearchFieldAuthor:
		return "author", true
	case SearchFieldGenre:
		return "genre", true
	}
	return "", false
}

// Label is the human readable name used by the shells.
func (f SearchField) Label() string {
	switch f {
	case SearchFieldTitle:
		return "Title"
	case SearchFieldAuthor:
		return "Author"
	case SearchFieldGenre:
		return "Genre"
	}
	return fmt.Sprintf("SearchField(%d)", uint8(f))
}

func (f SearchField) String() string {
	col, ok := f.Column()
	if !ok {
		return f.Label()
	}
	return col
}
