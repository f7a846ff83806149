package model

// BookStatus is the author-supplied reading state of a book. It is never
// derived; unrecognized values coming from content fall back to a display-only
// "unknown" label at the rendering edge.
type BookStatus string

const (
	BookUpcoming  BookStatus = "upcoming"
	BookCurrent   BookStatus = "current"
	BookCompleted BookStatus = "completed"
)

// BookLinks holds the optional named external URLs for a book.
type BookLinks struct {
	WikipediaFarsi   string `yaml:"wikipediaFarsi,omitempty"`
	WikipediaEnglish string `yaml:"wikipediaEnglish,omitempty"`
	Wikisource       string `yaml:"wikisource,omitempty"`
	GoodreadsEnglish string `yaml:"goodreadsEnglish,omitempty"`
	GoodreadsFarsi   string `yaml:"goodreadsFarsi,omitempty"`
	Audiobook        string `yaml:"audiobook,omitempty"`
}

// Book is one book record loaded from content/books. Slug is the unique key
// used both in URLs and in session back-references.
type Book struct {
	Slug       string     `yaml:"slug"`
	Title      string     `yaml:"title"`
	TitleFarsi string     `yaml:"titleFarsi,omitempty"`
	Author     string     `yaml:"author"`
	Year       FlexString `yaml:"year"`
	Language   string     `yaml:"language"`
	Genre      []string   `yaml:"genre"`
	Translator string     `yaml:"translator,omitempty"`
	Pages      FlexString `yaml:"pages,omitempty"`
	CoverImage string     `yaml:"coverImage,omitempty"`
	BookNumber int        `yaml:"bookNumber"`
	Status     BookStatus `yaml:"status"`
	Links      *BookLinks `yaml:"links,omitempty"`

	// Body is the free-text description below the frontmatter.
	Body string `yaml:"-"`
}

// DisplayTitle prefers the Farsi title when present.
func (b *Book) DisplayTitle() string {
	if b.TitleFarsi != "" {
		return b.TitleFarsi
	}
	return b.Title
}
