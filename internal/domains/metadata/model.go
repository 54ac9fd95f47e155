package metadata

// BookMetadata là reshaped lookup result trả về cho client.
// Values được giữ verbatim từ upstream, không normalize
type BookMetadata struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
}
