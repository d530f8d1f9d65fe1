package models

// Upload is a file attached to a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ProductInput is sent as multipart form data on create and update. A nil
// Image leaves the stored image untouched.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Categories  []string
	Image       *Upload
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileInput is sent as multipart form data. A nil Avatar keeps the
// current avatar.
type ProfileInput struct {
	Username string
	Email    string
	Avatar   *Upload
}
