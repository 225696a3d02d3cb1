package entity

import "encoding/base64"

const (
	ErrCodeMovieDetailsMissingProperty = "MOVIE_DETAILS.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCodeMovieDetailsInvalidType     = "MOVIE_DETAILS.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// MovieDetails is the read model returned to a catalog detail request.
// Owned is derived from the transaction ledger, never stored.
type MovieDetails struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Price    int64  `json:"price"`
	Year     int    `json:"year"`
	Video    string `json:"video"`
	Image    string `json:"image,omitempty"`
	Owned    bool   `json:"owned"`
}

func NewMovieDetails(id, title, synopsis string, price int64, year int, video string, image []byte, owned bool) (MovieDetails, error) {
	if id == "" || title == "" || price == 0 || video == "" {
		return MovieDetails{}, NewValidationError(ErrCodeMovieDetailsMissingProperty)
	}

	details := MovieDetails{
		ID:       id,
		Title:    title,
		Synopsis: synopsis,
		Price:    price,
		Year:     year,
		Video:    video,
		Owned:    owned,
	}

	if len(image) > 0 {
		details.Image = base64.StdEncoding.EncodeToString(image)
	}

	return details, nil
}
