package v1

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type TopupRequest struct {
	Amount int64 `json:"amount" validate:"required,min=1"`
}

type PurchaseRequest struct {
	MovieID string `json:"movieId" validate:"required"`
}

type AddMovieRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Synopsis string `json:"synopsis"`
	Price    int64  `json:"price" validate:"required,min=1"`
	Year     int    `json:"year"`
	Video    string `json:"video" validate:"required,max=255"`
	Image    string `json:"image" validate:"omitempty,base64"`
}

type UpdateMovieRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Synopsis string `json:"synopsis"`
	Price    int64  `json:"price" validate:"required,min=1"`
	Year     int    `json:"year"`
	Video    string `json:"video" validate:"required,max=255"`
	Image    string `json:"image" validate:"omitempty,base64"`
}
