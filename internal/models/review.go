package models

import "time"

// Review — отзыв пользователя о товаре: оценка, текст и опциональная картинка.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"` // Автор отзыва
	Rating    int       `json:"rating"`  // Оценка от 1 до 5
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImagePath string    `json:"image_path,omitempty"` // Путь к загруженной картинке, если была
	CreatedAt time.Time `json:"created_at"`
}

// ProductReview — отзыв вместе с именем автора, как его отдают списки по товару.
type ProductReview struct {
	Review
	Username string `json:"username"`
}

// AdminReview — отзыв для административного списка: имя автора и название товара.
type AdminReview struct {
	Review
	Username    string `json:"username"`
	ProductName string `json:"product_name"`
}

// DummyReview используется для приема полей multipart-формы,
// прежде чем конвертировать их в Review. Числа приходят строками,
// чтобы их можно было валидировать и парсить вручную.
type DummyReview struct {
	ProductID string `validate:"required,numeric"`
	Rating    string `validate:"required,numeric"`
	Title     string `validate:"required,max=200"`
	Content   string `validate:"required"`
}
