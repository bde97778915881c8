package models

import "time"

// Product — карточка товара. В рамках приложения данные только читаются,
// каталог наполняется миграциями.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
