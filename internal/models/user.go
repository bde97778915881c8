// Package models содержит доменные структуры приложения:
// пользователей, товары и отзывы, а также DTO для JSON-запросов.
package models

import "time"

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не сериализуется в ответы API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"` // Имя пользователя (уникальное)
	Email        string    `json:"email"`    // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // admin или user
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate описывает частичное обновление профиля.
// nil-поле означает "не менять".
type UserUpdate struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}
