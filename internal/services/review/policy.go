package review

import "github.com/magabrotheeeer/review-platform/internal/models"

// CanDelete решает, может ли requester удалить отзыв:
// удалять могут автор отзыва и администратор.
func CanDelete(reviewAuthorID int64, requester *models.User) bool {
	if requester == nil {
		return false
	}
	return requester.Role == models.RoleAdmin || requester.ID == reviewAuthorID
}

// CanViewAdminListings решает, доступны ли requester административные списки.
func CanViewAdminListings(requester *models.User) bool {
	return requester != nil && requester.Role == models.RoleAdmin
}
