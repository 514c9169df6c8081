package services

import "gin-storefront/models"

// RequireAnyPermission はユーザーの権限集合と要求集合の積が空のときErrForbiddenを返す
// 副作用は無く、特権的な変更操作の前段で呼ばれる
func RequireAnyPermission(user *models.User, required ...models.Permission) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if !user.Permissions.HasAny(required...) {
		return ErrForbidden
	}
	return nil
}
