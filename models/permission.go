package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Permission は閉じた権限enumの1要素を表す
type Permission string

const (
	PermissionUser             Permission = "USER"
	PermissionAdmin            Permission = "ADMIN"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

// AllPermissions 付与可能な権限の全集合
var AllPermissions = []Permission{
	PermissionUser,
	PermissionAdmin,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

// IsValid は閉じたenumに含まれる権限かどうかを返す
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// PermissionList はユーザーに付与された権限集合
// DBにはカンマ区切りのTEXTカラムとして保存される
type PermissionList []Permission

// Contains は指定された権限を保持しているかを返す
func (l PermissionList) Contains(p Permission) bool {
	for _, held := range l {
		if held == p {
			return true
		}
	}
	return false
}

// HasAny は要求された権限集合との積集合が空でないかを返す
func (l PermissionList) HasAny(required ...Permission) bool {
	for _, p := range required {
		if l.Contains(p) {
			return true
		}
	}
	return false
}

// Value はdriver.Valuerの実装（カンマ区切りで保存）
func (l PermissionList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(l))
	for _, p := range l {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, ","), nil
}

// Scan はsql.Scannerの実装
func (l *PermissionList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into PermissionList", value)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	list := make(PermissionList, 0, len(parts))
	for _, part := range parts {
		list = append(list, Permission(strings.TrimSpace(part)))
	}
	*l = list
	return nil
}
