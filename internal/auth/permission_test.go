package auth_test

import (
	"testing"

	"secura-backend/internal/auth"
	"secura-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name    string
		role    models.UserRole
		action  auth.Action
		allowed bool
	}{
		{"admin can transfer", models.RoleAdmin, auth.ActionTransferStock, true},
		{"admin can manage stores", models.RoleAdmin, auth.ActionManageStores, true},
		{"admin can manage users", models.RoleAdmin, auth.ActionManageUsers, true},
		{"admin can record sales", models.RoleAdmin, auth.ActionRecordSale, true},
		{"staff can record sales", models.RoleStaff, auth.ActionRecordSale, true},
		{"staff can add stock", models.RoleStaff, auth.ActionAddStock, true},
		{"admin can view reports", models.RoleAdmin, auth.ActionViewReports, true},
		{"admin can view activity", models.RoleAdmin, auth.ActionViewActivity, true},
		{"staff cannot view reports", models.RoleStaff, auth.ActionViewReports, false},
		{"staff cannot view activity", models.RoleStaff, auth.ActionViewActivity, false},
		{"staff cannot transfer", models.RoleStaff, auth.ActionTransferStock, false},
		{"staff cannot manage stores", models.RoleStaff, auth.ActionManageStores, false},
		{"staff cannot manage users", models.RoleStaff, auth.ActionManageUsers, false},
		{"store manager matches staff", models.RoleStoreManager, auth.ActionTransferStock, false},
		{"store manager can sell", models.RoleStoreManager, auth.ActionRecordSale, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, auth.Can(tt.role, tt.action))
		})
	}
}
