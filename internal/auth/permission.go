package auth

import "secura-backend/internal/models"

type Action string

const (
	ActionAddStock      Action = "add_stock"
	ActionRecordSale    Action = "record_sale"
	ActionTransferStock Action = "transfer_stock"
	ActionManageStores  Action = "manage_stores"
	ActionManageUsers   Action = "manage_users"
	ActionViewReports   Action = "view_reports"
	ActionViewActivity  Action = "view_activity"
)

// Actions reserved for admins. Everything else is open to any
// authenticated role.
var adminOnly = map[Action]bool{
	ActionTransferStock: true,
	ActionManageStores:  true,
	ActionManageUsers:   true,
	ActionViewReports:   true,
	ActionViewActivity:  true,
}

// Can is the single place role capability is decided. store_manager is
// declared in the schema but carries no extra capability over staff.
func Can(role models.UserRole, action Action) bool {
	if role == models.RoleAdmin {
		return true
	}
	return !adminOnly[action]
}
