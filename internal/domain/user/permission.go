package user

import "slices"

type Permission string

const (
	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Attendance Management
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceCreate   Permission = "attendance.create"
	PermissionAttendanceViewTeam Permission = "attendance.view_team"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Departments and designations
	PermissionMasterManage Permission = "master.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"
)

var selfService = []Permission{
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append(slices.Clone(selfService),
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewTeam,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionMasterManage,
		PermissionReportsView,
	),
	RoleHR: append(slices.Clone(selfService),
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewTeam,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionMasterManage,
		PermissionReportsView,
	),
	RoleManager: append(slices.Clone(selfService),
		PermissionAttendanceViewTeam,
		PermissionEmployeeViewAll,
	),
	RoleEmployee: slices.Clone(selfService),
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	return slices.Contains(permissions, permission)
}
