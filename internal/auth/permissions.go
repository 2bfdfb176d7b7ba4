package auth

import "github.com/carelink/practice-api/internal/entity"

// Action is a bit flag describing what a request wants to do with a resource.
type Action int

const (
	ActionRead Action = 1 << iota
	ActionWrite
	ActionDelete
)

// Resource names used by the permission matrix and the router.
const (
	ResourceUsers        = "users"
	ResourcePatients     = "patients"
	ResourceCases        = "cases"
	ResourceAppointments = "appointments"
	ResourceExams        = "exams"
	ResourceTasks        = "tasks"
	ResourcePhysicians   = "physicians"
	ResourceAttorneys    = "attorneys"
	ResourcePayers       = "payers"
	ResourceFacilities   = "facilities"
	ResourceStatuses     = "statuses"
)

const (
	readOnly  = ActionRead
	readWrite = ActionRead | ActionWrite
	full      = ActionRead | ActionWrite | ActionDelete
)

// matrix is the explicit role x resource x action grant table. Anything not
// listed is denied.
var matrix = map[entity.Role]map[string]Action{
	entity.RoleAdmin: {
		ResourceUsers:        full,
		ResourcePatients:     full,
		ResourceCases:        full,
		ResourceAppointments: full,
		ResourceExams:        full,
		ResourceTasks:        full,
		ResourcePhysicians:   full,
		ResourceAttorneys:    full,
		ResourcePayers:       full,
		ResourceFacilities:   full,
		ResourceStatuses:     full,
	},
	entity.RoleStaff: {
		ResourcePatients:     full,
		ResourceCases:        full,
		ResourceAppointments: full,
		ResourceExams:        full,
		ResourceTasks:        full,
		ResourcePhysicians:   full,
		ResourceAttorneys:    full,
		ResourcePayers:       full,
		ResourceFacilities:   full,
		ResourceStatuses:     readOnly,
	},
	entity.RoleDoctor: {
		ResourcePatients:     readWrite,
		ResourceCases:        readWrite,
		ResourceAppointments: readWrite,
		ResourceExams:        readWrite,
		ResourceTasks:        readWrite,
		ResourcePhysicians:   readOnly,
		ResourceAttorneys:    readOnly,
		ResourcePayers:       readOnly,
		ResourceFacilities:   readOnly,
		ResourceStatuses:     readOnly,
	},
	entity.RoleAttorney: {
		ResourcePatients: readOnly,
		ResourceCases:    readOnly,
		ResourceExams:    readOnly,
		ResourceTasks:    readWrite,
		ResourceStatuses: readOnly,
	},
}

// Allowed reports whether the role may perform the action on the resource.
// The check is pure and performs no I/O.
func Allowed(role entity.Role, resource string, action Action) bool {
	grants, ok := matrix[role]
	if !ok {
		return false
	}
	return grants[resource]&action != 0
}
