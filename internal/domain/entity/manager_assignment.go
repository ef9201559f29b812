package entity

import "time"

// ManagerAssignment relaciona un detective con un manager (muchos a muchos).
// El par (DetectiveID, ManagerID) es único; el registro no tiene identidad propia.
// Un detective delegado ve los casos sin asignar de sus managers.
type ManagerAssignment struct {
	DetectiveID string
	ManagerID   string
	CreatedAt   time.Time
}
