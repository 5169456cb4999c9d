package employee

// Mapper converts between a transfer object D and a stored entity E.
type Mapper[D any, E any] interface {
	ToEntity(dto D) E
	ToDTO(entity E) D
}

// EmployeeMapper maps EmployeeDTO <-> Employee field by field.
//
// ToEntity always yields Active=true and a zero CreatedAt; callers that
// care about either must set them afterwards.
type EmployeeMapper struct{}

var _ Mapper[EmployeeDTO, Employee] = EmployeeMapper{}

func (EmployeeMapper) ToEntity(dto EmployeeDTO) Employee {
	return Employee{
		ID:       dto.ID,
		Name:     dto.Name,
		Email:    dto.Email,
		Position: dto.Position,
		Phone:    dto.Phone,
		Active:   true,
	}
}

func (EmployeeMapper) ToDTO(e Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Position: e.Position,
		Phone:    e.Phone,
	}
}

// ToDTOs maps a slice of entities. The result is never nil.
func ToDTOs(m Mapper[EmployeeDTO, Employee], entities []Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(entities))
	for _, e := range entities {
		out = append(out, m.ToDTO(e))
	}
	return out
}
