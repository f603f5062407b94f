package request

// PatientCreateRequest deliberately has no user_id field: the owner is
// always the authenticated actor, whatever the client sends.
type PatientCreateRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	SSN           string   `json:"ssn" validate:"required,len=14,numeric"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	MaritalStatus *string  `json:"marital_status,omitempty" validate:"omitempty,oneof=single married divorced widowed"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=pending complete"`
	Children      *int     `json:"children,omitempty" validate:"omitempty,min=0"`
	Governorate   *string  `json:"governorate,omitempty" validate:"omitempty,max=255"`
	Address       *string  `json:"address,omitempty"`
	Diagnosis     *string  `json:"diagnosis,omitempty"`
	Solution      *string  `json:"solution,omitempty"`
	Cost          *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

// PatientUpdateRequest also omits user_id: ownership is immutable after
// creation. All fields are optional for partial updates.
type PatientUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	SSN           *string  `json:"ssn,omitempty" validate:"omitempty,len=14,numeric"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	MaritalStatus *string  `json:"marital_status,omitempty" validate:"omitempty,oneof=single married divorced widowed"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=pending complete"`
	Children      *int     `json:"children,omitempty" validate:"omitempty,min=0"`
	Governorate   *string  `json:"governorate,omitempty" validate:"omitempty,max=255"`
	Address       *string  `json:"address,omitempty"`
	Diagnosis     *string  `json:"diagnosis,omitempty"`
	Solution      *string  `json:"solution,omitempty"`
	Cost          *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
}
